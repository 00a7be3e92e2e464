package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	// FilePermissions is the default permission mode for regular files
	FilePermissions = 0644
	// DirPermissions is the default permission mode for directories
	DirPermissions = 0755
)

var (
	// ConfigDir is the global configuration directory (~/.bindsync)
	ConfigDir string

	// DatabasePath is the SQLite database file for operation history
	DatabasePath string

	// PrefsFile is the preferences file (theme, output mode, history toggle)
	PrefsFile string

	// KeybindsFile is the TUI keybinding overrides file
	KeybindsFile string
)

// Initialize sets up the configuration directory and files.
// It creates ~/.bindsync/ if it doesn't exist.
func Initialize() error {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("failed to get home directory: %w", err)
	}

	ConfigDir = filepath.Join(homeDir, ".bindsync")
	DatabasePath = filepath.Join(ConfigDir, "bindsync.db")
	PrefsFile = filepath.Join(ConfigDir, ".prefs.json")
	KeybindsFile = filepath.Join(ConfigDir, "keybinds.json")

	if err := os.MkdirAll(ConfigDir, DirPermissions); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", ConfigDir, err)
	}

	// Create default preferences if missing
	if _, err := os.Stat(PrefsFile); os.IsNotExist(err) {
		if err := SavePrefs(DefaultPrefs()); err != nil {
			return fmt.Errorf("failed to create prefs file: %w", err)
		}
	}

	return nil
}
