package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// Theme names accepted in preferences.
const (
	ThemeDark  = "dark"
	ThemeLight = "light"
)

// Prefs holds the user's persisted preferences. The theme lives here and is
// passed into the renderer explicitly; nothing in the core knows about it.
type Prefs struct {
	Theme          string `json:"theme"`
	PrettyOutput   bool   `json:"prettyOutput"`
	HistoryEnabled bool   `json:"historyEnabled"`
}

// DefaultPrefs returns the preferences written on first run.
func DefaultPrefs() Prefs {
	return Prefs{
		Theme:          ThemeDark,
		PrettyOutput:   true,
		HistoryEnabled: true,
	}
}

// LoadPrefs reads preferences from PrefsFile, falling back to defaults when
// the file is missing or unreadable.
func LoadPrefs() Prefs {
	data, err := os.ReadFile(PrefsFile)
	if err != nil {
		return DefaultPrefs()
	}

	prefs := DefaultPrefs()
	if err := json.Unmarshal(data, &prefs); err != nil {
		return DefaultPrefs()
	}
	if prefs.Theme != ThemeDark && prefs.Theme != ThemeLight {
		prefs.Theme = ThemeDark
	}
	return prefs
}

// SavePrefs writes preferences to PrefsFile.
func SavePrefs(prefs Prefs) error {
	data, err := json.MarshalIndent(prefs, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(PrefsFile, data, FilePermissions); err != nil {
		return fmt.Errorf("failed to write prefs: %w", err)
	}
	return nil
}
