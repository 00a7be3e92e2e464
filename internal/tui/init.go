package tui

import (
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/krunkertools/bindsync/internal/config"
	"github.com/krunkertools/bindsync/internal/history"
	"github.com/krunkertools/bindsync/internal/keybinds"
)

// New creates a new TUI model
func New(reg *keybinds.Registry, hist *history.Manager, prefs config.Prefs) Model {
	return Model{
		keys:       reg,
		histMgr:    hist,
		prefs:      prefs,
		mode:       ModeNormal,
		focus:      focusSource,
		pretty:     prefs.PrettyOutput,
		sourceView: viewport.New(40, 10),
		targetView: viewport.New(40, 10),
		resultView: viewport.New(80, 10),
		helpView:   viewport.New(80, 20),
	}
}

// Run starts the TUI
func Run() error {
	if err := config.Initialize(); err != nil {
		return err
	}

	prefs := config.LoadPrefs()

	reg, err := keybinds.LoadOrDefault(config.KeybindsFile)
	if err != nil {
		return fmt.Errorf("loading keybinds: %w", err)
	}

	// History is best effort; the app works without it
	var hist *history.Manager
	if prefs.HistoryEnabled {
		hist, err = history.NewManager(config.DatabasePath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: history disabled: %v\n", err)
			hist = nil
		}
	}

	m := New(reg, hist, prefs)
	defer m.Cleanup()

	p := tea.NewProgram(&m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}

	return nil
}
