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

// Mode represents the current TUI mode
type Mode int

const (
	ModeNormal Mode = iota
	ModePrompt
	ModeHistory
	ModeHelp
	ModeConfirmClear
)

// Panes in focus order (tab cycles through them)
const (
	focusSource = iota
	focusTarget
	focusResult
)

// promptPurpose says what the text prompt is collecting a path for
type promptPurpose int

const (
	promptOpenSource promptPurpose = iota
	promptOpenTarget
	promptSaveResult
)

// Model represents the TUI state
type Model struct {
	keys    *keybinds.Registry
	histMgr *history.Manager // nil when history is disabled or unavailable
	prefs   config.Prefs

	mode  Mode
	focus int

	width  int
	height int

	// Pane contents. Source and target hold whatever the user loaded or
	// pasted, valid JSON or not; result only ever holds rendered output.
	sourceText string
	targetText string
	resultText string

	sourceView viewport.Model
	targetView viewport.Model
	resultView viewport.Model

	pretty  bool
	lenient bool

	statusMsg string
	errorMsg  string

	// Prompt state
	promptFor   promptPurpose
	promptInput string

	// History modal state
	historyEntries []history.Entry
	historyIndex   int

	helpView viewport.Model
}

// Init initializes the TUI
func (m *Model) Init() tea.Cmd {
	return nil
}

// Cleanup closes the history database connection
func (m *Model) Cleanup() {
	if m.histMgr != nil {
		if err := m.histMgr.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "error closing history database: %v\n", err)
		}
	}
}

// Update handles messages and updates the model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		cmd = m.handleKeyPress(msg)

	case tea.MouseMsg:
		// Capture and discard mouse scroll so the terminal buffer
		// doesn't scroll underneath the app

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateViewports()
	}

	return m, cmd
}

// View renders the current mode
func (m *Model) View() string {
	switch m.mode {
	case ModePrompt:
		return m.renderPrompt()
	case ModeHistory:
		return m.renderHistory()
	case ModeHelp:
		return m.renderHelp()
	case ModeConfirmClear:
		return m.renderConfirmClear()
	default:
		return m.renderMain()
	}
}

// focusedText returns the raw text of the pane under focus
func (m *Model) focusedText() string {
	switch m.focus {
	case focusTarget:
		return m.targetText
	case focusResult:
		return m.resultText
	default:
		return m.sourceText
	}
}

// focusedView returns the viewport of the pane under focus
func (m *Model) focusedView() *viewport.Model {
	switch m.focus {
	case focusTarget:
		return &m.targetView
	case focusResult:
		return &m.resultView
	default:
		return &m.sourceView
	}
}

func (m *Model) setStatusMessage(msg string) {
	m.errorMsg = ""
	if len(msg) > 100 {
		m.statusMsg = msg[:97] + "..."
	} else {
		m.statusMsg = msg
	}
}

func (m *Model) setErrorMessage(msg string) {
	m.statusMsg = ""
	if len(msg) > 100 {
		m.errorMsg = msg[:97] + "..."
	} else {
		m.errorMsg = msg
	}
}
