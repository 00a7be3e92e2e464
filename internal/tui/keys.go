package tui

import (
	"unicode/utf8"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/krunkertools/bindsync/internal/keybinds"
)

// handleKeyPress routes key presses based on current mode
func (m *Model) handleKeyPress(msg tea.KeyMsg) tea.Cmd {
	key := msg.String()

	// ctrl+c always quits regardless of bindings
	if key == "ctrl+c" {
		return tea.Quit
	}

	switch m.mode {
	case ModePrompt:
		return m.handlePromptKeys(key, msg)
	case ModeHistory:
		return m.handleHistoryKeys(key)
	case ModeHelp:
		return m.handleHelpKeys(key)
	case ModeConfirmClear:
		return m.handleConfirmClearKeys(key)
	default:
		return m.handleNormalKeys(key)
	}
}

func (m *Model) handleNormalKeys(key string) tea.Cmd {
	action, ok := m.keys.Match(keybinds.ContextNormal, key)
	if !ok {
		return nil
	}

	switch action {
	case keybinds.ActionQuit, keybinds.ActionQuitForce:
		return tea.Quit

	case keybinds.ActionSwitchFocus:
		m.focus = (m.focus + 1) % 3

	case keybinds.ActionNavigateUp:
		m.focusedView().LineUp(1)
	case keybinds.ActionNavigateDown:
		m.focusedView().LineDown(1)
	case keybinds.ActionPageUp:
		m.focusedView().ViewUp()
	case keybinds.ActionPageDown:
		m.focusedView().ViewDown()
	case keybinds.ActionGoToTop:
		m.focusedView().GotoTop()
	case keybinds.ActionGoToBottom:
		m.focusedView().GotoBottom()

	case keybinds.ActionOpenSource:
		m.openPrompt(promptOpenSource)
	case keybinds.ActionOpenTarget:
		m.openPrompt(promptOpenTarget)
	case keybinds.ActionPasteSource:
		m.pasteInto(focusSource)
	case keybinds.ActionPasteTarget:
		m.pasteInto(focusTarget)
	case keybinds.ActionCopyResult:
		m.copyResult()
	case keybinds.ActionSaveResult:
		if m.resultText == "" {
			m.setErrorMessage("Nothing to save")
			return nil
		}
		m.openPrompt(promptSaveResult)
	case keybinds.ActionClearAll:
		m.clearAll()

	case keybinds.ActionExtract:
		m.doExtract()
	case keybinds.ActionMerge:
		m.doMerge()
	case keybinds.ActionValidate:
		m.doValidate()

	case keybinds.ActionTogglePretty:
		m.togglePretty()
	case keybinds.ActionToggleLenient:
		m.lenient = !m.lenient
		if m.lenient {
			m.setStatusMessage("Lenient parsing on (comments and trailing commas allowed)")
		} else {
			m.setStatusMessage("Strict parsing")
		}
	case keybinds.ActionToggleTheme:
		m.toggleTheme()

	case keybinds.ActionOpenHistory:
		m.openHistory()
	case keybinds.ActionOpenHelp:
		m.openHelp()
	}

	return nil
}

func (m *Model) handlePromptKeys(key string, msg tea.KeyMsg) tea.Cmd {
	action, ok := m.keys.Match(keybinds.ContextPrompt, key)
	if ok {
		switch action {
		case keybinds.ActionQuitForce:
			return tea.Quit
		case keybinds.ActionTextSubmit:
			m.submitPrompt()
			return nil
		case keybinds.ActionTextCancel:
			m.mode = ModeNormal
			m.promptInput = ""
			return nil
		case keybinds.ActionTextBackspace:
			if len(m.promptInput) > 0 {
				// Drop the last rune, not the last byte, so multibyte
				// paths stay valid UTF-8.
				_, size := utf8.DecodeLastRuneInString(m.promptInput)
				m.promptInput = m.promptInput[:len(m.promptInput)-size]
			}
			return nil
		case keybinds.ActionTextPaste:
			if text, err := clipboard.ReadAll(); err == nil {
				m.promptInput += text
			}
			return nil
		}
	}

	// Printable characters extend the input
	if msg.Type == tea.KeyRunes {
		m.promptInput += string(msg.Runes)
	} else if key == " " {
		m.promptInput += " "
	}

	return nil
}

func (m *Model) handleHistoryKeys(key string) tea.Cmd {
	action, ok := m.keys.Match(keybinds.ContextHistory, key)
	if !ok {
		return nil
	}

	switch action {
	case keybinds.ActionQuitForce:
		return tea.Quit
	case keybinds.ActionCloseModal:
		m.mode = ModeNormal
	case keybinds.ActionNavigateUp:
		if m.historyIndex > 0 {
			m.historyIndex--
		}
	case keybinds.ActionNavigateDown:
		if m.historyIndex < len(m.historyEntries)-1 {
			m.historyIndex++
		}
	case keybinds.ActionHistoryLoad:
		m.loadHistoryEntry()
	case keybinds.ActionHistoryClear:
		if len(m.historyEntries) > 0 {
			m.mode = ModeConfirmClear
		}
	}

	return nil
}

func (m *Model) handleHelpKeys(key string) tea.Cmd {
	action, ok := m.keys.Match(keybinds.ContextHelp, key)
	if !ok {
		return nil
	}

	switch action {
	case keybinds.ActionQuitForce:
		return tea.Quit
	case keybinds.ActionCloseModal:
		m.mode = ModeNormal
	case keybinds.ActionNavigateUp:
		m.helpView.LineUp(1)
	case keybinds.ActionNavigateDown:
		m.helpView.LineDown(1)
	case keybinds.ActionPageUp:
		m.helpView.ViewUp()
	case keybinds.ActionPageDown:
		m.helpView.ViewDown()
	}

	return nil
}

func (m *Model) handleConfirmClearKeys(key string) tea.Cmd {
	action, ok := m.keys.Match(keybinds.ContextConfirm, key)
	if !ok {
		return nil
	}

	switch action {
	case keybinds.ActionQuitForce:
		return tea.Quit
	case keybinds.ActionConfirm:
		m.clearHistory()
		m.mode = ModeHistory
	case keybinds.ActionCancel:
		m.mode = ModeHistory
	}

	return nil
}
