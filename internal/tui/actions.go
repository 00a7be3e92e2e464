package tui

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/krunkertools/bindsync/internal/config"
	"github.com/krunkertools/bindsync/internal/history"
	"github.com/krunkertools/bindsync/internal/settings"
)

// load parses pane text honoring the lenient toggle
func (m *Model) load(text string) (settings.Value, error) {
	if m.lenient {
		return settings.LoadLenient(text)
	}
	return settings.Load(text)
}

func (m *Model) openPrompt(purpose promptPurpose) {
	m.mode = ModePrompt
	m.promptFor = purpose
	m.promptInput = ""
}

func (m *Model) submitPrompt() {
	path := strings.TrimSpace(m.promptInput)
	m.mode = ModeNormal
	m.promptInput = ""
	if path == "" {
		return
	}

	switch m.promptFor {
	case promptOpenSource, promptOpenTarget:
		data, err := os.ReadFile(path)
		if err != nil {
			m.setErrorMessage(fmt.Sprintf("Failed to read %s: %v", path, err))
			return
		}
		if m.promptFor == promptOpenSource {
			m.sourceText = string(data)
			m.setStatusMessage(fmt.Sprintf("Loaded source from %s", path))
		} else {
			m.targetText = string(data)
			m.setStatusMessage(fmt.Sprintf("Loaded target from %s", path))
		}
		m.updateViewports()

	case promptSaveResult:
		if err := os.WriteFile(path, []byte(m.resultText), config.FilePermissions); err != nil {
			m.setErrorMessage(fmt.Sprintf("Failed to save %s: %v", path, err))
			return
		}
		m.setStatusMessage(fmt.Sprintf("Result saved to %s", path))
	}
}

func (m *Model) pasteInto(pane int) {
	text, err := clipboard.ReadAll()
	if err != nil {
		m.setErrorMessage(fmt.Sprintf("Clipboard read failed: %v", err))
		return
	}
	if pane == focusSource {
		m.sourceText = text
		m.setStatusMessage("Pasted clipboard into source")
	} else {
		m.targetText = text
		m.setStatusMessage("Pasted clipboard into target")
	}
	m.updateViewports()
}

func (m *Model) copyResult() {
	if m.resultText == "" {
		m.setErrorMessage("Nothing to copy")
		return
	}
	if err := clipboard.WriteAll(m.resultText); err != nil {
		m.setErrorMessage(fmt.Sprintf("Clipboard write failed: %v", err))
		return
	}
	m.setStatusMessage("Result copied to clipboard")
}

func (m *Model) clearAll() {
	m.sourceText = ""
	m.targetText = ""
	m.resultText = ""
	m.updateViewports()
	m.setStatusMessage("All panes cleared")
}

func (m *Model) doExtract() {
	if strings.TrimSpace(m.sourceText) == "" {
		m.setErrorMessage("Source pane is empty")
		return
	}

	doc, err := m.load(m.sourceText)
	if err != nil {
		m.recordHistory(history.OpExtract, 0, 0, "", err)
		m.setErrorMessage(fmt.Sprintf("Source: %v", err))
		return
	}

	extracted, err := settings.ExtractControls(doc)
	if err != nil {
		m.recordHistory(history.OpExtract, doc.Len(), 0, "", err)
		m.setErrorMessage(fmt.Sprintf("Source: %v", err))
		return
	}

	out, err := settings.Stringify(extracted, m.pretty)
	if err != nil {
		m.setErrorMessage(err.Error())
		return
	}

	m.resultText = out
	m.focus = focusResult
	m.updateViewports()
	m.recordHistory(history.OpExtract, doc.Len(), 0, out, nil)

	bindings := 0
	if controls, ok := extracted.Field(settings.ControlsKey); ok {
		bindings = controls.Len()
	}
	m.setStatusMessage(fmt.Sprintf("Extracted controls (%d bindings)", bindings))
}

func (m *Model) doMerge() {
	if strings.TrimSpace(m.targetText) == "" {
		m.setErrorMessage("Target pane is empty")
		return
	}

	sourceText := m.sourceText
	usedResult := false
	if strings.TrimSpace(sourceText) == "" && m.resultText != "" {
		// A previous extract left its output in the result pane;
		// treat it as the merge source
		sourceText = m.resultText
		usedResult = true
	}
	if strings.TrimSpace(sourceText) == "" {
		m.setErrorMessage("Source pane is empty")
		return
	}

	source, err := m.load(sourceText)
	if err != nil {
		m.recordHistory(history.OpMerge, 0, 0, "", err)
		m.setErrorMessage(fmt.Sprintf("Source: %v", err))
		return
	}

	target, err := m.load(m.targetText)
	if err != nil {
		m.recordHistory(history.OpMerge, source.Len(), 0, "", err)
		m.setErrorMessage(fmt.Sprintf("Target: %v", err))
		return
	}

	merged, err := settings.MergeControls(source, target)
	if errors.Is(err, settings.ErrMissingControls) && !usedResult && m.resultText != "" {
		// A source without controls can still merge if a prior extract
		// left its output in the result pane
		if alt, altErr := m.load(m.resultText); altErr == nil {
			if altMerged, altErr := settings.MergeControls(alt, target); altErr == nil {
				source, merged, err = alt, altMerged, nil
				usedResult = true
			}
		}
	}
	if err != nil {
		m.recordHistory(history.OpMerge, source.Len(), target.Len(), "", err)
		m.setErrorMessage(err.Error())
		return
	}

	out, err := settings.Stringify(merged, m.pretty)
	if err != nil {
		m.setErrorMessage(err.Error())
		return
	}

	m.resultText = out
	m.focus = focusResult
	m.updateViewports()
	m.recordHistory(history.OpMerge, source.Len(), target.Len(), out, nil)

	if usedResult {
		m.setStatusMessage(fmt.Sprintf("Merged result-pane controls into target (%d fields kept)", target.Len()))
	} else {
		m.setStatusMessage(fmt.Sprintf("Merged controls into target (%d fields kept)", target.Len()))
	}
}

func (m *Model) doValidate() {
	text := m.focusedText()
	if strings.TrimSpace(text) == "" {
		m.setErrorMessage("Focused pane is empty")
		return
	}

	doc, err := m.load(text)
	if err != nil {
		m.recordHistory(history.OpValidate, 0, 0, "", err)
		m.setErrorMessage(err.Error())
		return
	}

	// Reformat the pane in place so valid documents get readable
	out, err := settings.Stringify(doc, true)
	if err != nil {
		m.setErrorMessage(err.Error())
		return
	}

	switch m.focus {
	case focusSource:
		m.sourceText = out
	case focusTarget:
		m.targetText = out
	case focusResult:
		m.resultText = out
	}
	m.updateViewports()
	m.recordHistory(history.OpValidate, doc.Len(), 0, "", nil)

	if doc.Kind() == settings.KindObject {
		m.setStatusMessage(fmt.Sprintf("Valid JSON (%d top-level fields)", doc.Len()))
	} else {
		m.setStatusMessage(fmt.Sprintf("Valid JSON (%s)", doc.Kind()))
	}
}

func (m *Model) togglePretty() {
	m.pretty = !m.pretty

	// Re-render the result pane when it holds valid JSON
	if m.resultText != "" {
		if doc, err := settings.Load(m.resultText); err == nil {
			if out, err := settings.Stringify(doc, m.pretty); err == nil {
				m.resultText = out
				m.updateViewports()
			}
		}
	}

	if m.pretty {
		m.setStatusMessage("Pretty output")
	} else {
		m.setStatusMessage("Minified output")
	}

	m.prefs.PrettyOutput = m.pretty
	if err := config.SavePrefs(m.prefs); err != nil {
		m.setErrorMessage(fmt.Sprintf("Failed to save preferences: %v", err))
	}
}

func (m *Model) toggleTheme() {
	if m.prefs.Theme == config.ThemeDark {
		m.prefs.Theme = config.ThemeLight
	} else {
		m.prefs.Theme = config.ThemeDark
	}
	m.updateViewports()
	m.setStatusMessage(fmt.Sprintf("Theme: %s", m.prefs.Theme))

	if err := config.SavePrefs(m.prefs); err != nil {
		m.setErrorMessage(fmt.Sprintf("Failed to save preferences: %v", err))
	}
}

func (m *Model) openHistory() {
	if m.histMgr == nil {
		m.setErrorMessage("History is disabled")
		return
	}

	entries, err := m.histMgr.List(50)
	if err != nil {
		m.setErrorMessage(fmt.Sprintf("Failed to load history: %v", err))
		return
	}

	m.historyEntries = entries
	m.historyIndex = 0
	m.mode = ModeHistory
}

func (m *Model) loadHistoryEntry() {
	if m.historyIndex < 0 || m.historyIndex >= len(m.historyEntries) {
		return
	}
	entry := m.historyEntries[m.historyIndex]
	if entry.Result == "" {
		m.setErrorMessage("Entry has no stored result")
		return
	}

	m.resultText = entry.Result
	m.focus = focusResult
	m.mode = ModeNormal
	m.updateViewports()
	m.setStatusMessage(fmt.Sprintf("Loaded %s result from history", entry.Operation))
}

func (m *Model) clearHistory() {
	if m.histMgr == nil {
		return
	}
	if err := m.histMgr.Clear(); err != nil {
		m.setErrorMessage(fmt.Sprintf("Failed to clear history: %v", err))
		return
	}
	m.historyEntries = nil
	m.historyIndex = 0
	m.setStatusMessage("History cleared")
}

// recordHistory logs the operation when history is enabled. Failures are
// ignored; history must never break an operation.
func (m *Model) recordHistory(op string, sourceFields, targetFields int, result string, opErr error) {
	if m.histMgr == nil {
		return
	}

	entry := history.Entry{
		Operation:    op,
		Frontend:     "tui",
		SourceFields: sourceFields,
		TargetFields: targetFields,
		Result:       result,
	}
	if opErr != nil {
		entry.Error = opErr.Error()
	}
	_ = m.histMgr.Save(entry)
}

func (m *Model) openHelp() {
	m.mode = ModeHelp
	m.helpView.SetContent(m.helpContent())
	m.helpView.GotoTop()
}
