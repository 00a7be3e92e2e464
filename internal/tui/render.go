package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/krunkertools/bindsync/internal/config"
	"github.com/krunkertools/bindsync/internal/keybinds"
)

// palette holds the explicit colors for one theme; the active theme is a
// preference, not a terminal guess
type palette struct {
	accent  lipgloss.Color
	border  lipgloss.Color
	focused lipgloss.Color
	success lipgloss.Color
	err     lipgloss.Color
	subtle  lipgloss.Color
}

var paletteDark = palette{
	accent:  lipgloss.Color("#00ffff"),
	border:  lipgloss.Color("#888888"),
	focused: lipgloss.Color("#00ff00"),
	success: lipgloss.Color("#00ff00"),
	err:     lipgloss.Color("#ff0000"),
	subtle:  lipgloss.Color("#888888"),
}

var paletteLight = palette{
	accent:  lipgloss.Color("#008b8b"),
	border:  lipgloss.Color("#555555"),
	focused: lipgloss.Color("#006400"),
	success: lipgloss.Color("#006400"),
	err:     lipgloss.Color("#8b0000"),
	subtle:  lipgloss.Color("#555555"),
}

func (m *Model) palette() palette {
	if m.prefs.Theme == config.ThemeLight {
		return paletteLight
	}
	return paletteDark
}

// updateViewports resizes the three panes and refreshes their content
func (m *Model) updateViewports() {
	if m.width == 0 || m.height == 0 {
		return
	}

	// Two panes on top, result below, one line of status bar.
	// Each box loses 2 columns and 2 rows to its border.
	topWidth := m.width / 2
	topHeight := (m.height - 1) * 45 / 100
	if topHeight < 5 {
		topHeight = 5
	}
	resultHeight := m.height - 1 - topHeight - 4

	m.sourceView.Width = topWidth - 2
	m.sourceView.Height = topHeight - 3
	m.targetView.Width = m.width - topWidth - 2
	m.targetView.Height = topHeight - 3
	m.resultView.Width = m.width - 2
	m.resultView.Height = resultHeight

	m.helpView.Width = min(m.width-8, 72)
	m.helpView.Height = m.height - 8

	m.sourceView.SetContent(paneContent(m.sourceText, "Press 'o' to open a file or 'p' to paste"))
	m.targetView.SetContent(paneContent(m.targetText, "Press 'O' to open a file or 'P' to paste"))
	m.resultView.SetContent(m.resultContent())
}

func paneContent(text, placeholder string) string {
	if strings.TrimSpace(text) == "" {
		return placeholder
	}
	return text
}

// resultContent returns the result pane text, highlighted when it parses
func (m *Model) resultContent() string {
	if strings.TrimSpace(m.resultText) == "" {
		return "Run 'e' (extract) or 'm' (merge) to produce output"
	}
	return m.highlightResult(m.resultText)
}

// renderMain renders the three-pane main view
func (m *Model) renderMain() string {
	if m.width == 0 {
		return ""
	}

	pal := m.palette()

	topWidth := m.width / 2
	topHeight := (m.height - 1) * 45 / 100
	if topHeight < 5 {
		topHeight = 5
	}

	sourceBox := m.renderPane(pal, "Source", m.sourceView.View(), topWidth-2, topHeight, m.focus == focusSource)
	targetBox := m.renderPane(pal, "Target", m.targetView.View(), m.width-topWidth-2, topHeight, m.focus == focusTarget)
	resultBox := m.renderPane(pal, m.resultTitle(), m.resultView.View(), m.width-2, m.height-1-topHeight-2, m.focus == focusResult)

	topRow := lipgloss.JoinHorizontal(lipgloss.Top, sourceBox, targetBox)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		topRow,
		resultBox,
		m.renderStatusBar(pal),
	)
}

func (m *Model) resultTitle() string {
	if m.pretty {
		return "Result (pretty)"
	}
	return "Result (minified)"
}

func (m *Model) renderPane(pal palette, title, content string, width, height int, focused bool) string {
	borderColor := pal.border
	if focused {
		borderColor = pal.focused
	}

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(pal.accent)

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(borderColor).
		Width(width).
		Height(height).
		Render(titleStyle.Render(title) + "\n" + content)
}

// renderStatusBar renders the bottom status line
func (m *Model) renderStatusBar(pal palette) string {
	flags := []string{}
	if m.lenient {
		flags = append(flags, "lenient")
	}
	flags = append(flags, string(m.prefs.Theme))
	left := fmt.Sprintf("bindsync [%s]", strings.Join(flags, " "))

	right := ""
	switch {
	case m.errorMsg != "":
		right = lipgloss.NewStyle().Foreground(pal.err).Render(m.errorMsg)
	case m.statusMsg != "":
		right = lipgloss.NewStyle().Foreground(pal.success).Render(m.statusMsg)
	default:
		right = lipgloss.NewStyle().Foreground(pal.subtle).Render("e extract | m merge | v validate | ? help | q quit")
	}

	spacing := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if spacing < 1 {
		spacing = 1
	}

	return left + strings.Repeat(" ", spacing) + right
}

// renderPrompt renders the path input modal
func (m *Model) renderPrompt() string {
	pal := m.palette()

	title := ""
	switch m.promptFor {
	case promptOpenSource:
		title = "Open source file"
	case promptOpenTarget:
		title = "Open target file"
	case promptSaveResult:
		title = "Save result as"
	}

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(pal.accent)
	subtleStyle := lipgloss.NewStyle().Foreground(pal.subtle)

	body := titleStyle.Render(title) + "\n\n" +
		"> " + addCursor(m.promptInput) + "\n\n" +
		subtleStyle.Render("enter confirm | esc cancel | ctrl+v paste")

	return m.centerModal(pal, body, min(m.width-8, 64))
}

// renderHistory renders the operation history modal
func (m *Model) renderHistory() string {
	pal := m.palette()

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(pal.accent)
	selectedStyle := lipgloss.NewStyle().Bold(true).Foreground(pal.focused)
	errStyle := lipgloss.NewStyle().Foreground(pal.err)
	subtleStyle := lipgloss.NewStyle().Foreground(pal.subtle)

	var lines []string
	lines = append(lines, titleStyle.Render(fmt.Sprintf("History (%d entries)", len(m.historyEntries))))
	lines = append(lines, "")

	if len(m.historyEntries) == 0 {
		lines = append(lines, subtleStyle.Render("No operations recorded yet"))
	}

	// Keep the selection visible in tall histories
	visible := m.height - 10
	if visible < 5 {
		visible = 5
	}
	start := 0
	if m.historyIndex >= visible {
		start = m.historyIndex - visible + 1
	}

	for i := start; i < len(m.historyEntries) && i < start+visible; i++ {
		entry := m.historyEntries[i]
		status := "ok"
		if entry.Error != "" {
			status = errStyle.Render("failed")
		}
		line := fmt.Sprintf("%s  %-8s  %-4s  %s",
			entry.Timestamp.Format("2006-01-02 15:04:05"),
			entry.Operation, entry.Frontend, status)
		if i == m.historyIndex {
			line = selectedStyle.Render("> " + line)
		} else {
			line = "  " + line
		}
		lines = append(lines, line)
	}

	lines = append(lines, "")
	lines = append(lines, subtleStyle.Render("enter load result | C clear | esc close"))

	return m.centerModal(pal, strings.Join(lines, "\n"), min(m.width-8, 72))
}

// renderConfirmClear renders the history clear confirmation
func (m *Model) renderConfirmClear() string {
	pal := m.palette()

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(pal.err)
	subtleStyle := lipgloss.NewStyle().Foreground(pal.subtle)

	body := titleStyle.Render("Clear all history?") + "\n\n" +
		fmt.Sprintf("This deletes all %d recorded operations.", len(m.historyEntries)) + "\n\n" +
		subtleStyle.Render("y confirm | n cancel")

	return m.centerModal(pal, body, min(m.width-8, 48))
}

// renderHelp renders the scrollable keybinding reference
func (m *Model) renderHelp() string {
	pal := m.palette()

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(pal.accent)
	subtleStyle := lipgloss.NewStyle().Foreground(pal.subtle)

	body := titleStyle.Render("Help") + "\n\n" +
		m.helpView.View() + "\n\n" +
		subtleStyle.Render("j/k scroll | esc close")

	return m.centerModal(pal, body, min(m.width-8, 76))
}

// helpContent builds the help text from the live registry so user
// overrides show their actual keys
func (m *Model) helpContent() string {
	bind := func(action keybinds.Action) string {
		return m.keys.GetBindingString(keybinds.ContextNormal, action)
	}

	sections := []struct {
		title string
		rows  [][2]string
	}{
		{"Documents", [][2]string{
			{bind(keybinds.ActionOpenSource), "open source settings file"},
			{bind(keybinds.ActionOpenTarget), "open target settings file"},
			{bind(keybinds.ActionPasteSource), "paste clipboard into source"},
			{bind(keybinds.ActionPasteTarget), "paste clipboard into target"},
			{bind(keybinds.ActionClearAll), "clear all panes"},
		}},
		{"Operations", [][2]string{
			{bind(keybinds.ActionExtract), "extract controls from source"},
			{bind(keybinds.ActionMerge), "merge controls into target"},
			{bind(keybinds.ActionValidate), "validate focused pane"},
		}},
		{"Result", [][2]string{
			{bind(keybinds.ActionCopyResult), "copy result to clipboard"},
			{bind(keybinds.ActionSaveResult), "save result to a file"},
			{bind(keybinds.ActionTogglePretty), "toggle pretty/minified output"},
		}},
		{"Settings", [][2]string{
			{bind(keybinds.ActionToggleLenient), "toggle lenient parsing"},
			{bind(keybinds.ActionToggleTheme), "toggle dark/light theme"},
		}},
		{"Navigation", [][2]string{
			{bind(keybinds.ActionSwitchFocus), "cycle pane focus"},
			{bind(keybinds.ActionNavigateUp) + "/" + bind(keybinds.ActionNavigateDown), "scroll focused pane"},
			{bind(keybinds.ActionOpenHistory), "operation history"},
			{bind(keybinds.ActionQuit), "quit"},
		}},
	}

	var b strings.Builder
	for _, section := range sections {
		b.WriteString(section.title + "\n")
		for _, row := range section.rows {
			b.WriteString(fmt.Sprintf("  %-12s %s\n", row[0], row[1]))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m *Model) centerModal(pal palette, content string, width int) string {
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(pal.accent).
		Padding(1, 2).
		Width(width).
		Render(content)

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

func addCursor(input string) string {
	return input + "█"
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
