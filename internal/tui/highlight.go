package tui

import (
	"strings"

	"github.com/alecthomas/chroma/v2/quick"
	"github.com/krunkertools/bindsync/internal/config"
	"github.com/krunkertools/bindsync/internal/settings"
)

// highlightResult syntax-highlights the result pane. Invalid documents and
// highlighter failures fall back to the plain text.
func (m *Model) highlightResult(text string) string {
	if _, err := settings.Load(text); err != nil {
		return text
	}

	style := "monokai"
	if m.prefs.Theme == config.ThemeLight {
		style = "github"
	}

	var b strings.Builder
	if err := quick.Highlight(&b, text, "json", "terminal256", style); err != nil {
		return text
	}
	return b.String()
}
