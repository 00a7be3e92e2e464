package keybinds

import (
	"os"
	"path/filepath"
	"testing"
)

func TestMatchContextBeforeGlobal(t *testing.T) {
	r := NewRegistry()
	r.Register(ContextGlobal, "q", ActionQuitForce)
	r.Register(ContextNormal, "q", ActionQuit)

	action, ok := r.Match(ContextNormal, "q")
	if !ok || action != ActionQuit {
		t.Errorf("expected context binding to win, got %q (ok=%v)", action, ok)
	}

	// Other contexts fall back to global
	action, ok = r.Match(ContextHistory, "q")
	if !ok || action != ActionQuitForce {
		t.Errorf("expected global fallback, got %q (ok=%v)", action, ok)
	}
}

func TestMatchUnbound(t *testing.T) {
	r := NewDefaultRegistry()
	if action, ok := r.Match(ContextNormal, "ctrl+alt+x"); ok {
		t.Errorf("expected no match, got %q", action)
	}
}

func TestDefaultRegistryCoreBindings(t *testing.T) {
	r := NewDefaultRegistry()

	tests := []struct {
		context Context
		key     string
		want    Action
	}{
		{ContextNormal, "e", ActionExtract},
		{ContextNormal, "m", ActionMerge},
		{ContextNormal, "v", ActionValidate},
		{ContextNormal, "c", ActionCopyResult},
		{ContextNormal, "t", ActionToggleTheme},
		{ContextNormal, "ctrl+c", ActionQuitForce}, // global fallback
		{ContextHistory, "enter", ActionHistoryLoad},
		{ContextPrompt, "esc", ActionTextCancel},
		{ContextConfirm, "y", ActionConfirm},
	}

	for _, tt := range tests {
		action, ok := r.Match(tt.context, tt.key)
		if !ok || action != tt.want {
			t.Errorf("Match(%s, %q) = %q (ok=%v), want %q", tt.context, tt.key, action, ok, tt.want)
		}
	}
}

func TestGetBindingString(t *testing.T) {
	r := NewDefaultRegistry()

	if got := r.GetBindingString(ContextNormal, ActionExtract); got != "e" {
		t.Errorf("GetBindingString(extract) = %q, want e", got)
	}
	if got := r.GetBindingString(ContextNormal, Action("nope")); got != "unbound" {
		t.Errorf("GetBindingString(nope) = %q, want unbound", got)
	}
}

func TestApplyConfigOverridesDefaults(t *testing.T) {
	r := NewDefaultRegistry()
	ApplyConfig(r, &Config{
		Normal: map[string]string{"x": "extract", "e": "merge"},
	})

	if action, _ := r.Match(ContextNormal, "x"); action != ActionExtract {
		t.Errorf("new binding not applied, got %q", action)
	}
	if action, _ := r.Match(ContextNormal, "e"); action != ActionMerge {
		t.Errorf("override not applied, got %q", action)
	}
}

func TestLoadOrDefault(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "keybinds.json")

	// Missing file: defaults
	r, err := LoadOrDefault(path)
	if err != nil {
		t.Fatalf("LoadOrDefault with missing file failed: %v", err)
	}
	if action, _ := r.Match(ContextNormal, "e"); action != ActionExtract {
		t.Errorf("defaults not loaded, got %q", action)
	}

	// With override file
	if err := os.WriteFile(path, []byte(`{"version":"1.0","normal":{"E":"extract"}}`), 0644); err != nil {
		t.Fatal(err)
	}
	r, err = LoadOrDefault(path)
	if err != nil {
		t.Fatalf("LoadOrDefault failed: %v", err)
	}
	if action, _ := r.Match(ContextNormal, "E"); action != ActionExtract {
		t.Errorf("override file not applied, got %q", action)
	}

	// Malformed file is an error, not a silent fallback
	if err := os.WriteFile(path, []byte(`{nope`), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadOrDefault(path); err == nil {
		t.Error("expected error for malformed keybinds.json")
	}
}
