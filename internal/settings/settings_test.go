package settings

import (
	"errors"
	"strings"
	"testing"
)

func mustLoad(t *testing.T, text string) Value {
	t.Helper()
	v, err := Load(text)
	if err != nil {
		t.Fatalf("Load(%q) failed: %v", text, err)
	}
	return v
}

func TestLoad(t *testing.T) {
	v := mustLoad(t, `{"controls":{"forward":"w"},"volume":5}`)
	if v.Kind() != KindObject {
		t.Errorf("expected object, got %v", v.Kind())
	}
	if v.Len() != 2 {
		t.Errorf("expected 2 fields, got %d", v.Len())
	}
}

func TestLoadEmptyInput(t *testing.T) {
	for _, text := range []string{"", "   ", "\n\t\n"} {
		if _, err := Load(text); !errors.Is(err, ErrEmptyInput) {
			t.Errorf("Load(%q): expected ErrEmptyInput, got %v", text, err)
		}
	}
}

func TestLoadInvalidJSON(t *testing.T) {
	_, err := Load(`{invalid`)
	if !errors.Is(err, ErrInvalidJSON) {
		t.Fatalf("expected ErrInvalidJSON, got %v", err)
	}

	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected *ParseError, got %T", err)
	}
	if parseErr.Line != 1 || parseErr.Column < 2 {
		t.Errorf("unexpected position line=%d col=%d", parseErr.Line, parseErr.Column)
	}
}

func TestLoadInvalidJSONMultiline(t *testing.T) {
	_, err := Load("{\n  \"a\": 1,\n  \"b\": oops\n}")
	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected *ParseError, got %v", err)
	}
	if parseErr.Line != 3 {
		t.Errorf("expected error on line 3, got line %d", parseErr.Line)
	}
}

func TestLoadCountsLeadingBlankLines(t *testing.T) {
	// Diagnostics must point into the text as the user typed it,
	// leading whitespace included.
	_, err := Load("\n\n{\"a\": oops}")
	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected *ParseError, got %v", err)
	}
	if parseErr.Line != 3 {
		t.Errorf("expected error on line 3, got line %d", parseErr.Line)
	}
}

func TestLoadRejectsTrailingGarbage(t *testing.T) {
	if _, err := Load(`{"a":1} {"b":2}`); !errors.Is(err, ErrInvalidJSON) {
		t.Errorf("expected ErrInvalidJSON for two top-level values, got %v", err)
	}
}

func TestLoadDoesNotRepair(t *testing.T) {
	// Trailing commas and comments are syntax errors on the strict path.
	for _, text := range []string{
		`{"a":1,}`,
		"{\n// comment\n\"a\":1}",
	} {
		if _, err := Load(text); !errors.Is(err, ErrInvalidJSON) {
			t.Errorf("Load(%q): expected ErrInvalidJSON, got %v", text, err)
		}
	}
}

func TestLoadLenient(t *testing.T) {
	v, err := LoadLenient("{\n  // movement keys\n  \"controls\": {\"forward\": \"w\",},\n}")
	if err != nil {
		t.Fatalf("LoadLenient failed: %v", err)
	}
	got, _ := Stringify(v, false)
	want := `{"controls":{"forward":"w"}}`
	if got != want {
		t.Errorf("got %s, want %s", got, want)
	}
}

func TestLoadLenientEmptyAfterStrip(t *testing.T) {
	if _, err := LoadLenient("// nothing here\n"); !errors.Is(err, ErrEmptyInput) {
		t.Errorf("expected ErrEmptyInput, got %v", err)
	}
}

func TestExtractControls(t *testing.T) {
	doc := mustLoad(t, `{"controls":{"forward":"w"},"volume":5}`)
	out, err := ExtractControls(doc)
	if err != nil {
		t.Fatalf("ExtractControls failed: %v", err)
	}

	got, _ := Stringify(out, false)
	want := `{"controls":{"forward":"w"}}`
	if got != want {
		t.Errorf("got %s, want %s", got, want)
	}

	// Input untouched.
	orig, _ := Stringify(doc, false)
	if orig != `{"controls":{"forward":"w"},"volume":5}` {
		t.Errorf("input document mutated: %s", orig)
	}
}

func TestExtractControlsMissing(t *testing.T) {
	doc := mustLoad(t, `{"volume":5}`)
	if _, err := ExtractControls(doc); !errors.Is(err, ErrMissingControls) {
		t.Errorf("expected ErrMissingControls, got %v", err)
	}
}

func TestExtractControlsNotAnObject(t *testing.T) {
	for _, text := range []string{`[1,2]`, `"controls"`, `42`, `true`, `null`} {
		doc := mustLoad(t, text)
		if _, err := ExtractControls(doc); !errors.Is(err, ErrNotAnObject) {
			t.Errorf("ExtractControls(%s): expected ErrNotAnObject, got %v", text, err)
		}
	}
}

func TestExtractControlsNonObjectControlsValue(t *testing.T) {
	// The controls value is opaque; the extractor never interprets its shape.
	doc := mustLoad(t, `{"controls":[1,2,3]}`)
	out, err := ExtractControls(doc)
	if err != nil {
		t.Fatalf("ExtractControls failed: %v", err)
	}
	got, _ := Stringify(out, false)
	if got != `{"controls":[1,2,3]}` {
		t.Errorf("got %s", got)
	}
}

func TestMergeControls(t *testing.T) {
	tests := []struct {
		name   string
		source string
		target string
		want   string
	}{
		{
			name:   "controls-only source replaces target controls",
			source: `{"controls":{"forward":"w"}}`,
			target: `{"controls":{"forward":"up"},"volume":5}`,
			want:   `{"controls":{"forward":"w"},"volume":5}`,
		},
		{
			name:   "full settings source",
			source: `{"controls":{"jump":"space"},"sound":true}`,
			target: `{"name":"alt","controls":{"jump":"j"},"volume":2}`,
			want:   `{"name":"alt","controls":{"jump":"space"},"volume":2}`,
		},
		{
			name:   "controls appended when target lacks it",
			source: `{"controls":{"forward":"w"}}`,
			target: `{"volume":5,"name":"fresh"}`,
			want:   `{"volume":5,"name":"fresh","controls":{"forward":"w"}}`,
		},
		{
			name:   "empty target object",
			source: `{"controls":{"forward":"w"}}`,
			target: `{}`,
			want:   `{"controls":{"forward":"w"}}`,
		},
		{
			name:   "controls keeps its position mid-document",
			source: `{"controls":"s"}`,
			target: `{"a":1,"controls":"t","z":26}`,
			want:   `{"a":1,"controls":"s","z":26}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			merged, err := MergeControls(mustLoad(t, tt.source), mustLoad(t, tt.target))
			if err != nil {
				t.Fatalf("MergeControls failed: %v", err)
			}
			got, _ := Stringify(merged, false)
			if got != tt.want {
				t.Errorf("got %s, want %s", got, tt.want)
			}
		})
	}
}

func TestMergeControlsErrors(t *testing.T) {
	tests := []struct {
		name   string
		source string
		target string
		want   error
	}{
		{"source missing controls", `{"volume":1}`, `{"controls":{"x":1}}`, ErrMissingControls},
		{"source not an object", `[1,2]`, `{"controls":{"x":1}}`, ErrMissingControls},
		{"target not an object", `{"controls":{"x":1}}`, `[1,2]`, ErrNotAnObject},
		{"target is a scalar", `{"controls":{"x":1}}`, `7`, ErrNotAnObject},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := MergeControls(mustLoad(t, tt.source), mustLoad(t, tt.target))
			if !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestMergeControlsDoesNotMutateInputs(t *testing.T) {
	source := mustLoad(t, `{"controls":{"forward":"w"}}`)
	target := mustLoad(t, `{"controls":{"forward":"up"},"volume":5}`)

	if _, err := MergeControls(source, target); err != nil {
		t.Fatal(err)
	}

	s, _ := Stringify(source, false)
	tg, _ := Stringify(target, false)
	if s != `{"controls":{"forward":"w"}}` {
		t.Errorf("source mutated: %s", s)
	}
	if tg != `{"controls":{"forward":"up"},"volume":5}` {
		t.Errorf("target mutated: %s", tg)
	}
}

func TestMergeControlsIdempotent(t *testing.T) {
	source := mustLoad(t, `{"controls":{"forward":"w","jump":"space"}}`)
	target := mustLoad(t, `{"volume":5,"controls":{"forward":"up"}}`)

	once, err := MergeControls(source, target)
	if err != nil {
		t.Fatal(err)
	}
	twice, err := MergeControls(source, once)
	if err != nil {
		t.Fatal(err)
	}
	if !once.Equal(twice) {
		a, _ := Stringify(once, false)
		b, _ := Stringify(twice, false)
		t.Errorf("merge not idempotent:\nonce:  %s\ntwice: %s", a, b)
	}
}

func TestStringifyRoundTrip(t *testing.T) {
	texts := []string{
		`{"controls":{"forward":"w","look up":"↑"},"volume":5,"name":"プレイヤー"}`,
		`{"big":12345678901234567890,"exp":1e3,"frac":0.500}`,
		`{"nested":{"a":[1,2,{"b":null}],"c":true}}`,
	}

	for _, text := range texts {
		for _, pretty := range []bool{true, false} {
			v := mustLoad(t, text)
			rendered, err := Stringify(v, pretty)
			if err != nil {
				t.Fatalf("Stringify(%q, %v) failed: %v", text, pretty, err)
			}
			back, err := Load(rendered)
			if err != nil {
				t.Fatalf("round trip Load failed: %v", err)
			}
			if !v.Equal(back) {
				t.Errorf("round trip changed value (pretty=%v):\nin:  %s\nout: %s", pretty, text, rendered)
			}
		}
	}
}

func TestStringifyPrettyIndentation(t *testing.T) {
	v := mustLoad(t, `{"controls":{"forward":"w"}}`)
	got, err := Stringify(v, true)
	if err != nil {
		t.Fatal(err)
	}
	want := "{\n  \"controls\": {\n    \"forward\": \"w\"\n  }\n}"
	if got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestStringifyPreservesUnicode(t *testing.T) {
	v := mustLoad(t, `{"controls":{"melee":"é"}}`)
	got, err := Stringify(v, true)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(got, "é") {
		t.Errorf("unicode escaped away: %s", got)
	}
}

func TestNumberFidelity(t *testing.T) {
	// Raw bytes travel untouched, so exotic numbers survive extract+merge.
	source := mustLoad(t, `{"controls":{"sens":0.350}}`)
	target := mustLoad(t, `{"controls":{},"ts":1700000000000000001}`)

	merged, err := MergeControls(source, target)
	if err != nil {
		t.Fatal(err)
	}
	got, _ := Stringify(merged, false)
	want := `{"controls":{"sens":0.350},"ts":1700000000000000001}`
	if got != want {
		t.Errorf("got %s, want %s", got, want)
	}
}
