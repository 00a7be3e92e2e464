package settings

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/tidwall/jsonc"
)

// ControlsKey is the one field name the core treats specially. Every other
// field passes through untouched.
const ControlsKey = "controls"

// Load parses JSON text into a Value. The text is not coerced or repaired:
// blank input fails with ErrEmptyInput and malformed input fails with a
// *ParseError wrapping ErrInvalidJSON.
func Load(text string) (Value, error) {
	if strings.TrimSpace(text) == "" {
		return Value{}, ErrEmptyInput
	}

	// Parse the text as given so error offsets, and therefore the
	// line/column diagnostics, match what the user is looking at.
	var raw json.RawMessage
	if err := json.Unmarshal([]byte(text), &raw); err != nil {
		return Value{}, parseError(text, err)
	}
	return Value{raw: raw}, nil
}

// LoadLenient strips comments and trailing commas before parsing strictly.
// It is only reachable behind an explicit caller choice; Load is the
// default path.
func LoadLenient(text string) (Value, error) {
	return Load(string(jsonc.ToJSON([]byte(text))))
}

// parseError attaches line/column information where the decoder reports an
// offset into the input.
func parseError(text string, err error) error {
	var offset int64 = -1
	switch e := err.(type) {
	case *json.SyntaxError:
		offset = e.Offset
	case *json.UnmarshalTypeError:
		offset = e.Offset
	}
	line, col := positionOf(text, offset)
	return &ParseError{Line: line, Column: col, Msg: err.Error()}
}

// ExtractControls returns a new object holding only the controls section of
// doc: {"controls": doc.controls}. The controls value is shared with doc,
// not deep-copied. Fails with ErrNotAnObject when doc is not an object and
// ErrMissingControls when it has no controls field.
func ExtractControls(doc Value) (Value, error) {
	switch doc.Kind() {
	case KindObject:
		// handled below
	case KindArray, KindString, KindNumber, KindBool, KindNull:
		return Value{}, ErrNotAnObject
	default:
		return Value{}, ErrInvalidJSON
	}

	controls, ok := doc.Field(ControlsKey)
	if !ok {
		return Value{}, ErrMissingControls
	}

	var buf bytes.Buffer
	buf.Grow(len(controls.raw) + len(ControlsKey) + 4)
	buf.WriteString(`{"` + ControlsKey + `":`)
	buf.Write(controls.raw)
	buf.WriteByte('}')
	return Value{raw: buf.Bytes()}, nil
}

// MergeControls returns a new object equal to target except that its
// controls field holds source's controls value. The field keeps its
// position in target when it already exists and is appended otherwise.
// Neither input is mutated; calling again with the same inputs yields the
// same result.
//
// source may be a full settings document or a controls-only document; either
// way it must be an object carrying a controls field (ErrMissingControls
// otherwise). target must be an object (ErrNotAnObject otherwise).
func MergeControls(source, target Value) (Value, error) {
	if source.Kind() != KindObject {
		return Value{}, ErrMissingControls
	}
	controls, ok := source.Field(ControlsKey)
	if !ok {
		return Value{}, ErrMissingControls
	}

	fields, err := target.Fields()
	if err != nil {
		return Value{}, err
	}

	var buf bytes.Buffer
	buf.WriteByte('{')
	replaced := false
	for i, f := range fields {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(f.Key)
		if err != nil {
			return Value{}, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		if f.Key == ControlsKey && !replaced {
			buf.Write(controls.raw)
			replaced = true
		} else {
			buf.Write(f.Value.raw)
		}
	}
	if !replaced {
		if len(fields) > 0 {
			buf.WriteByte(',')
		}
		buf.WriteString(`"` + ControlsKey + `":`)
		buf.Write(controls.raw)
	}
	buf.WriteByte('}')

	return Value{raw: buf.Bytes()}, nil
}

// Stringify renders a Value back to text, either pretty-printed with
// two-space indentation or minified. It reformats the raw bytes in place,
// so field order and Unicode characters are preserved.
func Stringify(v Value, pretty bool) (string, error) {
	var buf bytes.Buffer
	if pretty {
		if err := json.Indent(&buf, v.raw, "", "  "); err != nil {
			return "", err
		}
	} else {
		if err := json.Compact(&buf, v.raw); err != nil {
			return "", err
		}
	}
	return buf.String(), nil
}
