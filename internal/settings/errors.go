package settings

import (
	"errors"
	"fmt"
)

// Sentinel errors for simple checks with errors.Is.
var (
	// ErrEmptyInput indicates the input text was blank after trimming.
	ErrEmptyInput = errors.New("no JSON text provided")
	// ErrInvalidJSON indicates the input text is not well-formed JSON.
	// Use errors.As with *ParseError for position details.
	ErrInvalidJSON = errors.New("invalid JSON")
	// ErrNotAnObject indicates a document that must be a JSON object is not one.
	ErrNotAnObject = errors.New("settings JSON must be an object")
	// ErrMissingControls indicates a document has no "controls" section.
	ErrMissingControls = errors.New("no 'controls' section found")
)

// ParseError describes a JSON syntax failure with its position in the input.
type ParseError struct {
	Line   int
	Column int
	Msg    string
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("invalid JSON at line %d, column %d: %s", e.Line, e.Column, e.Msg)
	}
	return fmt.Sprintf("invalid JSON: %s", e.Msg)
}

// Unwrap lets errors.Is(err, ErrInvalidJSON) match a *ParseError.
func (e *ParseError) Unwrap() error {
	return ErrInvalidJSON
}

// positionOf converts a byte offset into a 1-based line and column.
func positionOf(text string, offset int64) (line, col int) {
	if offset < 0 || offset > int64(len(text)) {
		return 0, 0
	}
	line, col = 1, 1
	for _, b := range []byte(text[:offset]) {
		if b == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}
	return line, col
}
