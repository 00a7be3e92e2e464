package settings

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Kind identifies which of the six JSON kinds a Value holds.
type Kind int

const (
	KindInvalid Kind = iota
	KindObject
	KindArray
	KindString
	KindNumber
	KindBool
	KindNull
)

func (k Kind) String() string {
	switch k {
	case KindObject:
		return "object"
	case KindArray:
		return "array"
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindBool:
		return "boolean"
	case KindNull:
		return "null"
	default:
		return "invalid"
	}
}

// Value is one well-formed JSON document, held as its raw bytes.
// The zero Value is invalid; obtain Values from Load or the core operations.
type Value struct {
	raw json.RawMessage
}

// Field is one key/value pair of a JSON object, in document order.
type Field struct {
	Key   string
	Value Value
}

// Kind reports the JSON kind of the value by its first significant byte.
func (v Value) Kind() Kind {
	for _, b := range v.raw {
		switch b {
		case ' ', '\t', '\r', '\n':
			continue
		case '{':
			return KindObject
		case '[':
			return KindArray
		case '"':
			return KindString
		case 't', 'f':
			return KindBool
		case 'n':
			return KindNull
		default:
			return KindNumber
		}
	}
	return KindInvalid
}

// Raw returns the underlying bytes. Callers must not modify them.
func (v Value) Raw() json.RawMessage {
	return v.raw
}

// Decode unmarshals the value into dst, for callers (like JMESPath queries)
// that need ordinary Go values instead of raw bytes.
func (v Value) Decode(dst any) error {
	return json.Unmarshal(v.raw, dst)
}

// Fields returns the object's key/value pairs in document order.
// Fails with ErrNotAnObject for any other kind.
func (v Value) Fields() ([]Field, error) {
	if v.Kind() != KindObject {
		return nil, ErrNotAnObject
	}

	dec := json.NewDecoder(bytes.NewReader(v.raw))
	if _, err := dec.Token(); err != nil { // opening '{'
		return nil, fmt.Errorf("reading object: %w", err)
	}

	var fields []Field
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("reading object key: %w", err)
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected object key token %v", tok)
		}
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return nil, fmt.Errorf("reading value of %q: %w", key, err)
		}
		fields = append(fields, Field{Key: key, Value: Value{raw: raw}})
	}

	return fields, nil
}

// Field returns the value of the named object field, if present.
func (v Value) Field(key string) (Value, bool) {
	fields, err := v.Fields()
	if err != nil {
		return Value{}, false
	}
	for _, f := range fields {
		if f.Key == key {
			return f.Value, true
		}
	}
	return Value{}, false
}

// Len returns the number of fields for objects, elements for arrays,
// and 0 for every other kind.
func (v Value) Len() int {
	switch v.Kind() {
	case KindObject:
		fields, err := v.Fields()
		if err != nil {
			return 0
		}
		return len(fields)
	case KindArray:
		var elems []json.RawMessage
		if err := json.Unmarshal(v.raw, &elems); err != nil {
			return 0
		}
		return len(elems)
	default:
		return 0
	}
}

// Equal reports structural equality: same kinds, same fields and values,
// same object field order. Whitespace differences are ignored.
func (v Value) Equal(other Value) bool {
	a, err := Stringify(v, false)
	if err != nil {
		return false
	}
	b, err := Stringify(other, false)
	if err != nil {
		return false
	}
	return a == b
}
