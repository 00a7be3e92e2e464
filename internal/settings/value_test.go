package settings

import "testing"

func TestKind(t *testing.T) {
	tests := []struct {
		text string
		want Kind
	}{
		{`{}`, KindObject},
		{`  {"a":1}`, KindObject},
		{`[1,2]`, KindArray},
		{`"hi"`, KindString},
		{`-3.5`, KindNumber},
		{`1e3`, KindNumber},
		{`true`, KindBool},
		{`false`, KindBool},
		{`null`, KindNull},
	}

	for _, tt := range tests {
		v := mustLoad(t, tt.text)
		if got := v.Kind(); got != tt.want {
			t.Errorf("Kind(%s) = %v, want %v", tt.text, got, tt.want)
		}
	}

	if got := (Value{}).Kind(); got != KindInvalid {
		t.Errorf("zero Value kind = %v, want invalid", got)
	}
}

func TestFieldsPreserveOrder(t *testing.T) {
	v := mustLoad(t, `{"z":1,"a":2,"controls":{},"m":3}`)
	fields, err := v.Fields()
	if err != nil {
		t.Fatal(err)
	}

	want := []string{"z", "a", "controls", "m"}
	if len(fields) != len(want) {
		t.Fatalf("expected %d fields, got %d", len(want), len(fields))
	}
	for i, key := range want {
		if fields[i].Key != key {
			t.Errorf("field %d: got %q, want %q", i, fields[i].Key, key)
		}
	}
}

func TestFieldsNotAnObject(t *testing.T) {
	v := mustLoad(t, `[1,2,3]`)
	if _, err := v.Fields(); err != ErrNotAnObject {
		t.Errorf("expected ErrNotAnObject, got %v", err)
	}
}

func TestFieldLookup(t *testing.T) {
	v := mustLoad(t, `{"controls":{"forward":"w"},"volume":5}`)

	controls, ok := v.Field("controls")
	if !ok {
		t.Fatal("controls field not found")
	}
	if controls.Kind() != KindObject || controls.Len() != 1 {
		t.Errorf("unexpected controls value: %s", controls.Raw())
	}

	if _, ok := v.Field("missing"); ok {
		t.Error("found a field that does not exist")
	}
}

func TestLen(t *testing.T) {
	tests := []struct {
		text string
		want int
	}{
		{`{}`, 0},
		{`{"a":1,"b":2}`, 2},
		{`[1,2,3]`, 3},
		{`"str"`, 0},
		{`null`, 0},
	}
	for _, tt := range tests {
		if got := mustLoad(t, tt.text).Len(); got != tt.want {
			t.Errorf("Len(%s) = %d, want %d", tt.text, got, tt.want)
		}
	}
}
