package domain

import (
	"fmt"
	"strings"
)

// Value is a field value tagged with the type of its field. Only the member
// matching Type is meaningful: Text for scalar types, Items for multiselect,
// Bool for boolean.
type Value struct {
	Type  FieldType
	Text  string
	Items []string
	Bool  bool
}

// TextValue builds a scalar value (text, email, url, textarea, select).
func TextValue(t FieldType, s string) Value {
	return Value{Type: t, Text: s}
}

// ListValue builds a multiselect value.
func ListValue(items []string) Value {
	if items == nil {
		items = []string{}
	}
	return Value{Type: FieldTypeMultiselect, Items: items}
}

// BoolValue builds a boolean value.
func BoolValue(b bool) Value {
	return Value{Type: FieldTypeBoolean, Bool: b}
}

// IsEmpty reports whether the value carries no user data.
// A boolean is never empty: false is an answer.
func (v Value) IsEmpty() bool {
	switch v.Type {
	case FieldTypeMultiselect:
		return len(v.Items) == 0
	case FieldTypeBoolean:
		return false
	default:
		return strings.TrimSpace(v.Text) == ""
	}
}

// Encode returns the persisted string form.
func (v Value) Encode() string {
	switch v.Type {
	case FieldTypeMultiselect:
		return JoinMultiselect(v.Items)
	case FieldTypeBoolean:
		if v.Bool {
			return "true"
		}
		return "false"
	default:
		return v.Text
	}
}

// DecodeValue restores a typed value from its persisted string.
// Booleans other than "true" decode as false.
func DecodeValue(t FieldType, stored string) Value {
	switch t {
	case FieldTypeMultiselect:
		return ListValue(NormalizeMultiselect(stored))
	case FieldTypeBoolean:
		return BoolValue(stored == "true")
	default:
		return TextValue(t, stored)
	}
}

func (v Value) String() string {
	return fmt.Sprintf("%s(%s)", v.Type, v.Encode())
}
