// Package dynform renders admin-defined fields as form inputs and assembles
// them into a per-system form that splits into core and extension attributes.
package dynform

import (
	"strings"

	"github.com/heartmarshall/erp-compare-backend/internal/domain"
)

// Widget is the input control used for a field type.
type Widget string

const (
	WidgetText        Widget = "text"
	WidgetEmail       Widget = "email"
	WidgetURL         Widget = "url"
	WidgetTextarea    Widget = "textarea"
	WidgetSelect      Widget = "select"
	WidgetMultiselect Widget = "multiselect"
	WidgetCheckbox    Widget = "checkbox"
)

var widgets = map[domain.FieldType]Widget{
	domain.FieldTypeText:        WidgetText,
	domain.FieldTypeEmail:       WidgetEmail,
	domain.FieldTypeURL:         WidgetURL,
	domain.FieldTypeTextarea:    WidgetTextarea,
	domain.FieldTypeSelect:      WidgetSelect,
	domain.FieldTypeMultiselect: WidgetMultiselect,
	domain.FieldTypeBoolean:     WidgetCheckbox,
}

// Input is the render representation of one field with its current value.
type Input struct {
	Widget   Widget   `json:"widget"`
	Name     string   `json:"name"`
	Label    string   `json:"label"`
	Help     string   `json:"help,omitempty"`
	Required bool     `json:"required"`
	Options  []string `json:"options,omitempty"`
	Text     string   `json:"text,omitempty"`
	Items    []string `json:"items,omitempty"`
	Checked  bool     `json:"checked,omitempty"`
}

// Render produces the input representation of field holding current.
// A value of the wrong variant is coerced through its encoded form.
func Render(field domain.Field, current domain.Value) Input {
	in := Input{
		Widget:   widgetFor(field.Type),
		Name:     field.Key,
		Label:    field.Name,
		Required: field.IsRequired,
		Options:  field.Options,
	}
	if field.Description != nil {
		in.Help = *field.Description
	}

	switch field.Type {
	case domain.FieldTypeMultiselect:
		if current.Type == domain.FieldTypeMultiselect {
			in.Items = current.Items
		} else {
			in.Items = domain.NormalizeMultiselect(current.Text)
		}
	case domain.FieldTypeBoolean:
		in.Checked = current.Encode() == "true"
	default:
		in.Text = current.Encode()
	}
	return in
}

// ParseEdit turns a raw user edit into the canonical value for field.
// It performs no format validation; Submit does.
func ParseEdit(field domain.Field, raw any) (domain.Value, error) {
	switch field.Type {
	case domain.FieldTypeMultiselect:
		switch raw.(type) {
		case nil, string, []string, []any:
		default:
			return domain.Value{}, domain.NewValidationError(field.Key, "must be a list of strings")
		}
		return domain.ListValue(domain.DedupeTokens(domain.NormalizeMultiselect(raw))), nil

	case domain.FieldTypeBoolean:
		return domain.BoolValue(parseBool(raw)), nil

	default:
		switch v := raw.(type) {
		case nil:
			return domain.TextValue(field.Type, ""), nil
		case string:
			return domain.TextValue(field.Type, strings.TrimSpace(v)), nil
		default:
			return domain.Value{}, domain.NewValidationError(field.Key, "must be a string")
		}
	}
}

func parseBool(raw any) bool {
	switch v := raw.(type) {
	case bool:
		return v
	case string:
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "true", "on", "1":
			return true
		}
	}
	return false
}

func widgetFor(t domain.FieldType) Widget {
	if w, ok := widgets[t]; ok {
		return w
	}
	return WidgetText
}
