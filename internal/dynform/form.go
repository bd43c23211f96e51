package dynform

import (
	"net/url"
	"regexp"

	"github.com/google/uuid"

	"github.com/heartmarshall/erp-compare-backend/internal/domain"
)

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Validation messages.
const (
	MsgRequired       = "field is required"
	MsgInvalidEmail   = "invalid email"
	MsgInvalidURL     = "invalid URL"
	MsgNameRequired   = "system name is required"
	MsgVendorRequired = "supplier is required"
	MsgInvalidOption  = "not an allowed option"
)

// FormField is one editable field with its current canonical value.
type FormField struct {
	Field domain.Field
	Value domain.Value
}

// Input renders the field.
func (f *FormField) Input() Input {
	return Render(f.Field, f.Value)
}

// Section is a module with its fields, in display order.
type Section struct {
	Module domain.Module
	Fields []*FormField
}

// Form is the editable state of one system. It is not safe for concurrent use.
type Form struct {
	SystemID *uuid.UUID
	Sections []Section

	byID  map[uuid.UUID]*FormField
	byKey map[string]*FormField
}

// Submission is a validated form split into core and extension attributes.
type Submission struct {
	Core      domain.CoreAttributes
	Extension []domain.FieldValue
}

// BuildForm assembles the form for system (nil for a new one) from the active
// catalog and the system's stored field values. Modules without fields are skipped.
func BuildForm(system *domain.System, catalog domain.Catalog, stored []domain.FieldValue) *Form {
	form := &Form{
		byID:  make(map[uuid.UUID]*FormField, len(catalog.Fields)),
		byKey: make(map[string]*FormField, len(catalog.Fields)),
	}

	var core domain.CoreAttributes
	if system != nil {
		id := system.ID
		form.SystemID = &id
		core = system.Core()
	}

	storedByField := make(map[uuid.UUID]string, len(stored))
	for _, v := range stored {
		storedByField[v.FieldID] = v.Value
	}

	fieldsByModule := catalog.FieldsByModule()
	for _, m := range catalog.SortedModules() {
		fields := fieldsByModule[m.ID]
		if len(fields) == 0 {
			continue
		}

		section := Section{Module: m, Fields: make([]*FormField, 0, len(fields))}
		for _, f := range fields {
			ff := &FormField{Field: f, Value: initialValue(f, core, storedByField)}
			section.Fields = append(section.Fields, ff)
			form.byID[f.ID] = ff
			form.byKey[f.Key] = ff
		}
		form.Sections = append(form.Sections, section)
	}

	return form
}

func initialValue(f domain.Field, core domain.CoreAttributes, stored map[uuid.UUID]string) domain.Value {
	switch f.Key {
	case domain.FieldKeySystemName:
		return domain.TextValue(f.Type, core.Name)
	case domain.FieldKeySupplier:
		return domain.TextValue(f.Type, core.Vendor)
	case domain.FieldKeyWebsite:
		return domain.TextValue(f.Type, core.Website)
	case domain.FieldKeyDescription:
		return domain.TextValue(f.Type, core.Description)
	}
	return domain.DecodeValue(f.Type, stored[f.ID])
}

// Field returns the form field with the given id.
func (f *Form) Field(id uuid.UUID) (*FormField, bool) {
	ff, ok := f.byID[id]
	return ff, ok
}

// Set applies a raw edit to the field with the given id.
func (f *Form) Set(fieldID uuid.UUID, raw any) error {
	ff, ok := f.byID[fieldID]
	if !ok {
		return domain.NewValidationError(fieldID.String(), "unknown field")
	}
	return ff.set(raw)
}

// SetByKey applies a raw edit to the field with the given key.
func (f *Form) SetByKey(key string, raw any) error {
	ff, ok := f.byKey[key]
	if !ok {
		return domain.NewValidationError(key, "unknown field")
	}
	return ff.set(raw)
}

func (ff *FormField) set(raw any) error {
	v, err := ParseEdit(ff.Field, raw)
	if err != nil {
		return err
	}
	ff.Value = v
	return nil
}

// Submit validates every field and splits the form into core attributes and
// non-empty extension values. All field errors are collected and keyed by field key.
func Submit(form *Form) (*Submission, error) {
	var (
		errs []domain.FieldError
		sub  = &Submission{Extension: []domain.FieldValue{}}
	)

	entityID := uuid.Nil
	if form.SystemID != nil {
		entityID = *form.SystemID
	}

	for _, section := range form.Sections {
		for _, ff := range section.Fields {
			if msg := validate(ff); msg != "" {
				errs = append(errs, domain.FieldError{Field: ff.Field.Key, Message: msg})
				continue
			}

			switch ff.Field.Key {
			case domain.FieldKeySystemName:
				sub.Core.Name = ff.Value.Text
			case domain.FieldKeySupplier:
				sub.Core.Vendor = ff.Value.Text
			case domain.FieldKeyWebsite:
				sub.Core.Website = ff.Value.Text
			case domain.FieldKeyDescription:
				sub.Core.Description = ff.Value.Text
			default:
				if !ff.Value.IsEmpty() {
					sub.Extension = append(sub.Extension, domain.FieldValue{
						EntityID: entityID,
						FieldID:  ff.Field.ID,
						Value:    ff.Value.Encode(),
					})
				}
			}
		}
	}

	// The two mandatory core keys block submission even when the catalog lacks them.
	if _, ok := form.byKey[domain.FieldKeySystemName]; !ok {
		errs = append(errs, domain.FieldError{Field: domain.FieldKeySystemName, Message: MsgNameRequired})
	}
	if _, ok := form.byKey[domain.FieldKeySupplier]; !ok {
		errs = append(errs, domain.FieldError{Field: domain.FieldKeySupplier, Message: MsgVendorRequired})
	}

	if len(errs) > 0 {
		return nil, domain.NewValidationErrors(errs)
	}
	return sub, nil
}

func validate(ff *FormField) string {
	empty := ff.Value.IsEmpty()

	switch ff.Field.Key {
	case domain.FieldKeySystemName:
		if empty {
			return MsgNameRequired
		}
	case domain.FieldKeySupplier:
		if empty {
			return MsgVendorRequired
		}
	}

	if empty {
		if ff.Field.IsRequired {
			return MsgRequired
		}
		return ""
	}

	switch ff.Field.Type {
	case domain.FieldTypeEmail:
		if !emailRe.MatchString(ff.Value.Text) {
			return MsgInvalidEmail
		}
	case domain.FieldTypeURL:
		u, err := url.Parse(ff.Value.Text)
		if err != nil || !u.IsAbs() || u.Host == "" {
			return MsgInvalidURL
		}
	case domain.FieldTypeSelect:
		if !allowedOption(ff.Field.Options, ff.Value.Text) {
			return MsgInvalidOption
		}
	case domain.FieldTypeMultiselect:
		for _, it := range ff.Value.Items {
			if !allowedOption(ff.Field.Options, it) {
				return MsgInvalidOption
			}
		}
	}
	return ""
}

// allowedOption reports whether v is one of options after normalization.
// A field without options accepts any value.
func allowedOption(options []string, v string) bool {
	if len(options) == 0 {
		return true
	}
	v = domain.NormalizeOption(v)
	for _, o := range options {
		if domain.NormalizeOption(o) == v {
			return true
		}
	}
	return false
}
