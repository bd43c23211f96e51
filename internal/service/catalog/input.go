package catalog

import (
	"regexp"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/erp-compare-backend/internal/domain"
)

const (
	maxNameLength        = 200
	maxDescriptionLength = 2000
	maxOptions           = 100
)

var fieldKeyPattern = regexp.MustCompile(`^[a-z][a-z0-9_]{0,63}$`)

// CreateModuleInput holds the parameters for creating a module.
type CreateModuleInput struct {
	Kind        domain.EntityKind
	Name        string
	Description *string
	OrderIndex  int
	IsPublic    bool
}

// Validate checks all fields and collects all errors.
func (i CreateModuleInput) Validate() error {
	var errs []domain.FieldError

	if !i.Kind.IsValid() {
		errs = append(errs, domain.FieldError{Field: "entity_kind", Message: "unknown entity kind"})
	}
	errs = validateName(errs, i.Name)
	errs = validateDescription(errs, i.Description)
	if i.OrderIndex < 0 {
		errs = append(errs, domain.FieldError{Field: "order_index", Message: "must be >= 0"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateModuleInput holds the parameters for a partial module update.
type UpdateModuleInput struct {
	ModuleID    uuid.UUID
	Name        *string
	Description *string // nil = don't change; ptr("") = clear
	OrderIndex  *int
	IsActive    *bool
	IsPublic    *bool
}

// Validate checks all fields and collects all errors.
func (i UpdateModuleInput) Validate() error {
	var errs []domain.FieldError

	if i.ModuleID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "module_id", Message: "required"})
	}
	if i.Name == nil && i.Description == nil && i.OrderIndex == nil && i.IsActive == nil && i.IsPublic == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	if i.Name != nil {
		errs = validateName(errs, *i.Name)
	}
	errs = validateDescription(errs, i.Description)
	if i.OrderIndex != nil && *i.OrderIndex < 0 {
		errs = append(errs, domain.FieldError{Field: "order_index", Message: "must be >= 0"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// CreateFieldInput holds the parameters for creating a field.
type CreateFieldInput struct {
	ModuleID    uuid.UUID
	Name        string
	Key         string
	Type        domain.FieldType
	Description *string
	IsRequired  bool
	Options     []string
	OrderIndex  int
}

// Validate checks all fields and collects all errors.
// Options are expected to be normalized already.
func (i CreateFieldInput) Validate() error {
	var errs []domain.FieldError

	if i.ModuleID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "module_id", Message: "required"})
	}
	errs = validateName(errs, i.Name)
	if !fieldKeyPattern.MatchString(i.Key) {
		errs = append(errs, domain.FieldError{Field: "field_key", Message: "must match ^[a-z][a-z0-9_]{0,63}$"})
	}
	if !i.Type.IsValid() {
		errs = append(errs, domain.FieldError{Field: "field_type", Message: "unknown field type"})
	} else {
		errs = validateOptions(errs, i.Type, i.Options)
		if domain.IsCoreFieldKey(i.Key) && !isCoreFieldType(i.Type) {
			errs = append(errs, domain.FieldError{Field: "field_type", Message: "core attribute fields must be text, url or textarea"})
		}
	}
	errs = validateDescription(errs, i.Description)
	if i.OrderIndex < 0 {
		errs = append(errs, domain.FieldError{Field: "order_index", Message: "must be >= 0"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateFieldInput holds the parameters for a partial field update.
// Type and key are immutable.
type UpdateFieldInput struct {
	FieldID     uuid.UUID
	Name        *string
	Description *string
	IsRequired  *bool
	Options     []string // nil = keep
	OrderIndex  *int
	IsActive    *bool
}

// Validate checks the type-independent fields. Options are checked against
// the stored field type by the service.
func (i UpdateFieldInput) Validate() error {
	var errs []domain.FieldError

	if i.FieldID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "field_id", Message: "required"})
	}
	if i.Name == nil && i.Description == nil && i.IsRequired == nil && i.Options == nil &&
		i.OrderIndex == nil && i.IsActive == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	if i.Name != nil {
		errs = validateName(errs, *i.Name)
	}
	errs = validateDescription(errs, i.Description)
	if i.OrderIndex != nil && *i.OrderIndex < 0 {
		errs = append(errs, domain.FieldError{Field: "order_index", Message: "must be >= 0"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func validateName(errs []domain.FieldError, name string) []domain.FieldError {
	name = strings.TrimSpace(name)
	if name == "" {
		return append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if len([]rune(name)) > maxNameLength {
		return append(errs, domain.FieldError{Field: "name", Message: "max 200 characters"})
	}
	return errs
}

func validateDescription(errs []domain.FieldError, desc *string) []domain.FieldError {
	if desc != nil && len([]rune(*desc)) > maxDescriptionLength {
		return append(errs, domain.FieldError{Field: "description", Message: "max 2000 characters"})
	}
	return errs
}

// validateOptions enforces the options invariant: select types carry a
// non-empty list of unique, comma-free labels and other types carry none.
func validateOptions(errs []domain.FieldError, t domain.FieldType, options []string) []domain.FieldError {
	if !t.HasOptions() {
		if len(options) > 0 {
			return append(errs, domain.FieldError{Field: "options", Message: "only select and multiselect fields take options"})
		}
		return errs
	}

	if len(options) == 0 {
		return append(errs, domain.FieldError{Field: "options", Message: "required for select and multiselect fields"})
	}
	if len(options) > maxOptions {
		return append(errs, domain.FieldError{Field: "options", Message: "max 100 options"})
	}

	seen := make(map[string]struct{}, len(options))
	for _, o := range options {
		switch {
		case o == "":
			return append(errs, domain.FieldError{Field: "options", Message: "options must not be empty"})
		case strings.Contains(o, ","):
			return append(errs, domain.FieldError{Field: "options", Message: "options must not contain commas"})
		}
		if _, dup := seen[o]; dup {
			return append(errs, domain.FieldError{Field: "options", Message: "options must be unique"})
		}
		seen[o] = struct{}{}
	}
	return errs
}

// normalizeOptions trims and NFC-normalizes option labels. A nil input stays nil.
func normalizeOptions(options []string) []string {
	if options == nil {
		return nil
	}
	out := make([]string, len(options))
	for i, o := range options {
		out[i] = domain.NormalizeOption(o)
	}
	return out
}

func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	return &trimmed
}
