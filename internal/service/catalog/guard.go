package catalog

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/erp-compare-backend/internal/domain"
)

// isCoreField reports whether f feeds a core system attribute. Such fields
// must stay active: the system form cannot be submitted without them.
func isCoreField(f domain.Field) bool {
	return f.EntityKind == domain.EntityKindSystem && domain.IsCoreFieldKey(f.Key)
}

// isCoreFieldType reports whether t can carry a core attribute, which is
// stored as a plain string on the system.
func isCoreFieldType(t domain.FieldType) bool {
	switch t {
	case domain.FieldTypeText, domain.FieldTypeURL, domain.FieldTypeTextarea:
		return true
	}
	return false
}

// ensureNoCoreFields rejects disabling a module that owns a core field.
func (s *Service) ensureNoCoreFields(ctx context.Context, moduleID uuid.UUID) error {
	fields, err := s.fields.ListByModule(ctx, moduleID)
	if err != nil {
		return fmt.Errorf("list fields: %w", err)
	}
	for _, f := range fields {
		if isCoreField(f) {
			return domain.NewValidationError("module_id", fmt.Sprintf("module holds core field %q", f.Key))
		}
	}
	return nil
}
