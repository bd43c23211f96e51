package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/erp-compare-backend/internal/domain"
	"github.com/heartmarshall/erp-compare-backend/pkg/ctxutil"
)

// CreateField adds a field to a module (admin only). The field inherits the
// module's entity kind.
func (s *Service) CreateField(ctx context.Context, input CreateFieldInput) (*domain.Field, error) {
	if err := requireAdmin(ctx); err != nil {
		return nil, err
	}
	userID, _ := ctxutil.UserIDFromCtx(ctx)

	input.Key = strings.TrimSpace(input.Key)
	input.Options = normalizeOptions(input.Options)
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var field *domain.Field
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		module, err := s.modules.GetByID(txCtx, input.ModuleID)
		if err != nil {
			return fmt.Errorf("get module: %w", err)
		}

		field, err = s.fields.Create(txCtx, &domain.Field{
			ModuleID:    module.ID,
			EntityKind:  module.EntityKind,
			Name:        strings.TrimSpace(input.Name),
			Key:         input.Key,
			Type:        input.Type,
			Description: trimOrNil(input.Description),
			IsRequired:  input.IsRequired,
			Options:     input.Options,
			OrderIndex:  input.OrderIndex,
			IsActive:    true,
		})
		if err != nil {
			return fmt.Errorf("create field: %w", err)
		}

		return s.logAudit(txCtx, userID, domain.EntityTypeField, field.ID, domain.AuditActionCreate, map[string]any{
			"field_key":  map[string]any{"new": field.Key},
			"field_type": map[string]any{"new": string(field.Type)},
		})
	})
	if err != nil {
		return nil, err
	}
	s.invalidate()

	s.log.InfoContext(ctx, "field created",
		slog.String("field_id", field.ID.String()),
		slog.String("field_key", field.Key),
	)
	return field, nil
}

// UpdateField applies a partial update to a field (admin only).
func (s *Service) UpdateField(ctx context.Context, input UpdateFieldInput) (*domain.Field, error) {
	if err := requireAdmin(ctx); err != nil {
		return nil, err
	}
	userID, _ := ctxutil.UserIDFromCtx(ctx)

	input.Options = normalizeOptions(input.Options)
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var field *domain.Field
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		deactivating := input.IsActive != nil && !*input.IsActive
		if input.Options != nil || deactivating {
			current, err := s.fields.GetByID(txCtx, input.FieldID)
			if err != nil {
				return fmt.Errorf("get field: %w", err)
			}
			if deactivating && isCoreField(*current) {
				return domain.NewValidationError("is_active", "core attribute fields cannot be deactivated")
			}
			if input.Options != nil {
				if errs := validateOptions(nil, current.Type, input.Options); len(errs) > 0 {
					return domain.NewValidationErrors(errs)
				}
			}
		}

		params := domain.FieldUpdateParams{
			Name:        trimPtr(input.Name),
			Description: trimPtr(input.Description),
			IsRequired:  input.IsRequired,
			Options:     input.Options,
			OrderIndex:  input.OrderIndex,
			IsActive:    input.IsActive,
		}

		var err error
		field, err = s.fields.Update(txCtx, input.FieldID, params)
		if err != nil {
			return fmt.Errorf("update field: %w", err)
		}
		return s.logAudit(txCtx, userID, domain.EntityTypeField, field.ID, domain.AuditActionUpdate, fieldChanges(params))
	})
	if err != nil {
		return nil, err
	}
	s.invalidate()

	s.log.InfoContext(ctx, "field updated", slog.String("field_id", field.ID.String()))
	return field, nil
}

// DeactivateField hides a field from forms and comparisons while keeping
// its stored values (admin only). Core attribute fields are rejected.
func (s *Service) DeactivateField(ctx context.Context, fieldID uuid.UUID) (*domain.Field, error) {
	inactive := false
	return s.UpdateField(ctx, UpdateFieldInput{FieldID: fieldID, IsActive: &inactive})
}

func fieldChanges(p domain.FieldUpdateParams) map[string]any {
	changes := make(map[string]any)
	if p.Name != nil {
		changes["name"] = map[string]any{"new": *p.Name}
	}
	if p.Description != nil {
		changes["description"] = map[string]any{"new": *p.Description}
	}
	if p.IsRequired != nil {
		changes["is_required"] = map[string]any{"new": *p.IsRequired}
	}
	if p.Options != nil {
		changes["options"] = map[string]any{"new": p.Options}
	}
	if p.OrderIndex != nil {
		changes["order_index"] = map[string]any{"new": *p.OrderIndex}
	}
	if p.IsActive != nil {
		changes["is_active"] = map[string]any{"new": *p.IsActive}
	}
	return changes
}
