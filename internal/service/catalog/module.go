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

// CreateModule adds a module to the catalog (admin only).
func (s *Service) CreateModule(ctx context.Context, input CreateModuleInput) (*domain.Module, error) {
	if err := requireAdmin(ctx); err != nil {
		return nil, err
	}
	userID, _ := ctxutil.UserIDFromCtx(ctx)

	if err := input.Validate(); err != nil {
		return nil, err
	}
	name := strings.TrimSpace(input.Name)

	var module *domain.Module
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		module, err = s.modules.Create(txCtx, &domain.Module{
			EntityKind:  input.Kind,
			Name:        name,
			Description: trimOrNil(input.Description),
			OrderIndex:  input.OrderIndex,
			IsActive:    true,
			IsPublic:    input.IsPublic,
		})
		if err != nil {
			return fmt.Errorf("create module: %w", err)
		}

		return s.logAudit(txCtx, userID, domain.EntityTypeModule, module.ID, domain.AuditActionCreate, map[string]any{
			"name": map[string]any{"new": name},
		})
	})
	if err != nil {
		return nil, err
	}
	s.invalidate()

	s.log.InfoContext(ctx, "module created",
		slog.String("module_id", module.ID.String()),
		slog.String("name", name),
	)
	return module, nil
}

// UpdateModule applies a partial update to a module (admin only).
func (s *Service) UpdateModule(ctx context.Context, input UpdateModuleInput) (*domain.Module, error) {
	if err := requireAdmin(ctx); err != nil {
		return nil, err
	}
	userID, _ := ctxutil.UserIDFromCtx(ctx)

	if err := input.Validate(); err != nil {
		return nil, err
	}

	params := domain.ModuleUpdateParams{
		Name:        trimPtr(input.Name),
		Description: trimPtr(input.Description),
		OrderIndex:  input.OrderIndex,
		IsActive:    input.IsActive,
		IsPublic:    input.IsPublic,
	}

	var module *domain.Module
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if input.IsActive != nil && !*input.IsActive {
			if err := s.ensureNoCoreFields(txCtx, input.ModuleID); err != nil {
				return err
			}
		}

		var err error
		module, err = s.modules.Update(txCtx, input.ModuleID, params)
		if err != nil {
			return fmt.Errorf("update module: %w", err)
		}
		return s.logAudit(txCtx, userID, domain.EntityTypeModule, module.ID, domain.AuditActionUpdate, moduleChanges(params))
	})
	if err != nil {
		return nil, err
	}
	s.invalidate()

	s.log.InfoContext(ctx, "module updated", slog.String("module_id", module.ID.String()))
	return module, nil
}

// DeleteModule removes a module (admin only). A module that still owns fields
// is deactivated instead so that stored values stay addressable. A module
// holding a core attribute field can be neither deleted nor deactivated.
// The returned flag reports whether the module was only deactivated.
func (s *Service) DeleteModule(ctx context.Context, moduleID uuid.UUID) (deactivated bool, err error) {
	if err := requireAdmin(ctx); err != nil {
		return false, err
	}
	userID, _ := ctxutil.UserIDFromCtx(ctx)

	if moduleID == uuid.Nil {
		return false, domain.NewValidationError("module_id", "required")
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		count, err := s.fields.CountByModule(txCtx, moduleID)
		if err != nil {
			return fmt.Errorf("count fields: %w", err)
		}

		if count > 0 {
			if err := s.ensureNoCoreFields(txCtx, moduleID); err != nil {
				return err
			}
			inactive := false
			if _, err := s.modules.Update(txCtx, moduleID, domain.ModuleUpdateParams{IsActive: &inactive}); err != nil {
				return fmt.Errorf("deactivate module: %w", err)
			}
			deactivated = true
			return s.logAudit(txCtx, userID, domain.EntityTypeModule, moduleID, domain.AuditActionUpdate, map[string]any{
				"is_active": map[string]any{"new": false},
			})
		}

		if err := s.modules.Delete(txCtx, moduleID); err != nil {
			return fmt.Errorf("delete module: %w", err)
		}
		return s.logAudit(txCtx, userID, domain.EntityTypeModule, moduleID, domain.AuditActionDelete, nil)
	})
	if err != nil {
		return false, err
	}
	s.invalidate()

	s.log.InfoContext(ctx, "module removed",
		slog.String("module_id", moduleID.String()),
		slog.Bool("deactivated", deactivated),
	)
	return deactivated, nil
}

func moduleChanges(p domain.ModuleUpdateParams) map[string]any {
	changes := make(map[string]any)
	if p.Name != nil {
		changes["name"] = map[string]any{"new": *p.Name}
	}
	if p.Description != nil {
		changes["description"] = map[string]any{"new": *p.Description}
	}
	if p.OrderIndex != nil {
		changes["order_index"] = map[string]any{"new": *p.OrderIndex}
	}
	if p.IsActive != nil {
		changes["is_active"] = map[string]any{"new": *p.IsActive}
	}
	if p.IsPublic != nil {
		changes["is_public"] = map[string]any{"new": *p.IsPublic}
	}
	return changes
}

func (s *Service) logAudit(
	ctx context.Context,
	userID uuid.UUID,
	entityType domain.EntityType,
	entityID uuid.UUID,
	action domain.AuditAction,
	changes map[string]any,
) error {
	err := s.audit.Log(ctx, domain.AuditRecord{
		UserID:     userID,
		EntityType: entityType,
		EntityID:   &entityID,
		Action:     action,
		Changes:    changes,
	})
	if err != nil {
		return fmt.Errorf("audit log: %w", err)
	}
	return nil
}

func requireAdmin(ctx context.Context) error {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return domain.ErrUnauthorized
	}
	if !ctxutil.IsAdminCtx(ctx) {
		return domain.ErrForbidden
	}
	return nil
}
