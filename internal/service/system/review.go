package system

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/erp-compare-backend/internal/domain"
	"github.com/heartmarshall/erp-compare-backend/pkg/ctxutil"
)

// SubmitForReview moves a draft or rejected system to pending.
// Allowed for the system's creator and privileged users.
func (s *Service) SubmitForReview(ctx context.Context, systemID uuid.UUID) (*domain.System, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	var updated *domain.System
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		sys, err := s.GetSystem(txCtx, systemID)
		if err != nil {
			return err
		}
		if !sys.IsOwnedBy(userID) && !ctxutil.IsPrivilegedCtx(ctx) {
			return domain.ErrForbidden
		}
		if sys.Status != domain.SystemStatusDraft && sys.Status != domain.SystemStatusRejected {
			return fmt.Errorf("system %s is %s: %w", systemID, sys.Status, domain.ErrConflict)
		}

		previous := sys.Status
		sys.Status = domain.SystemStatusPending
		updated, err = s.systems.Update(txCtx, sys)
		if err != nil {
			return fmt.Errorf("update system: %w", err)
		}

		return s.logAudit(txCtx, userID, systemID, domain.AuditActionUpdate, map[string]any{
			"status": map[string]any{"old": string(previous), "new": string(updated.Status)},
		})
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "system submitted for review",
		slog.String("user_id", userID.String()),
		slog.String("system_id", systemID.String()),
	)
	return updated, nil
}

// ReviewInput holds a reviewer's decision on a pending system.
type ReviewInput struct {
	SystemID uuid.UUID
	Decision domain.ReviewDecision
	Notes    *string
}

// Validate checks all fields and collects all errors.
func (i ReviewInput) Validate() error {
	var errs []domain.FieldError

	if i.SystemID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "system_id", Message: "required"})
	}
	if !i.Decision.IsValid() {
		errs = append(errs, domain.FieldError{Field: "decision", Message: "must be publish or reject"})
	}
	notes := ""
	if i.Notes != nil {
		notes = strings.TrimSpace(*i.Notes)
	}
	if i.Decision == domain.ReviewDecisionReject && notes == "" {
		errs = append(errs, domain.FieldError{Field: "notes", Message: "required when rejecting"})
	}
	if len(notes) > 2000 {
		errs = append(errs, domain.FieldError{Field: "notes", Message: "max 2000 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// Review publishes or rejects a pending system (reviewers and admins only).
func (s *Service) Review(ctx context.Context, input ReviewInput) (*domain.System, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if !ctxutil.IsPrivilegedCtx(ctx) {
		return nil, domain.ErrForbidden
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var notes *string
	if input.Notes != nil {
		if n := strings.TrimSpace(*input.Notes); n != "" {
			notes = &n
		}
	}

	var updated *domain.System
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		sys, err := s.systems.GetByID(txCtx, input.SystemID)
		if err != nil {
			return fmt.Errorf("get system: %w", err)
		}
		if sys.Status != domain.SystemStatusPending {
			return fmt.Errorf("system %s is %s: %w", sys.ID, sys.Status, domain.ErrConflict)
		}

		now := s.now().UTC()
		sys.Status = domain.SystemStatusPublished
		if input.Decision == domain.ReviewDecisionReject {
			sys.Status = domain.SystemStatusRejected
		}
		sys.ReviewedBy = &userID
		sys.ReviewedAt = &now
		sys.ReviewNotes = notes

		updated, err = s.systems.Update(txCtx, sys)
		if err != nil {
			return fmt.Errorf("update system: %w", err)
		}

		changes := map[string]any{
			"status": map[string]any{"old": string(domain.SystemStatusPending), "new": string(updated.Status)},
		}
		if notes != nil {
			changes["review_notes"] = map[string]any{"new": *notes}
		}
		return s.logAudit(txCtx, userID, sys.ID, domain.AuditActionReview, changes)
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "system reviewed",
		slog.String("reviewer_id", userID.String()),
		slog.String("system_id", updated.ID.String()),
		slog.String("decision", string(input.Decision)),
	)
	return updated, nil
}

// DeleteSystem removes a system and its field values (admin only).
func (s *Service) DeleteSystem(ctx context.Context, systemID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if !ctxutil.IsAdminCtx(ctx) {
		return domain.ErrForbidden
	}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.values.DeleteByEntity(txCtx, systemID); err != nil {
			return fmt.Errorf("delete field values: %w", err)
		}
		if err := s.systems.Delete(txCtx, systemID); err != nil {
			return fmt.Errorf("delete system: %w", err)
		}
		return s.logAudit(txCtx, userID, systemID, domain.AuditActionDelete, nil)
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "system deleted",
		slog.String("user_id", userID.String()),
		slog.String("system_id", systemID.String()),
	)
	return nil
}
