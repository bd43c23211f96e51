package user

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/erp-compare-backend/internal/domain"
	"github.com/heartmarshall/erp-compare-backend/pkg/ctxutil"
)

// SetRole changes the role of a user (admin only). Admins cannot demote themselves.
func (s *Service) SetRole(ctx context.Context, targetUserID uuid.UUID, role domain.UserRole) (*domain.User, error) {
	callerID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if !ctxutil.IsAdminCtx(ctx) {
		return nil, domain.ErrForbidden
	}

	if !role.IsValid() {
		return nil, domain.NewValidationError("role", "must be editor, reviewer or admin")
	}
	if callerID == targetUserID && !role.IsAdmin() {
		return nil, domain.NewValidationError("role", "cannot demote yourself")
	}

	var updated *domain.User
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		old, err := s.users.GetByID(txCtx, targetUserID)
		if err != nil {
			return fmt.Errorf("get user: %w", err)
		}

		updated, err = s.users.UpdateRole(txCtx, targetUserID, role)
		if err != nil {
			return fmt.Errorf("update role: %w", err)
		}

		err = s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     callerID,
			EntityType: domain.EntityTypeUser,
			EntityID:   &targetUserID,
			Action:     domain.AuditActionUpdate,
			Changes:    map[string]any{"role": map[string]any{"old": old.Role.String(), "new": role.String()}},
		})
		if err != nil {
			return fmt.Errorf("audit log: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("user.SetRole: %w", err)
	}

	s.log.InfoContext(ctx, "user role updated",
		slog.String("target_user_id", targetUserID.String()),
		slog.String("new_role", role.String()),
	)

	return updated, nil
}
