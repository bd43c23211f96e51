package system

import (
	"context"

	"github.com/google/uuid"

	"github.com/heartmarshall/erp-compare-backend/internal/domain"
	"github.com/heartmarshall/erp-compare-backend/pkg/ctxutil"
)

const (
	defaultHistoryLimit = 50
	maxHistoryLimit     = 200
)

// History returns the newest audit records of a system. Owners and
// privileged users only.
func (s *Service) History(ctx context.Context, systemID uuid.UUID, limit int) ([]domain.AuditRecord, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	sys, err := s.GetSystem(ctx, systemID)
	if err != nil {
		return nil, err
	}
	if !sys.IsOwnedBy(userID) && !ctxutil.IsPrivilegedCtx(ctx) {
		return nil, domain.ErrForbidden
	}

	switch {
	case limit <= 0:
		limit = defaultHistoryLimit
	case limit > maxHistoryLimit:
		limit = maxHistoryLimit
	}

	return s.audit.GetByEntity(ctx, domain.EntityTypeSystem, systemID, limit)
}
