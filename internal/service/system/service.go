// Package system implements the catalog entry lifecycle: reading systems,
// saving them through the dynamic form, and the review workflow.
package system

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/erp-compare-backend/internal/domain"
)

type systemRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.System, error)
	List(ctx context.Context, filter domain.SystemFilter) ([]domain.System, int, error)
	Create(ctx context.Context, s *domain.System) (*domain.System, error)
	Update(ctx context.Context, s *domain.System) (*domain.System, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type fieldValueRepo interface {
	ListByEntity(ctx context.Context, entityID uuid.UUID) ([]domain.FieldValue, error)
	Replace(ctx context.Context, entityID uuid.UUID, values []domain.FieldValue) error
	DeleteByEntity(ctx context.Context, entityID uuid.UUID) error
}

type catalogProvider interface {
	Catalog(ctx context.Context, kind domain.EntityKind) (domain.Catalog, error)
}

type draftStore interface {
	Discard(ctx context.Context, userID uuid.UUID, entityKey string, seq int64) (bool, error)
}

type auditLogger interface {
	Log(ctx context.Context, record domain.AuditRecord) error
	GetByEntity(ctx context.Context, entityType domain.EntityType, entityID uuid.UUID, limit int) ([]domain.AuditRecord, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides system catalog operations.
type Service struct {
	systems systemRepo
	values  fieldValueRepo
	catalog catalogProvider
	drafts  draftStore
	audit   auditLogger
	tx      txManager
	log     *slog.Logger
	now     func() time.Time
}

// NewService creates a new system service.
func NewService(
	log *slog.Logger,
	systems systemRepo,
	values fieldValueRepo,
	catalog catalogProvider,
	drafts draftStore,
	audit auditLogger,
	tx txManager,
) *Service {
	return &Service{
		systems: systems,
		values:  values,
		catalog: catalog,
		drafts:  drafts,
		audit:   audit,
		tx:      tx,
		log:     log.With("service", "system"),
		now:     time.Now,
	}
}

func (s *Service) logAudit(ctx context.Context, userID, systemID uuid.UUID, action domain.AuditAction, changes map[string]any) error {
	err := s.audit.Log(ctx, domain.AuditRecord{
		UserID:     userID,
		EntityType: domain.EntityTypeSystem,
		EntityID:   &systemID,
		Action:     action,
		Changes:    changes,
	})
	if err != nil {
		return fmt.Errorf("audit log: %w", err)
	}
	return nil
}
