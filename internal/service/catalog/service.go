// Package catalog manages the admin-configurable field catalog: modules,
// typed fields, and the cached per-kind view used by forms and comparisons.
package catalog

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/heartmarshall/erp-compare-backend/internal/config"
	"github.com/heartmarshall/erp-compare-backend/internal/domain"
)

var (
	cacheHitsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "erp_catalog_cache_hits_total",
		Help: "Total number of field catalog cache hits.",
	})
	cacheMissesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "erp_catalog_cache_misses_total",
		Help: "Total number of field catalog cache misses.",
	})
)

type moduleRepo interface {
	ListActive(ctx context.Context, kind domain.EntityKind) ([]domain.Module, error)
	ListAll(ctx context.Context, kind domain.EntityKind) ([]domain.Module, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Module, error)
	GetByName(ctx context.Context, kind domain.EntityKind, name string) (*domain.Module, error)
	Create(ctx context.Context, m *domain.Module) (*domain.Module, error)
	Update(ctx context.Context, id uuid.UUID, params domain.ModuleUpdateParams) (*domain.Module, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type fieldRepo interface {
	ListActiveByModules(ctx context.Context, moduleIDs []uuid.UUID) ([]domain.Field, error)
	ListByModule(ctx context.Context, moduleID uuid.UUID) ([]domain.Field, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Field, error)
	GetByKey(ctx context.Context, kind domain.EntityKind, key string) (*domain.Field, error)
	CountByModule(ctx context.Context, moduleID uuid.UUID) (int, error)
	Create(ctx context.Context, f *domain.Field) (*domain.Field, error)
	Update(ctx context.Context, id uuid.UUID, params domain.FieldUpdateParams) (*domain.Field, error)
}

type auditLogger interface {
	Log(ctx context.Context, record domain.AuditRecord) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides field catalog queries and admin commands.
type Service struct {
	modules moduleRepo
	fields  fieldRepo
	audit   auditLogger
	tx      txManager
	cache   *expirable.LRU[domain.EntityKind, domain.Catalog]
	log     *slog.Logger
}

// NewService creates a new catalog service.
func NewService(
	log *slog.Logger,
	modules moduleRepo,
	fields fieldRepo,
	audit auditLogger,
	tx txManager,
	cfg config.CatalogConfig,
) *Service {
	return &Service{
		modules: modules,
		fields:  fields,
		audit:   audit,
		tx:      tx,
		cache:   expirable.NewLRU[domain.EntityKind, domain.Catalog](cfg.CacheSize, nil, cfg.CacheTTL),
		log:     log.With("service", "catalog"),
	}
}

// invalidate drops every cached catalog after a mutation.
func (s *Service) invalidate() {
	s.cache.Purge()
}
