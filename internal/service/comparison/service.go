// Package comparison serves side-by-side comparisons of catalogued systems
// and the per-visitor comparison sessions that feed them.
package comparison

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/erp-compare-backend/internal/compare"
	"github.com/heartmarshall/erp-compare-backend/internal/domain"
	"github.com/heartmarshall/erp-compare-backend/pkg/ctxutil"
)

var comparisonsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "erp_comparisons_total",
	Help: "Comparison matrices computed, by source.",
}, []string{"source"})

type systemRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.System, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.System, error)
}

type fieldValueRepo interface {
	ListByEntities(ctx context.Context, entityIDs []uuid.UUID) (map[uuid.UUID][]domain.FieldValue, error)
}

type catalogProvider interface {
	Catalog(ctx context.Context, kind domain.EntityKind) (domain.Catalog, error)
}

// Service computes comparison matrices.
type Service struct {
	systems  systemRepo
	values   fieldValueRepo
	catalog  catalogProvider
	sessions *compare.SessionStore
	log      *slog.Logger
}

// NewService creates a new comparison service.
func NewService(
	log *slog.Logger,
	systems systemRepo,
	values fieldValueRepo,
	catalog catalogProvider,
	sessions *compare.SessionStore,
) *Service {
	return &Service{
		systems:  systems,
		values:   values,
		catalog:  catalog,
		sessions: sessions,
		log:      log.With("service", "comparison"),
	}
}

// Result is a comparison matrix plus the requested ids that could not be
// shown, which clients render as placeholders.
type Result struct {
	Matrix  *compare.Matrix `json:"matrix"`
	Missing []uuid.UUID     `json:"missing"`
}

// Compare builds the matrix for 2 to 4 distinct system ids, in request order.
func (s *Service) Compare(ctx context.Context, ids []uuid.UUID) (*Result, error) {
	if err := validateIDs(ids); err != nil {
		return nil, err
	}
	res, err := s.compare(ctx, ids)
	if err != nil {
		return nil, err
	}
	comparisonsTotal.WithLabelValues("direct").Inc()
	return res, nil
}

func validateIDs(ids []uuid.UUID) error {
	if len(ids) < compare.MinSystems || len(ids) > compare.MaxSystems {
		return domain.NewValidationError("ids", fmt.Sprintf("select between %d and %d systems", compare.MinSystems, compare.MaxSystems))
	}
	seen := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		if id == uuid.Nil {
			return domain.NewValidationError("ids", "invalid system id")
		}
		if _, dup := seen[id]; dup {
			return domain.NewValidationError("ids", "duplicate system id")
		}
		seen[id] = struct{}{}
	}
	return nil
}

func (s *Service) compare(ctx context.Context, ids []uuid.UUID) (*Result, error) {
	var (
		systems []domain.System
		catalog domain.Catalog
		values  map[uuid.UUID][]domain.FieldValue
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		systems, err = s.systems.GetByIDs(gctx, ids)
		if err != nil {
			return fmt.Errorf("load systems: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		catalog, err = s.catalog.Catalog(gctx, domain.EntityKindSystem)
		if err != nil {
			return fmt.Errorf("load catalog: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		values, err = s.values.ListByEntities(gctx, ids)
		if err != nil {
			return fmt.Errorf("load field values: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("comparison.Compare: %w", err)
	}

	privileged := ctxutil.IsPrivilegedCtx(ctx)
	visible := slices.DeleteFunc(systems, func(sys domain.System) bool {
		return sys.Status != domain.SystemStatusPublished && !privileged
	})
	ordered := compare.OrderBySelection(ids, visible)

	res := &Result{Missing: missingIDs(ids, ordered)}
	if len(res.Missing) > 0 {
		s.log.DebugContext(ctx, "comparison with missing systems", slog.Int("missing", len(res.Missing)))
	}

	if len(ordered) < compare.MinSystems {
		res.Matrix = emptyMatrix(ordered)
		return res, nil
	}

	_, authenticated := ctxutil.UserIDFromCtx(ctx)
	matrix, err := compare.Compare(ordered, catalog, values, compare.Access{Elevated: authenticated})
	if err != nil {
		return nil, err
	}
	res.Matrix = matrix
	return res, nil
}

func missingIDs(ids []uuid.UUID, found []domain.System) []uuid.UUID {
	present := make(map[uuid.UUID]bool, len(found))
	for _, s := range found {
		present[s.ID] = true
	}
	missing := []uuid.UUID{}
	for _, id := range ids {
		if !present[id] {
			missing = append(missing, id)
		}
	}
	return missing
}

func emptyMatrix(systems []domain.System) *compare.Matrix {
	m := &compare.Matrix{Columns: make([]compare.Column, len(systems)), Sections: []compare.Section{}}
	for i, sys := range systems {
		m.Columns[i] = compare.Column{ID: sys.ID, Name: sys.Name, Vendor: sys.Vendor}
	}
	return m
}
