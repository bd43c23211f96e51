package catalog

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/erp-compare-backend/internal/domain"
)

// ListModules returns the active modules of a kind ordered by order_index.
func (s *Service) ListModules(ctx context.Context, kind domain.EntityKind) ([]domain.Module, error) {
	if !kind.IsValid() {
		return nil, domain.NewValidationError("kind", "unknown entity kind")
	}
	modules, err := s.modules.ListActive(ctx, kind)
	if err != nil {
		return nil, fmt.Errorf("catalog.ListModules: %w", err)
	}
	return modules, nil
}

// ListFields returns the active fields of the given modules ordered by order_index.
func (s *Service) ListFields(ctx context.Context, moduleIDs []uuid.UUID) ([]domain.Field, error) {
	if len(moduleIDs) == 0 {
		return []domain.Field{}, nil
	}
	fields, err := s.fields.ListActiveByModules(ctx, moduleIDs)
	if err != nil {
		return nil, fmt.Errorf("catalog.ListFields: %w", err)
	}
	return fields, nil
}

// Catalog returns the active catalog of a kind, served from cache when fresh.
func (s *Service) Catalog(ctx context.Context, kind domain.EntityKind) (domain.Catalog, error) {
	if c, ok := s.cache.Get(kind); ok {
		cacheHitsTotal.Inc()
		return c, nil
	}
	cacheMissesTotal.Inc()

	modules, err := s.ListModules(ctx, kind)
	if err != nil {
		return domain.Catalog{}, err
	}

	ids := make([]uuid.UUID, len(modules))
	for i, m := range modules {
		ids[i] = m.ID
	}

	fields, err := s.ListFields(ctx, ids)
	if err != nil {
		return domain.Catalog{}, err
	}

	c := domain.Catalog{Kind: kind, Modules: modules, Fields: fields}
	s.cache.Add(kind, c)
	return c, nil
}

// PublicCatalog returns the catalog restricted to public modules.
func (s *Service) PublicCatalog(ctx context.Context, kind domain.EntityKind) (domain.Catalog, error) {
	c, err := s.Catalog(ctx, kind)
	if err != nil {
		return domain.Catalog{}, err
	}
	return c.PublicOnly(), nil
}

// ListAllModules returns every module of a kind including inactive ones (admin only).
func (s *Service) ListAllModules(ctx context.Context, kind domain.EntityKind) ([]domain.Module, error) {
	if err := requireAdmin(ctx); err != nil {
		return nil, err
	}
	if !kind.IsValid() {
		return nil, domain.NewValidationError("kind", "unknown entity kind")
	}
	modules, err := s.modules.ListAll(ctx, kind)
	if err != nil {
		return nil, fmt.Errorf("catalog.ListAllModules: %w", err)
	}
	return modules, nil
}

// ListModuleFields returns every field of a module including inactive ones (admin only).
func (s *Service) ListModuleFields(ctx context.Context, moduleID uuid.UUID) ([]domain.Field, error) {
	if err := requireAdmin(ctx); err != nil {
		return nil, err
	}
	if _, err := s.modules.GetByID(ctx, moduleID); err != nil {
		return nil, fmt.Errorf("catalog.ListModuleFields module: %w", err)
	}
	fields, err := s.fields.ListByModule(ctx, moduleID)
	if err != nil {
		return nil, fmt.Errorf("catalog.ListModuleFields: %w", err)
	}
	return fields, nil
}
