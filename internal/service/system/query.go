package system

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/erp-compare-backend/internal/domain"
	"github.com/heartmarshall/erp-compare-backend/internal/dynform"
	"github.com/heartmarshall/erp-compare-backend/pkg/ctxutil"
)

// GetSystem returns a system visible to the caller. Unpublished systems are
// visible to their creator and to privileged users only; for anyone else
// they do not exist.
func (s *Service) GetSystem(ctx context.Context, id uuid.UUID) (*domain.System, error) {
	sys, err := s.systems.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("system.GetSystem: %w", err)
	}
	if !canView(ctx, sys) {
		return nil, fmt.Errorf("system %s: %w", id, domain.ErrNotFound)
	}
	return sys, nil
}

func canView(ctx context.Context, sys *domain.System) bool {
	if sys.Status == domain.SystemStatusPublished || ctxutil.IsPrivilegedCtx(ctx) {
		return true
	}
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	return ok && sys.IsOwnedBy(userID)
}

// ListInput holds the parameters for listing systems.
type ListInput struct {
	Status *domain.SystemStatus
	Search *string
	Limit  int
	Offset int
}

// Validate checks all fields and collects all errors.
func (i ListInput) Validate() error {
	var errs []domain.FieldError
	if i.Status != nil && !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "unknown status"})
	}
	if i.Search != nil && len(*i.Search) > 200 {
		errs = append(errs, domain.FieldError{Field: "search", Message: "max 200 characters"})
	}
	if i.Limit < 0 || i.Limit > 200 {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be between 0 and 200"})
	}
	if i.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must be >= 0"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ListSystems returns one page of systems visible to the caller and the total count.
// Anonymous callers see published systems; editors also see their own;
// privileged users see everything.
func (s *Service) ListSystems(ctx context.Context, input ListInput) ([]domain.System, int, error) {
	if err := input.Validate(); err != nil {
		return nil, 0, err
	}

	filter := domain.SystemFilter{
		Status: input.Status,
		Limit:  input.Limit,
		Offset: input.Offset,
	}
	if input.Search != nil {
		if q := strings.TrimSpace(*input.Search); q != "" {
			filter.Search = &q
		}
	}
	switch userID, ok := ctxutil.UserIDFromCtx(ctx); {
	case ctxutil.IsPrivilegedCtx(ctx):
		filter.AllStatus = true
	case ok:
		filter.VisibleTo = &userID
	}

	systems, total, err := s.systems.List(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("system.ListSystems: %w", err)
	}
	return systems, total, nil
}

// GetForm assembles the edit form for an existing system, or an empty form
// when systemID is nil. Requires authentication.
func (s *Service) GetForm(ctx context.Context, systemID *uuid.UUID) (*dynform.Form, error) {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}

	catalog, err := s.catalog.Catalog(ctx, domain.EntityKindSystem)
	if err != nil {
		return nil, fmt.Errorf("system.GetForm catalog: %w", err)
	}

	existing, stored, err := s.loadForEdit(ctx, systemID)
	if err != nil {
		return nil, err
	}
	return dynform.BuildForm(existing, catalog, stored), nil
}

func (s *Service) loadForEdit(ctx context.Context, systemID *uuid.UUID) (*domain.System, []domain.FieldValue, error) {
	if systemID == nil {
		return nil, nil, nil
	}

	existing, err := s.GetSystem(ctx, *systemID)
	if err != nil {
		return nil, nil, err
	}

	stored, err := s.values.ListByEntity(ctx, existing.ID)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, nil, fmt.Errorf("system field values: %w", err)
	}
	return existing, stored, nil
}
