// Package glossary manages the ERP glossary shown next to comparisons.
package glossary

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/heartmarshall/erp-compare-backend/internal/domain"
	"github.com/heartmarshall/erp-compare-backend/pkg/ctxutil"
)

type termRepo interface {
	List(ctx context.Context) ([]domain.GlossaryTerm, error)
	GetBySlug(ctx context.Context, slug string) (*domain.GlossaryTerm, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.GlossaryTerm, error)
	Create(ctx context.Context, t *domain.GlossaryTerm) (*domain.GlossaryTerm, error)
	Update(ctx context.Context, t *domain.GlossaryTerm) (*domain.GlossaryTerm, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type auditLogger interface {
	Log(ctx context.Context, record domain.AuditRecord) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides glossary operations.
type Service struct {
	terms termRepo
	audit auditLogger
	tx    txManager
	log   *slog.Logger
}

// NewService creates a new glossary service.
func NewService(log *slog.Logger, terms termRepo, audit auditLogger, tx txManager) *Service {
	return &Service{
		terms: terms,
		audit: audit,
		tx:    tx,
		log:   log.With("service", "glossary"),
	}
}

// List returns all terms in Polish alphabetical order.
func (s *Service) List(ctx context.Context) ([]domain.GlossaryTerm, error) {
	terms, err := s.terms.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("glossary.List: %w", err)
	}

	// Collators are not safe for concurrent use.
	col := collate.New(language.Polish, collate.IgnoreCase)
	slices.SortStableFunc(terms, func(a, b domain.GlossaryTerm) int {
		return col.CompareString(a.Term, b.Term)
	})
	return terms, nil
}

// GetBySlug returns one term.
func (s *Service) GetBySlug(ctx context.Context, slug string) (*domain.GlossaryTerm, error) {
	t, err := s.terms.GetBySlug(ctx, strings.ToLower(strings.TrimSpace(slug)))
	if err != nil {
		return nil, fmt.Errorf("glossary.GetBySlug: %w", err)
	}
	return t, nil
}

// TermInput is the editable content of a glossary term.
type TermInput struct {
	Term       string
	Definition string
}

func (i TermInput) normalized() TermInput {
	return TermInput{Term: strings.TrimSpace(i.Term), Definition: strings.TrimSpace(i.Definition)}
}

// Validate checks all fields and collects all errors.
func (i TermInput) Validate() error {
	var errs []domain.FieldError

	term := strings.TrimSpace(i.Term)
	switch {
	case term == "":
		errs = append(errs, domain.FieldError{Field: "term", Message: "required"})
	case len(term) > 200:
		errs = append(errs, domain.FieldError{Field: "term", Message: "max 200 characters"})
	case Slugify(term) == "":
		errs = append(errs, domain.FieldError{Field: "term", Message: "must contain a letter or digit"})
	}

	def := strings.TrimSpace(i.Definition)
	switch {
	case def == "":
		errs = append(errs, domain.FieldError{Field: "definition", Message: "required"})
	case len(def) > 10000:
		errs = append(errs, domain.FieldError{Field: "definition", Message: "max 10000 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// Create adds a term (admin only). The slug is derived from the term.
func (s *Service) Create(ctx context.Context, input TermInput) (*domain.GlossaryTerm, error) {
	userID, err := requireAdmin(ctx)
	if err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}
	in := input.normalized()

	var created *domain.GlossaryTerm
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		created, err = s.terms.Create(txCtx, &domain.GlossaryTerm{
			Slug:       Slugify(in.Term),
			Term:       in.Term,
			Definition: in.Definition,
		})
		if err != nil {
			return fmt.Errorf("create term: %w", err)
		}
		return s.logAudit(txCtx, userID, created.ID, domain.AuditActionCreate, map[string]any{
			"term": map[string]any{"new": created.Term},
		})
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "glossary term created",
		slog.String("user_id", userID.String()),
		slog.String("slug", created.Slug),
	)
	return created, nil
}

// Update replaces a term's content (admin only). Renaming re-derives the slug.
func (s *Service) Update(ctx context.Context, id uuid.UUID, input TermInput) (*domain.GlossaryTerm, error) {
	userID, err := requireAdmin(ctx)
	if err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}
	in := input.normalized()

	var updated *domain.GlossaryTerm
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		old, err := s.terms.GetByID(txCtx, id)
		if err != nil {
			return fmt.Errorf("get term: %w", err)
		}

		updated, err = s.terms.Update(txCtx, &domain.GlossaryTerm{
			ID:         id,
			Slug:       Slugify(in.Term),
			Term:       in.Term,
			Definition: in.Definition,
		})
		if err != nil {
			return fmt.Errorf("update term: %w", err)
		}

		changes := map[string]any{}
		if old.Term != updated.Term {
			changes["term"] = map[string]any{"old": old.Term, "new": updated.Term}
		}
		if old.Definition != updated.Definition {
			changes["definition"] = map[string]any{"old": old.Definition, "new": updated.Definition}
		}
		return s.logAudit(txCtx, userID, id, domain.AuditActionUpdate, changes)
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "glossary term updated",
		slog.String("user_id", userID.String()),
		slog.String("slug", updated.Slug),
	)
	return updated, nil
}

// Delete removes a term (admin only).
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	userID, err := requireAdmin(ctx)
	if err != nil {
		return err
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.terms.Delete(txCtx, id); err != nil {
			return fmt.Errorf("delete term: %w", err)
		}
		return s.logAudit(txCtx, userID, id, domain.AuditActionDelete, nil)
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "glossary term deleted",
		slog.String("user_id", userID.String()),
		slog.String("term_id", id.String()),
	)
	return nil
}

func requireAdmin(ctx context.Context) (uuid.UUID, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return uuid.Nil, domain.ErrUnauthorized
	}
	if !ctxutil.IsAdminCtx(ctx) {
		return uuid.Nil, domain.ErrForbidden
	}
	return userID, nil
}

func (s *Service) logAudit(ctx context.Context, userID, termID uuid.UUID, action domain.AuditAction, changes map[string]any) error {
	err := s.audit.Log(ctx, domain.AuditRecord{
		UserID:     userID,
		EntityType: domain.EntityTypeGlossary,
		EntityID:   &termID,
		Action:     action,
		Changes:    changes,
	})
	if err != nil {
		return fmt.Errorf("audit log: %w", err)
	}
	return nil
}
