// Package glossary implements the GlossaryTerm repository using PostgreSQL.
package glossary

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	"github.com/heartmarshall/erp-compare-backend/internal/adapter/postgres"
	"github.com/heartmarshall/erp-compare-backend/internal/domain"
)

const table = "glossary_terms"

var columns = []string{"id", "slug", "term", "definition", "created_at", "updated_at"}

// Repo provides glossary persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new glossary repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type row struct {
	ID         uuid.UUID `db:"id"`
	Slug       string    `db:"slug"`
	Term       string    `db:"term"`
	Definition string    `db:"definition"`
	CreatedAt  time.Time `db:"created_at"`
	UpdatedAt  time.Time `db:"updated_at"`
}

func (r row) toDomain() domain.GlossaryTerm {
	return domain.GlossaryTerm(r)
}

// List returns every term. Ordering is left to the caller's collation.
func (r *Repo) List(ctx context.Context) ([]domain.GlossaryTerm, error) {
	sql, args, err := postgres.Builder().Select(columns...).From(table).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list glossary: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("list glossary: %w", err)
	}

	out := make([]domain.GlossaryTerm, len(rows))
	for i, rw := range rows {
		out[i] = rw.toDomain()
	}
	return out, nil
}

// GetBySlug returns the term with the given slug.
func (r *Repo) GetBySlug(ctx context.Context, slug string) (*domain.GlossaryTerm, error) {
	return r.get(ctx, squirrel.Eq{"slug": slug}, slug)
}

// GetByID returns the term with the given id.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.GlossaryTerm, error) {
	return r.get(ctx, squirrel.Eq{"id": id}, id)
}

func (r *Repo) get(ctx context.Context, where squirrel.Sqlizer, key any) (*domain.GlossaryTerm, error) {
	sql, args, err := postgres.Builder().Select(columns...).From(table).Where(where).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get glossary term: %w", err)
	}

	var rw row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &rw, sql, args...); err != nil {
		return nil, postgres.MapError(err, "glossary_term", key)
	}
	t := rw.toDomain()
	return &t, nil
}

// Create inserts a term.
func (r *Repo) Create(ctx context.Context, t *domain.GlossaryTerm) (*domain.GlossaryTerm, error) {
	id := t.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	sql, args, err := postgres.Builder().
		Insert(table).
		Columns("id", "slug", "term", "definition").
		Values(id, t.Slug, t.Term, t.Definition).
		Suffix("RETURNING " + postgres.JoinColumns(columns)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert glossary term: %w", err)
	}

	var rw row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &rw, sql, args...); err != nil {
		return nil, postgres.MapError(err, "glossary_term", t.Slug)
	}
	created := rw.toDomain()
	return &created, nil
}

// Update overwrites slug, term and definition of the term with t.ID.
func (r *Repo) Update(ctx context.Context, t *domain.GlossaryTerm) (*domain.GlossaryTerm, error) {
	sql, args, err := postgres.Builder().
		Update(table).
		Set("slug", t.Slug).
		Set("term", t.Term).
		Set("definition", t.Definition).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": t.ID}).
		Suffix("RETURNING " + postgres.JoinColumns(columns)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update glossary term: %w", err)
	}

	var rw row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &rw, sql, args...); err != nil {
		return nil, postgres.MapError(err, "glossary_term", t.ID)
	}
	updated := rw.toDomain()
	return &updated, nil
}

// Delete removes a term.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	sql, args, err := postgres.Builder().Delete(table).Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("build delete glossary term: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "glossary_term", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("glossary_term %s: %w", id, domain.ErrNotFound)
	}
	return nil
}
