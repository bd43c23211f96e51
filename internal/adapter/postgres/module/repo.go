// Package module implements the Module repository using PostgreSQL.
package module

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

const table = "modules"

var columns = []string{
	"id", "entity_kind", "name", "description", "order_index",
	"is_active", "is_public", "created_at", "updated_at",
}

// Repo provides module persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new module repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type row struct {
	ID          uuid.UUID `db:"id"`
	EntityKind  string    `db:"entity_kind"`
	Name        string    `db:"name"`
	Description *string   `db:"description"`
	OrderIndex  int       `db:"order_index"`
	IsActive    bool      `db:"is_active"`
	IsPublic    bool      `db:"is_public"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

func (r row) toDomain() domain.Module {
	return domain.Module{
		ID:          r.ID,
		EntityKind:  domain.EntityKind(r.EntityKind),
		Name:        r.Name,
		Description: r.Description,
		OrderIndex:  r.OrderIndex,
		IsActive:    r.IsActive,
		IsPublic:    r.IsPublic,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// ListActive returns the active modules of kind ordered by order_index, then name.
func (r *Repo) ListActive(ctx context.Context, kind domain.EntityKind) ([]domain.Module, error) {
	return r.list(ctx, squirrel.Eq{"entity_kind": string(kind), "is_active": true})
}

// ListAll returns every module of kind, including disabled ones.
func (r *Repo) ListAll(ctx context.Context, kind domain.EntityKind) ([]domain.Module, error) {
	return r.list(ctx, squirrel.Eq{"entity_kind": string(kind)})
}

func (r *Repo) list(ctx context.Context, where squirrel.Sqlizer) ([]domain.Module, error) {
	sql, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(where).
		OrderBy("order_index", "name").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list modules: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("list modules: %w", err)
	}

	out := make([]domain.Module, len(rows))
	for i, rw := range rows {
		out[i] = rw.toDomain()
	}
	return out, nil
}

// GetByID returns a module by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Module, error) {
	return r.get(ctx, squirrel.Eq{"id": id}, id)
}

// GetByName returns the module of kind with the given name.
func (r *Repo) GetByName(ctx context.Context, kind domain.EntityKind, name string) (*domain.Module, error) {
	return r.get(ctx, squirrel.Eq{"entity_kind": string(kind), "name": name}, name)
}

func (r *Repo) get(ctx context.Context, where squirrel.Sqlizer, key any) (*domain.Module, error) {
	sql, args, err := postgres.Builder().Select(columns...).From(table).Where(where).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get module: %w", err)
	}

	var rw row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &rw, sql, args...); err != nil {
		return nil, postgres.MapError(err, "module", key)
	}
	m := rw.toDomain()
	return &m, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a module and returns the persisted row.
func (r *Repo) Create(ctx context.Context, m *domain.Module) (*domain.Module, error) {
	id := m.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	sql, args, err := postgres.Builder().
		Insert(table).
		Columns("id", "entity_kind", "name", "description", "order_index", "is_active", "is_public").
		Values(id, string(m.EntityKind), m.Name, m.Description, m.OrderIndex, m.IsActive, m.IsPublic).
		Suffix("RETURNING " + joinColumns()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert module: %w", err)
	}

	var rw row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &rw, sql, args...); err != nil {
		return nil, postgres.MapError(err, "module", id)
	}
	created := rw.toDomain()
	return &created, nil
}

// Update applies the non-nil params and returns the updated row.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, params domain.ModuleUpdateParams) (*domain.Module, error) {
	q := postgres.Builder().Update(table).Set("updated_at", squirrel.Expr("now()"))

	if params.Name != nil {
		q = q.Set("name", *params.Name)
	}
	if params.Description != nil {
		if *params.Description == "" {
			q = q.Set("description", nil)
		} else {
			q = q.Set("description", *params.Description)
		}
	}
	if params.OrderIndex != nil {
		q = q.Set("order_index", *params.OrderIndex)
	}
	if params.IsActive != nil {
		q = q.Set("is_active", *params.IsActive)
	}
	if params.IsPublic != nil {
		q = q.Set("is_public", *params.IsPublic)
	}

	sql, args, err := q.Where(squirrel.Eq{"id": id}).Suffix("RETURNING " + joinColumns()).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update module: %w", err)
	}

	var rw row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &rw, sql, args...); err != nil {
		return nil, postgres.MapError(err, "module", id)
	}
	updated := rw.toDomain()
	return &updated, nil
}

// Delete removes a module. Callers soft-disable modules that still own fields.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	sql, args, err := postgres.Builder().Delete(table).Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("build delete module: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "module", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("module %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

func joinColumns() string {
	return postgres.JoinColumns(columns)
}
