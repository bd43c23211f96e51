// Package field implements the Field repository using PostgreSQL.
package field

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

const table = "fields"

var columns = []string{
	"id", "module_id", "entity_kind", "name", "field_key", "field_type", "description",
	"is_required", "options", "order_index", "is_active", "created_at", "updated_at",
}

// Repo provides field persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new field repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type row struct {
	ID          uuid.UUID `db:"id"`
	ModuleID    uuid.UUID `db:"module_id"`
	EntityKind  string    `db:"entity_kind"`
	Name        string    `db:"name"`
	Key         string    `db:"field_key"`
	Type        string    `db:"field_type"`
	Description *string   `db:"description"`
	IsRequired  bool      `db:"is_required"`
	Options     []string  `db:"options"`
	OrderIndex  int       `db:"order_index"`
	IsActive    bool      `db:"is_active"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

func (r row) toDomain() domain.Field {
	f := domain.Field{
		ID:          r.ID,
		ModuleID:    r.ModuleID,
		EntityKind:  domain.EntityKind(r.EntityKind),
		Name:        r.Name,
		Key:         r.Key,
		Type:        domain.FieldType(r.Type),
		Description: r.Description,
		IsRequired:  r.IsRequired,
		OrderIndex:  r.OrderIndex,
		IsActive:    r.IsActive,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
	if len(r.Options) > 0 {
		f.Options = r.Options
	}
	return f
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// ListActiveByModules returns the active fields of the given modules ordered
// by order_index, then name.
func (r *Repo) ListActiveByModules(ctx context.Context, moduleIDs []uuid.UUID) ([]domain.Field, error) {
	if len(moduleIDs) == 0 {
		return []domain.Field{}, nil
	}
	return r.list(ctx, squirrel.And{
		squirrel.Expr("module_id = ANY(?)", moduleIDs),
		squirrel.Eq{"is_active": true},
	})
}

// ListByModule returns every field of a module, including inactive ones.
func (r *Repo) ListByModule(ctx context.Context, moduleID uuid.UUID) ([]domain.Field, error) {
	return r.list(ctx, squirrel.Eq{"module_id": moduleID})
}

func (r *Repo) list(ctx context.Context, where squirrel.Sqlizer) ([]domain.Field, error) {
	sql, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(where).
		OrderBy("order_index", "name").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list fields: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("list fields: %w", err)
	}

	out := make([]domain.Field, len(rows))
	for i, rw := range rows {
		out[i] = rw.toDomain()
	}
	return out, nil
}

// GetByID returns a field by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Field, error) {
	return r.get(ctx, squirrel.Eq{"id": id}, id)
}

// GetByKey returns the field of kind with the given key.
func (r *Repo) GetByKey(ctx context.Context, kind domain.EntityKind, key string) (*domain.Field, error) {
	return r.get(ctx, squirrel.Eq{"entity_kind": string(kind), "field_key": key}, key)
}

func (r *Repo) get(ctx context.Context, where squirrel.Sqlizer, key any) (*domain.Field, error) {
	sql, args, err := postgres.Builder().Select(columns...).From(table).Where(where).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get field: %w", err)
	}

	var rw row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &rw, sql, args...); err != nil {
		return nil, postgres.MapError(err, "field", key)
	}
	f := rw.toDomain()
	return &f, nil
}

// CountByModule returns how many fields, active or not, reference the module.
func (r *Repo) CountByModule(ctx context.Context, moduleID uuid.UUID) (int, error) {
	sql, args, err := postgres.Builder().
		Select("count(*)").
		From(table).
		Where(squirrel.Eq{"module_id": moduleID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count fields: %w", err)
	}

	var n int
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sql, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count fields of module %s: %w", moduleID, err)
	}
	return n, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a field. The entity kind is taken from f.EntityKind.
func (r *Repo) Create(ctx context.Context, f *domain.Field) (*domain.Field, error) {
	id := f.ID
	if id == uuid.Nil {
		id = uuid.New()
	}
	options := f.Options
	if options == nil {
		options = []string{}
	}

	sql, args, err := postgres.Builder().
		Insert(table).
		Columns("id", "module_id", "entity_kind", "name", "field_key", "field_type",
			"description", "is_required", "options", "order_index", "is_active").
		Values(id, f.ModuleID, string(f.EntityKind), f.Name, f.Key, string(f.Type),
			f.Description, f.IsRequired, options, f.OrderIndex, f.IsActive).
		Suffix("RETURNING " + postgres.JoinColumns(columns)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert field: %w", err)
	}

	var rw row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &rw, sql, args...); err != nil {
		return nil, postgres.MapError(err, "field", f.Key)
	}
	created := rw.toDomain()
	return &created, nil
}

// Update applies the non-nil params and returns the updated row.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, params domain.FieldUpdateParams) (*domain.Field, error) {
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
	if params.IsRequired != nil {
		q = q.Set("is_required", *params.IsRequired)
	}
	if params.Options != nil {
		q = q.Set("options", params.Options)
	}
	if params.OrderIndex != nil {
		q = q.Set("order_index", *params.OrderIndex)
	}
	if params.IsActive != nil {
		q = q.Set("is_active", *params.IsActive)
	}

	sql, args, err := q.Where(squirrel.Eq{"id": id}).Suffix("RETURNING " + postgres.JoinColumns(columns)).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update field: %w", err)
	}

	var rw row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &rw, sql, args...); err != nil {
		return nil, postgres.MapError(err, "field", id)
	}
	updated := rw.toDomain()
	return &updated, nil
}
