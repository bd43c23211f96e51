// Package system implements the System repository using PostgreSQL.
package system

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	"github.com/heartmarshall/erp-compare-backend/internal/adapter/postgres"
	"github.com/heartmarshall/erp-compare-backend/internal/domain"
)

const (
	table = "systems"

	defaultLimit = 50
	maxLimit     = 200
)

var columns = []string{
	"id", "name", "vendor", "website", "description", "size", "status",
	"created_by", "reviewed_by", "reviewed_at", "review_notes", "created_at", "updated_at",
}

// Repo provides system persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new system repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type row struct {
	ID          uuid.UUID  `db:"id"`
	Name        string     `db:"name"`
	Vendor      string     `db:"vendor"`
	Website     *string    `db:"website"`
	Description *string    `db:"description"`
	Size        []string   `db:"size"`
	Status      string     `db:"status"`
	CreatedBy   *uuid.UUID `db:"created_by"`
	ReviewedBy  *uuid.UUID `db:"reviewed_by"`
	ReviewedAt  *time.Time `db:"reviewed_at"`
	ReviewNotes *string    `db:"review_notes"`
	CreatedAt   time.Time  `db:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at"`
}

func (r row) toDomain() domain.System {
	size := r.Size
	if size == nil {
		size = []string{}
	}
	return domain.System{
		ID:          r.ID,
		Name:        r.Name,
		Vendor:      r.Vendor,
		Website:     r.Website,
		Description: r.Description,
		Size:        size,
		Status:      domain.SystemStatus(r.Status),
		CreatedBy:   r.CreatedBy,
		ReviewedBy:  r.ReviewedBy,
		ReviewedAt:  r.ReviewedAt,
		ReviewNotes: r.ReviewNotes,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a system by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.System, error) {
	sql, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get system: %w", err)
	}

	var rw row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &rw, sql, args...); err != nil {
		return nil, postgres.MapError(err, "system", id)
	}
	s := rw.toDomain()
	return &s, nil
}

// GetByIDs returns the systems with the given ids in no particular order.
// Missing ids are skipped.
func (r *Repo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.System, error) {
	if len(ids) == 0 {
		return []domain.System{}, nil
	}

	sql, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Expr("id = ANY(?)", ids)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get systems: %w", err)
	}
	return r.selectRows(ctx, sql, args)
}

// List returns one page of systems matching filter, ordered by name, and the
// total number of matches. Status narrows the visible set; it never widens it.
func (r *Repo) List(ctx context.Context, filter domain.SystemFilter) ([]domain.System, int, error) {
	where := squirrel.And{}

	switch {
	case filter.AllStatus:
	case filter.VisibleTo != nil:
		where = append(where, squirrel.Or{
			squirrel.Eq{"status": string(domain.SystemStatusPublished)},
			squirrel.Eq{"created_by": *filter.VisibleTo},
		})
	default:
		where = append(where, squirrel.Eq{"status": string(domain.SystemStatusPublished)})
	}

	if filter.Status != nil {
		where = append(where, squirrel.Eq{"status": string(*filter.Status)})
	}

	if filter.Search != nil {
		if s := strings.TrimSpace(*filter.Search); s != "" {
			pattern := "%" + escapeLike(s) + "%"
			where = append(where, squirrel.Or{
				squirrel.ILike{"name": pattern},
				squirrel.ILike{"vendor": pattern},
			})
		}
	}

	countSQL, countArgs, err := postgres.Builder().Select("count(*)").From(table).Where(where).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count systems: %w", err)
	}

	var total int
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count systems: %w", err)
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	offset := max(filter.Offset, 0)

	sql, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(where).
		OrderBy("name", "id").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list systems: %w", err)
	}

	systems, err := r.selectRows(ctx, sql, args)
	if err != nil {
		return nil, 0, err
	}
	return systems, total, nil
}

func (r *Repo) selectRows(ctx context.Context, sql string, args []any) ([]domain.System, error) {
	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("select systems: %w", err)
	}

	out := make([]domain.System, len(rows))
	for i, rw := range rows {
		out[i] = rw.toDomain()
	}
	return out, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a system with its core attributes and review state.
func (r *Repo) Create(ctx context.Context, s *domain.System) (*domain.System, error) {
	id := s.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	sql, args, err := postgres.Builder().
		Insert(table).
		Columns("id", "name", "vendor", "website", "description", "size", "status",
			"created_by", "reviewed_by", "reviewed_at", "review_notes").
		Values(id, s.Name, s.Vendor, s.Website, s.Description, sizeOrEmpty(s.Size), string(s.Status),
			s.CreatedBy, s.ReviewedBy, s.ReviewedAt, s.ReviewNotes).
		Suffix("RETURNING " + postgres.JoinColumns(columns)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert system: %w", err)
	}

	var rw row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &rw, sql, args...); err != nil {
		return nil, postgres.MapError(err, "system", id)
	}
	created := rw.toDomain()
	return &created, nil
}

// Update overwrites the core attributes and review state of s.
func (r *Repo) Update(ctx context.Context, s *domain.System) (*domain.System, error) {
	sql, args, err := postgres.Builder().
		Update(table).
		SetMap(map[string]any{
			"name":         s.Name,
			"vendor":       s.Vendor,
			"website":      s.Website,
			"description":  s.Description,
			"size":         sizeOrEmpty(s.Size),
			"status":       string(s.Status),
			"reviewed_by":  s.ReviewedBy,
			"reviewed_at":  s.ReviewedAt,
			"review_notes": s.ReviewNotes,
			"updated_at":   squirrel.Expr("now()"),
		}).
		Where(squirrel.Eq{"id": s.ID}).
		Suffix("RETURNING " + postgres.JoinColumns(columns)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update system: %w", err)
	}

	var rw row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &rw, sql, args...); err != nil {
		return nil, postgres.MapError(err, "system", s.ID)
	}
	updated := rw.toDomain()
	return &updated, nil
}

// Delete removes a system row. Field values are removed by the caller.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	sql, args, err := postgres.Builder().Delete(table).Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("build delete system: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "system", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("system %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

func sizeOrEmpty(size []string) []string {
	if size == nil {
		return []string{}
	}
	return size
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
