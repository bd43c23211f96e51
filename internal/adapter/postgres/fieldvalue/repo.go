// Package fieldvalue implements persistence of dynamic field values.
// Values of one entity are always replaced as a whole.
package fieldvalue

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	"github.com/heartmarshall/erp-compare-backend/internal/adapter/postgres"
	"github.com/heartmarshall/erp-compare-backend/internal/domain"
)

const table = "field_values"

// Repo provides field value persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new field value repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type row struct {
	EntityID uuid.UUID `db:"entity_id"`
	FieldID  uuid.UUID `db:"field_id"`
	Value    string    `db:"value"`
}

// ListByEntity returns the stored values of one entity.
func (r *Repo) ListByEntity(ctx context.Context, entityID uuid.UUID) ([]domain.FieldValue, error) {
	values, err := r.ListByEntities(ctx, []uuid.UUID{entityID})
	if err != nil {
		return nil, err
	}
	return values[entityID], nil
}

// ListByEntities returns stored values grouped by entity id. Entities without
// values are absent from the map.
func (r *Repo) ListByEntities(ctx context.Context, entityIDs []uuid.UUID) (map[uuid.UUID][]domain.FieldValue, error) {
	out := make(map[uuid.UUID][]domain.FieldValue, len(entityIDs))
	if len(entityIDs) == 0 {
		return out, nil
	}

	sql, args, err := postgres.Builder().
		Select("entity_id", "field_id", "value").
		From(table).
		Where(squirrel.Expr("entity_id = ANY(?)", entityIDs)).
		OrderBy("entity_id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list field values: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("list field values: %w", err)
	}

	for _, rw := range rows {
		out[rw.EntityID] = append(out[rw.EntityID], domain.FieldValue{
			EntityID: rw.EntityID,
			FieldID:  rw.FieldID,
			Value:    rw.Value,
		})
	}
	return out, nil
}

// Replace deletes every stored value of the entity and inserts values.
// Run it inside a transaction together with the entity write.
func (r *Repo) Replace(ctx context.Context, entityID uuid.UUID, values []domain.FieldValue) error {
	if err := r.DeleteByEntity(ctx, entityID); err != nil {
		return err
	}
	if len(values) == 0 {
		return nil
	}

	q := postgres.Builder().Insert(table).Columns("entity_id", "field_id", "value")
	for _, v := range values {
		q = q.Values(entityID, v.FieldID, v.Value)
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build insert field values: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "field_values of", entityID)
	}
	return nil
}

// DeleteByEntity removes every stored value of the entity.
func (r *Repo) DeleteByEntity(ctx context.Context, entityID uuid.UUID) error {
	sql, args, err := postgres.Builder().
		Delete(table).
		Where(squirrel.Eq{"entity_id": entityID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete field values: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("delete field values of %s: %w", entityID, err)
	}
	return nil
}
