// Package draft implements sequence-guarded form draft persistence.
//
// Every write carries a client sequence number. A write only lands when its
// sequence is newer than the stored one, so a late autosave can never
// resurrect a draft that was discarded on submit.
package draft

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	"github.com/heartmarshall/erp-compare-backend/internal/adapter/postgres"
	"github.com/heartmarshall/erp-compare-backend/internal/domain"
)

const table = "form_drafts"

// Repo provides draft persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new draft repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type row struct {
	UserID    uuid.UUID `db:"user_id"`
	EntityKey string    `db:"entity_key"`
	Seq       int64     `db:"seq"`
	Payload   []byte    `db:"payload"`
	UpdatedAt time.Time `db:"updated_at"`
}

// Save stores d when d.Seq is newer than the stored sequence, tombstones included.
// It reports whether the write was applied.
func (r *Repo) Save(ctx context.Context, d domain.FormDraft) (bool, error) {
	sql, args, err := postgres.Builder().
		Insert(table).
		Columns("user_id", "entity_key", "seq", "payload", "updated_at").
		Values(d.UserID, d.EntityKey, d.Seq, []byte(d.Payload), squirrel.Expr("now()")).
		Suffix("ON CONFLICT (user_id, entity_key) DO UPDATE " +
			"SET seq = EXCLUDED.seq, payload = EXCLUDED.payload, updated_at = EXCLUDED.updated_at " +
			"WHERE form_drafts.seq < EXCLUDED.seq").
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build save draft: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...)
	if err != nil {
		return false, postgres.MapError(err, "draft", d.EntityKey)
	}
	return tag.RowsAffected() == 1, nil
}

// Discard tombstones the draft at seq. The tombstone keeps the highest
// sequence seen so older pending saves are rejected. A stored draft newer
// than seq is left untouched.
func (r *Repo) Discard(ctx context.Context, userID uuid.UUID, entityKey string, seq int64) (bool, error) {
	sql, args, err := postgres.Builder().
		Insert(table).
		Columns("user_id", "entity_key", "seq", "payload", "updated_at").
		Values(userID, entityKey, seq, nil, squirrel.Expr("now()")).
		Suffix("ON CONFLICT (user_id, entity_key) DO UPDATE " +
			"SET seq = EXCLUDED.seq, payload = NULL, updated_at = EXCLUDED.updated_at " +
			"WHERE form_drafts.seq <= EXCLUDED.seq").
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build discard draft: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...)
	if err != nil {
		return false, postgres.MapError(err, "draft", entityKey)
	}
	return tag.RowsAffected() == 1, nil
}

// Get returns the live draft. Tombstones read as ErrNotFound.
func (r *Repo) Get(ctx context.Context, userID uuid.UUID, entityKey string) (*domain.FormDraft, error) {
	sql, args, err := postgres.Builder().
		Select("user_id", "entity_key", "seq", "payload", "updated_at").
		From(table).
		Where(squirrel.Eq{"user_id": userID, "entity_key": entityKey}).
		Where("payload IS NOT NULL").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get draft: %w", err)
	}

	var rw row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &rw, sql, args...); err != nil {
		return nil, postgres.MapError(err, "draft", entityKey)
	}

	return &domain.FormDraft{
		UserID:    rw.UserID,
		EntityKey: rw.EntityKey,
		Seq:       rw.Seq,
		Payload:   json.RawMessage(rw.Payload),
		UpdatedAt: rw.UpdatedAt,
	}, nil
}
