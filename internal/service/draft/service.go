// Package draft provides autosaved form drafts for the system editor.
package draft

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/erp-compare-backend/internal/domain"
	"github.com/heartmarshall/erp-compare-backend/pkg/ctxutil"
)

// MaxPayloadBytes bounds a stored draft payload.
const MaxPayloadBytes = 256 << 10

type draftRepo interface {
	Save(ctx context.Context, d domain.FormDraft) (bool, error)
	Discard(ctx context.Context, userID uuid.UUID, entityKey string, seq int64) (bool, error)
	Get(ctx context.Context, userID uuid.UUID, entityKey string) (*domain.FormDraft, error)
}

// Service manages the caller's form drafts.
type Service struct {
	drafts draftRepo
	log    *slog.Logger
}

// NewService creates a new draft service.
func NewService(log *slog.Logger, drafts draftRepo) *Service {
	return &Service{
		drafts: drafts,
		log:    log.With("service", "draft"),
	}
}

// SaveDraftInput is one autosave of the form identified by EntityKey.
//
// Seq must grow strictly per user and EntityKey across editing sessions, not
// only within one. The "new" key is shared by every create form a user opens,
// and a discard leaves a tombstone carrying its seq, so a session that
// restarts its counter at 1 is dropped as stale until it passes the
// tombstone. Clients use epoch milliseconds for this.
type SaveDraftInput struct {
	EntityKey string
	Seq       int64
	Payload   json.RawMessage
}

// Validate checks all fields and collects all errors.
func (i SaveDraftInput) Validate() error {
	var errs []domain.FieldError

	if err := validateEntityKey(i.EntityKey); err != nil {
		errs = append(errs, *err)
	}
	if i.Seq <= 0 {
		errs = append(errs, domain.FieldError{Field: "seq", Message: "must be positive"})
	}
	switch {
	case len(i.Payload) == 0:
		errs = append(errs, domain.FieldError{Field: "payload", Message: "required"})
	case len(i.Payload) > MaxPayloadBytes:
		errs = append(errs, domain.FieldError{Field: "payload", Message: "too large"})
	case !json.Valid(i.Payload):
		errs = append(errs, domain.FieldError{Field: "payload", Message: "must be valid JSON"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func validateEntityKey(key string) *domain.FieldError {
	if key == domain.DraftKeyNew {
		return nil
	}
	if _, err := uuid.Parse(key); err != nil {
		return &domain.FieldError{Field: "entity_key", Message: "must be \"new\" or a system id"}
	}
	return nil
}

// SaveDraft stores the draft when its sequence is newer than the stored one.
// It reports whether the write was applied; a stale write is not an error.
func (s *Service) SaveDraft(ctx context.Context, input SaveDraftInput) (bool, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return false, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return false, err
	}

	applied, err := s.drafts.Save(ctx, domain.FormDraft{
		UserID:    userID,
		EntityKey: input.EntityKey,
		Seq:       input.Seq,
		Payload:   input.Payload,
	})
	if err != nil {
		return false, fmt.Errorf("draft.SaveDraft: %w", err)
	}

	if !applied {
		s.log.DebugContext(ctx, "stale draft ignored",
			slog.String("user_id", userID.String()),
			slog.String("entity_key", input.EntityKey),
			slog.Int64("seq", input.Seq),
		)
	}
	return applied, nil
}

// GetDraft returns the caller's live draft. Discarded drafts are ErrNotFound.
func (s *Service) GetDraft(ctx context.Context, entityKey string) (*domain.FormDraft, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if fe := validateEntityKey(entityKey); fe != nil {
		return nil, domain.NewValidationError(fe.Field, fe.Message)
	}

	d, err := s.drafts.Get(ctx, userID, entityKey)
	if err != nil {
		return nil, fmt.Errorf("draft.GetDraft: %w", err)
	}
	return d, nil
}

// DiscardDraft tombstones the caller's draft at seq.
func (s *Service) DiscardDraft(ctx context.Context, entityKey string, seq int64) (bool, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return false, domain.ErrUnauthorized
	}

	var errs []domain.FieldError
	if fe := validateEntityKey(entityKey); fe != nil {
		errs = append(errs, *fe)
	}
	if seq <= 0 {
		errs = append(errs, domain.FieldError{Field: "seq", Message: "must be positive"})
	}
	if len(errs) > 0 {
		return false, domain.NewValidationErrors(errs)
	}

	applied, err := s.drafts.Discard(ctx, userID, entityKey, seq)
	if err != nil {
		return false, fmt.Errorf("draft.DiscardDraft: %w", err)
	}

	s.log.InfoContext(ctx, "draft discarded",
		slog.String("user_id", userID.String()),
		slog.String("entity_key", entityKey),
		slog.Int64("seq", seq),
		slog.Bool("applied", applied),
	)
	return applied, nil
}
