package system

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/google/uuid"

	"github.com/heartmarshall/erp-compare-backend/internal/domain"
	"github.com/heartmarshall/erp-compare-backend/internal/dynform"
	"github.com/heartmarshall/erp-compare-backend/pkg/ctxutil"
)

// SaveSystemInput is a form submission for a new (SystemID nil) or existing system.
type SaveSystemInput struct {
	SystemID    *uuid.UUID
	Values      map[uuid.UUID]any // raw edits keyed by field id
	ValuesByKey map[string]any    // raw edits keyed by field key
	Size        []string          // nil keeps the stored size
	AsDraft     bool              // privileged users only; editors always submit for review
	DraftSeq    int64             // autosave sequence observed at submit time
}

// SaveSystem validates the submitted form and persists core attributes and
// field values in one transaction. Editors always send the system back to
// review; privileged users publish it directly unless AsDraft is set.
// After commit the caller's autosaved draft is discarded up to DraftSeq.
func (s *Service) SaveSystem(ctx context.Context, input SaveSystemInput) (*domain.System, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	catalog, err := s.catalog.Catalog(ctx, domain.EntityKindSystem)
	if err != nil {
		return nil, fmt.Errorf("system.SaveSystem catalog: %w", err)
	}

	existing, stored, err := s.loadForEdit(ctx, input.SystemID)
	if err != nil {
		return nil, err
	}

	form := dynform.BuildForm(existing, catalog, stored)
	if err := applyEdits(form, input); err != nil {
		return nil, err
	}

	sub, err := dynform.Submit(form)
	if err != nil {
		return nil, err
	}

	target := &domain.System{CreatedBy: &userID}
	var before domain.System
	if existing != nil {
		before = *existing
		target = existing
	}
	target.ApplyCore(sub.Core)
	if input.Size != nil {
		target.Size = normalizeSize(input.Size)
	}
	s.applyStatus(ctx, target, userID, input.AsDraft)

	var saved *domain.System
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var saveErr error
		action := domain.AuditActionUpdate
		if existing == nil {
			action = domain.AuditActionCreate
			saved, saveErr = s.systems.Create(txCtx, target)
		} else {
			saved, saveErr = s.systems.Update(txCtx, target)
		}
		if saveErr != nil {
			return fmt.Errorf("save system: %w", saveErr)
		}

		if err := s.values.Replace(txCtx, saved.ID, mergeValues(saved.ID, form, stored, sub.Extension)); err != nil {
			return fmt.Errorf("replace field values: %w", err)
		}

		return s.logAudit(txCtx, userID, saved.ID, action, systemChanges(before, *saved))
	})
	if err != nil {
		return nil, err
	}

	s.discardDraft(ctx, userID, input.SystemID, input.DraftSeq)

	s.log.InfoContext(ctx, "system saved",
		slog.String("user_id", userID.String()),
		slog.String("system_id", saved.ID.String()),
		slog.String("status", saved.Status.String()),
		slog.Int("values", len(sub.Extension)),
	)
	return saved, nil
}

// applyEdits feeds raw edits through the form. All parse errors are collected.
func applyEdits(form *dynform.Form, input SaveSystemInput) error {
	var errs []domain.FieldError
	collect := func(err error) {
		var ve *domain.ValidationError
		if errors.As(err, &ve) {
			errs = append(errs, ve.Errors...)
		}
	}

	for id, raw := range input.Values {
		if err := form.Set(id, raw); err != nil {
			collect(err)
		}
	}
	for key, raw := range input.ValuesByKey {
		if err := form.SetByKey(key, raw); err != nil {
			collect(err)
		}
	}

	if len(errs) == 0 {
		return nil
	}
	slices.SortFunc(errs, func(a, b domain.FieldError) int {
		return cmp.Or(cmp.Compare(a.Field, b.Field), cmp.Compare(a.Message, b.Message))
	})
	return domain.NewValidationErrors(errs)
}

// applyStatus sets the review state of sys for a save by userID.
func (s *Service) applyStatus(ctx context.Context, sys *domain.System, userID uuid.UUID, asDraft bool) {
	if !ctxutil.IsPrivilegedCtx(ctx) {
		sys.Status = domain.SystemStatusPending
		sys.ClearReview()
		return
	}

	if asDraft {
		sys.Status = domain.SystemStatusDraft
		sys.ClearReview()
		return
	}

	now := s.now().UTC()
	sys.Status = domain.SystemStatusPublished
	sys.ReviewedBy = &userID
	sys.ReviewedAt = &now
	sys.ReviewNotes = nil
}

// mergeValues keeps stored values of fields that are not on the form
// (deactivated fields) and replaces everything else with the submission.
func mergeValues(systemID uuid.UUID, form *dynform.Form, stored, submitted []domain.FieldValue) []domain.FieldValue {
	out := make([]domain.FieldValue, 0, len(stored)+len(submitted))
	for _, v := range stored {
		if _, onForm := form.Field(v.FieldID); !onForm {
			out = append(out, v)
		}
	}
	for _, v := range submitted {
		v.EntityID = systemID
		out = append(out, v)
	}
	return out
}

func normalizeSize(size []string) []string {
	out := make([]string, 0, len(size))
	for _, s := range size {
		if s = domain.NormalizeOption(s); s != "" {
			out = append(out, s)
		}
	}
	return domain.DedupeTokens(out)
}

// discardDraft tombstones the caller's draft. A failure here must not fail
// the save, which has already committed.
func (s *Service) discardDraft(ctx context.Context, userID uuid.UUID, systemID *uuid.UUID, seq int64) {
	if seq <= 0 {
		return
	}
	key := domain.DraftKey(systemID)
	if _, err := s.drafts.Discard(ctx, userID, key, seq); err != nil {
		s.log.WarnContext(ctx, "discard draft after save",
			slog.String("user_id", userID.String()),
			slog.String("entity_key", key),
			slog.Int64("seq", seq),
			slog.String("error", err.Error()),
		)
	}
}

func systemChanges(before, after domain.System) map[string]any {
	changes := make(map[string]any)
	diff := func(field string, was, now any) {
		if was != now {
			changes[field] = map[string]any{"old": was, "new": now}
		}
	}
	diff("name", before.Name, after.Name)
	diff("vendor", before.Vendor, after.Vendor)
	diff("website", deref(before.Website), deref(after.Website))
	diff("description", deref(before.Description), deref(after.Description))
	diff("status", string(before.Status), string(after.Status))
	if !slices.Equal(before.Size, after.Size) {
		changes["size"] = map[string]any{"old": before.Size, "new": after.Size}
	}
	return changes
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
