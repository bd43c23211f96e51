package comparison

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/erp-compare-backend/internal/compare"
	"github.com/heartmarshall/erp-compare-backend/internal/domain"
	"github.com/heartmarshall/erp-compare-backend/pkg/ctxutil"
)

// Session is a snapshot of one comparison selection.
type Session struct {
	ID  uuid.UUID   `json:"id"`
	IDs []uuid.UUID `json:"system_ids"`
	Max int         `json:"max"`
}

func snapshot(id uuid.UUID, sel *compare.Selection) *Session {
	return &Session{ID: id, IDs: sel.IDs(), Max: sel.Max()}
}

// NewSession starts an empty selection. Compact sessions hold at most two systems.
func (s *Service) NewSession(ctx context.Context, compact bool) *Session {
	id, sel := s.sessions.Create(compact)
	s.log.DebugContext(ctx, "comparison session created",
		slog.String("session_id", id.String()),
		slog.Bool("compact", compact),
	)
	return snapshot(id, sel)
}

// GetSession returns the current selection of a session.
func (s *Service) GetSession(_ context.Context, sessionID uuid.UUID) (*Session, error) {
	sel, err := s.selection(sessionID)
	if err != nil {
		return nil, err
	}
	return snapshot(sessionID, sel), nil
}

// AddSystem appends a visible system to the session. Adding to a full
// selection or adding a duplicate leaves it unchanged and reports false.
func (s *Service) AddSystem(ctx context.Context, sessionID, systemID uuid.UUID) (*Session, bool, error) {
	sel, err := s.selection(sessionID)
	if err != nil {
		return nil, false, err
	}

	sys, err := s.systems.GetByID(ctx, systemID)
	if err != nil {
		return nil, false, fmt.Errorf("comparison.AddSystem: %w", err)
	}
	if sys.Status != domain.SystemStatusPublished && !ctxutil.IsPrivilegedCtx(ctx) {
		return nil, false, fmt.Errorf("system %s: %w", systemID, domain.ErrNotFound)
	}

	added := sel.Add(systemID)
	return snapshot(sessionID, sel), added, nil
}

// RemoveSystem drops a system from the session and reports whether it was selected.
func (s *Service) RemoveSystem(_ context.Context, sessionID, systemID uuid.UUID) (*Session, bool, error) {
	sel, err := s.selection(sessionID)
	if err != nil {
		return nil, false, err
	}
	removed := sel.Remove(systemID)
	return snapshot(sessionID, sel), removed, nil
}

// ClearSession empties the selection.
func (s *Service) ClearSession(_ context.Context, sessionID uuid.UUID) (*Session, error) {
	sel, err := s.selection(sessionID)
	if err != nil {
		return nil, err
	}
	sel.Clear()
	return snapshot(sessionID, sel), nil
}

// SessionMatrix compares the systems of a session. With fewer than two
// selected systems the matrix is empty.
func (s *Service) SessionMatrix(ctx context.Context, sessionID uuid.UUID) (*Result, error) {
	sel, err := s.selection(sessionID)
	if err != nil {
		return nil, err
	}

	ids := sel.IDs()
	if len(ids) < compare.MinSystems {
		return &Result{Matrix: &compare.Matrix{Columns: []compare.Column{}, Sections: []compare.Section{}}, Missing: []uuid.UUID{}}, nil
	}

	res, err := s.compare(ctx, ids)
	if err != nil {
		return nil, err
	}
	comparisonsTotal.WithLabelValues("session").Inc()
	return res, nil
}

var errSessionNotFound = errors.New("comparison session not found")

func (s *Service) selection(sessionID uuid.UUID) (*compare.Selection, error) {
	sel, ok := s.sessions.Get(sessionID)
	if !ok {
		return nil, fmt.Errorf("%w: %w", errSessionNotFound, domain.ErrNotFound)
	}
	return sel, nil
}
