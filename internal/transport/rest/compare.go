package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/erp-compare-backend/internal/domain"
	"github.com/heartmarshall/erp-compare-backend/internal/service/comparison"
)

type comparisonService interface {
	Compare(ctx context.Context, ids []uuid.UUID) (*comparison.Result, error)
	NewSession(ctx context.Context, compact bool) *comparison.Session
	GetSession(ctx context.Context, sessionID uuid.UUID) (*comparison.Session, error)
	AddSystem(ctx context.Context, sessionID, systemID uuid.UUID) (*comparison.Session, bool, error)
	RemoveSystem(ctx context.Context, sessionID, systemID uuid.UUID) (*comparison.Session, bool, error)
	ClearSession(ctx context.Context, sessionID uuid.UUID) (*comparison.Session, error)
	SessionMatrix(ctx context.Context, sessionID uuid.UUID) (*comparison.Result, error)
}

// CompareHandler serves comparison matrices and selection sessions.
type CompareHandler struct {
	svc comparisonService
	log *slog.Logger
}

// NewCompareHandler creates a CompareHandler.
func NewCompareHandler(svc comparisonService, logger *slog.Logger) *CompareHandler {
	return &CompareHandler{svc: svc, log: logger.With("handler", "compare")}
}

// Compare handles GET /api/compare?ids=a,b,c.
func (h *CompareHandler) Compare(w http.ResponseWriter, r *http.Request) {
	ids, err := parseIDList(r.URL.Query().Get("ids"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	res, err := h.svc.Compare(r.Context(), ids)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func parseIDList(raw string) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := uuid.Parse(part)
		if err != nil {
			return nil, domain.NewValidationError("ids", "invalid system id")
		}
		ids = append(ids, id)
	}
	return ids, nil
}

type sessionResponse struct {
	*comparison.Session
	Changed *bool `json:"changed,omitempty"`
}

// CreateSession handles POST /api/compare/sessions?compact=true.
func (h *CompareHandler) CreateSession(w http.ResponseWriter, r *http.Request) {
	compact := r.URL.Query().Get("compact") == "true"
	writeJSON(w, http.StatusCreated, sessionResponse{Session: h.svc.NewSession(r.Context(), compact)})
}

// GetSession handles GET /api/compare/sessions/{sid}.
func (h *CompareHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	sid, ok := uuidParam(w, r, "sid")
	if !ok {
		return
	}

	sess, err := h.svc.GetSession(r.Context(), sid)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, sessionResponse{Session: sess})
}

type addSystemRequest struct {
	SystemID uuid.UUID `json:"systemId"`
}

// AddSystem handles POST /api/compare/sessions/{sid}/systems.
func (h *CompareHandler) AddSystem(w http.ResponseWriter, r *http.Request) {
	sid, ok := uuidParam(w, r, "sid")
	if !ok {
		return
	}
	var req addSystemRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	sess, added, err := h.svc.AddSystem(r.Context(), sid, req.SystemID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, sessionResponse{Session: sess, Changed: &added})
}

// RemoveSystem handles DELETE /api/compare/sessions/{sid}/systems/{id}.
func (h *CompareHandler) RemoveSystem(w http.ResponseWriter, r *http.Request) {
	sid, ok := uuidParam(w, r, "sid")
	if !ok {
		return
	}
	id, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}

	sess, removed, err := h.svc.RemoveSystem(r.Context(), sid, id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, sessionResponse{Session: sess, Changed: &removed})
}

// ClearSession handles DELETE /api/compare/sessions/{sid}/systems.
func (h *CompareHandler) ClearSession(w http.ResponseWriter, r *http.Request) {
	sid, ok := uuidParam(w, r, "sid")
	if !ok {
		return
	}

	sess, err := h.svc.ClearSession(r.Context(), sid)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, sessionResponse{Session: sess})
}

// SessionMatrix handles GET /api/compare/sessions/{sid}/matrix.
func (h *CompareHandler) SessionMatrix(w http.ResponseWriter, r *http.Request) {
	sid, ok := uuidParam(w, r, "sid")
	if !ok {
		return
	}

	res, err := h.svc.SessionMatrix(r.Context(), sid)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}
