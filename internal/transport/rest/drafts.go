package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/heartmarshall/erp-compare-backend/internal/domain"
	"github.com/heartmarshall/erp-compare-backend/internal/service/draft"
)

type draftService interface {
	SaveDraft(ctx context.Context, input draft.SaveDraftInput) (bool, error)
	GetDraft(ctx context.Context, entityKey string) (*domain.FormDraft, error)
	DiscardDraft(ctx context.Context, entityKey string, seq int64) (bool, error)
}

// DraftHandler serves per-user form autosave.
type DraftHandler struct {
	svc draftService
	log *slog.Logger
}

// NewDraftHandler creates a DraftHandler.
func NewDraftHandler(svc draftService, logger *slog.Logger) *DraftHandler {
	return &DraftHandler{svc: svc, log: logger.With("handler", "draft")}
}

type saveDraftRequest struct {
	Seq     int64           `json:"seq"`
	Payload json.RawMessage `json:"payload"`
}

type draftWriteResponse struct {
	Applied bool `json:"applied"`
}

// Get handles GET /api/drafts/{entityKey}.
func (h *DraftHandler) Get(w http.ResponseWriter, r *http.Request) {
	d, err := h.svc.GetDraft(r.Context(), chi.URLParam(r, "entityKey"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, draftResponse{
		EntityKey: d.EntityKey,
		Seq:       d.Seq,
		Payload:   d.Payload,
		UpdatedAt: d.UpdatedAt,
	})
}

// Save handles PUT /api/drafts/{entityKey}. Stale sequence numbers are
// accepted with applied=false.
func (h *DraftHandler) Save(w http.ResponseWriter, r *http.Request) {
	var req saveDraftRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	applied, err := h.svc.SaveDraft(r.Context(), draft.SaveDraftInput{
		EntityKey: chi.URLParam(r, "entityKey"),
		Seq:       req.Seq,
		Payload:   req.Payload,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, draftWriteResponse{Applied: applied})
}

// Discard handles DELETE /api/drafts/{entityKey}?seq=N.
func (h *DraftHandler) Discard(w http.ResponseWriter, r *http.Request) {
	seq, err := strconv.ParseInt(r.URL.Query().Get("seq"), 10, 64)
	if err != nil {
		handleError(h.log, w, r, domain.NewValidationError("seq", "must be an integer"))
		return
	}

	applied, err := h.svc.DiscardDraft(r.Context(), chi.URLParam(r, "entityKey"), seq)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, draftWriteResponse{Applied: applied})
}
