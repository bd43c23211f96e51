package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/heartmarshall/erp-compare-backend/internal/domain"
	"github.com/heartmarshall/erp-compare-backend/internal/service/glossary"
)

type glossaryService interface {
	List(ctx context.Context) ([]domain.GlossaryTerm, error)
	GetBySlug(ctx context.Context, slug string) (*domain.GlossaryTerm, error)
	Create(ctx context.Context, input glossary.TermInput) (*domain.GlossaryTerm, error)
	Update(ctx context.Context, id uuid.UUID, input glossary.TermInput) (*domain.GlossaryTerm, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// GlossaryHandler serves ERP glossary terms.
type GlossaryHandler struct {
	svc glossaryService
	log *slog.Logger
}

// NewGlossaryHandler creates a GlossaryHandler.
func NewGlossaryHandler(svc glossaryService, logger *slog.Logger) *GlossaryHandler {
	return &GlossaryHandler{svc: svc, log: logger.With("handler", "glossary")}
}

type termRequest struct {
	Term       string `json:"term"`
	Definition string `json:"definition"`
}

// List handles GET /api/glossary.
func (h *GlossaryHandler) List(w http.ResponseWriter, r *http.Request) {
	terms, err := h.svc.List(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	out := make([]glossaryResponse, len(terms))
	for i := range terms {
		out[i] = toGlossaryResponse(&terms[i])
	}
	writeJSON(w, http.StatusOK, out)
}

// Get handles GET /api/glossary/{slug}.
func (h *GlossaryHandler) Get(w http.ResponseWriter, r *http.Request) {
	term, err := h.svc.GetBySlug(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toGlossaryResponse(term))
}

// Create handles POST /api/admin/glossary.
func (h *GlossaryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req termRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	term, err := h.svc.Create(r.Context(), glossary.TermInput(req))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toGlossaryResponse(term))
}

// Update handles PUT /api/admin/glossary/{id}.
func (h *GlossaryHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}
	var req termRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	term, err := h.svc.Update(r.Context(), id, glossary.TermInput(req))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toGlossaryResponse(term))
}

// Delete handles DELETE /api/admin/glossary/{id}.
func (h *GlossaryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}
	if err := h.svc.Delete(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
