package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/erp-compare-backend/internal/domain"
	"github.com/heartmarshall/erp-compare-backend/internal/dynform"
	"github.com/heartmarshall/erp-compare-backend/internal/service/system"
	"github.com/heartmarshall/erp-compare-backend/internal/transport/dataloader"
	"github.com/heartmarshall/erp-compare-backend/pkg/ctxutil"
)

type systemService interface {
	GetSystem(ctx context.Context, id uuid.UUID) (*domain.System, error)
	ListSystems(ctx context.Context, input system.ListInput) ([]domain.System, int, error)
	GetForm(ctx context.Context, systemID *uuid.UUID) (*dynform.Form, error)
	SaveSystem(ctx context.Context, input system.SaveSystemInput) (*domain.System, error)
	SubmitForReview(ctx context.Context, systemID uuid.UUID) (*domain.System, error)
	Review(ctx context.Context, input system.ReviewInput) (*domain.System, error)
	DeleteSystem(ctx context.Context, systemID uuid.UUID) error
	History(ctx context.Context, systemID uuid.UUID, limit int) ([]domain.AuditRecord, error)
}

type catalogReader interface {
	Catalog(ctx context.Context, kind domain.EntityKind) (domain.Catalog, error)
	PublicCatalog(ctx context.Context, kind domain.EntityKind) (domain.Catalog, error)
}

// SystemHandler serves the system catalog, edit forms and the review workflow.
type SystemHandler struct {
	svc     systemService
	catalog catalogReader
	log     *slog.Logger
}

// NewSystemHandler creates a SystemHandler.
func NewSystemHandler(svc systemService, catalog catalogReader, logger *slog.Logger) *SystemHandler {
	return &SystemHandler{svc: svc, catalog: catalog, log: logger.With("handler", "system")}
}

// viewerCatalog is the catalog the caller may see attribute values through.
func (h *SystemHandler) viewerCatalog(ctx context.Context) (domain.Catalog, error) {
	if _, ok := ctxutil.UserIDFromCtx(ctx); ok {
		return h.catalog.Catalog(ctx, domain.EntityKindSystem)
	}
	return h.catalog.PublicCatalog(ctx, domain.EntityKindSystem)
}

// List handles GET /api/systems?status=&q=&limit=&offset=&include=attributes.
func (h *SystemHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	input := system.ListInput{}
	if v := q.Get("status"); v != "" {
		status := domain.SystemStatus(v)
		input.Status = &status
	}
	if v := q.Get("q"); v != "" {
		input.Search = &v
	}
	var err error
	if input.Limit, err = queryInt(r, "limit", 50); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if input.Offset, err = queryInt(r, "offset", 0); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	systems, total, err := h.svc.ListSystems(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp := systemListResponse{Items: make([]systemResponse, len(systems)), Total: total}
	for i := range systems {
		resp.Items[i] = toSystemResponse(&systems[i])
	}

	if q.Get("include") == "attributes" && len(systems) > 0 {
		ids := make([]uuid.UUID, len(systems))
		for i, s := range systems {
			ids[i] = s.ID
		}
		c, err := h.viewerCatalog(r.Context())
		if err != nil {
			handleError(h.log, w, r, err)
			return
		}
		values, err := dataloader.LoadFieldValues(r.Context(), ids)
		if err != nil {
			handleError(h.log, w, r, err)
			return
		}
		for i, id := range ids {
			resp.Items[i] = resp.Items[i].withAttributes(c, values[id])
		}
	}

	writeJSON(w, http.StatusOK, resp)
}

// Get handles GET /api/systems/{id} with attribute values.
func (h *SystemHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}

	sys, err := h.svc.GetSystem(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	c, err := h.viewerCatalog(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	values, err := dataloader.LoadFieldValues(r.Context(), []uuid.UUID{sys.ID})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toSystemResponse(sys).withAttributes(c, values[sys.ID]))
}

// NewForm handles GET /api/systems/form.
func (h *SystemHandler) NewForm(w http.ResponseWriter, r *http.Request) {
	h.writeForm(w, r, nil)
}

// EditForm handles GET /api/systems/{id}/form.
func (h *SystemHandler) EditForm(w http.ResponseWriter, r *http.Request) {
	id, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}
	h.writeForm(w, r, &id)
}

func (h *SystemHandler) writeForm(w http.ResponseWriter, r *http.Request, id *uuid.UUID) {
	form, err := h.svc.GetForm(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toFormResponse(form))
}

type saveSystemRequest struct {
	Values     map[string]any    `json:"values"`
	ValuesByID map[uuid.UUID]any `json:"valuesById"`
	Size       []string          `json:"size"`
	AsDraft    bool              `json:"asDraft"`
	DraftSeq   int64             `json:"draftSeq"`
}

// Create handles POST /api/systems.
func (h *SystemHandler) Create(w http.ResponseWriter, r *http.Request) {
	h.save(w, r, nil, http.StatusCreated)
}

// Update handles PUT /api/systems/{id}.
func (h *SystemHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}
	h.save(w, r, &id, http.StatusOK)
}

func (h *SystemHandler) save(w http.ResponseWriter, r *http.Request, id *uuid.UUID, status int) {
	var req saveSystemRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	sys, err := h.svc.SaveSystem(r.Context(), system.SaveSystemInput{
		SystemID:    id,
		Values:      req.ValuesByID,
		ValuesByKey: req.Values,
		Size:        req.Size,
		AsDraft:     req.AsDraft,
		DraftSeq:    req.DraftSeq,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, status, toSystemResponse(sys))
}

// Submit handles POST /api/systems/{id}/submit.
func (h *SystemHandler) Submit(w http.ResponseWriter, r *http.Request) {
	id, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}

	sys, err := h.svc.SubmitForReview(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toSystemResponse(sys))
}

type reviewRequest struct {
	Decision string  `json:"decision"`
	Notes    *string `json:"notes"`
}

// Review handles POST /api/systems/{id}/review.
func (h *SystemHandler) Review(w http.ResponseWriter, r *http.Request) {
	id, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}
	var req reviewRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	sys, err := h.svc.Review(r.Context(), system.ReviewInput{
		SystemID: id,
		Decision: domain.ReviewDecision(req.Decision),
		Notes:    req.Notes,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toSystemResponse(sys))
}

// Delete handles DELETE /api/systems/{id}.
func (h *SystemHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}

	if err := h.svc.DeleteSystem(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// History handles GET /api/systems/{id}/history?limit=.
func (h *SystemHandler) History(w http.ResponseWriter, r *http.Request) {
	id, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}
	limit, err := queryInt(r, "limit", 0)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	records, err := h.svc.History(r.Context(), id, limit)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toAuditResponses(records))
}
