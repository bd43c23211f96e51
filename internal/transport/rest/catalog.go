package rest

import (
	"context"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/heartmarshall/erp-compare-backend/internal/domain"
	"github.com/heartmarshall/erp-compare-backend/internal/service/catalog"
	"github.com/heartmarshall/erp-compare-backend/pkg/ctxutil"
)

type catalogService interface {
	Catalog(ctx context.Context, kind domain.EntityKind) (domain.Catalog, error)
	PublicCatalog(ctx context.Context, kind domain.EntityKind) (domain.Catalog, error)
	ListAllModules(ctx context.Context, kind domain.EntityKind) ([]domain.Module, error)
	ListModuleFields(ctx context.Context, moduleID uuid.UUID) ([]domain.Field, error)
	CreateModule(ctx context.Context, input catalog.CreateModuleInput) (*domain.Module, error)
	UpdateModule(ctx context.Context, input catalog.UpdateModuleInput) (*domain.Module, error)
	DeleteModule(ctx context.Context, moduleID uuid.UUID) (bool, error)
	CreateField(ctx context.Context, input catalog.CreateFieldInput) (*domain.Field, error)
	UpdateField(ctx context.Context, input catalog.UpdateFieldInput) (*domain.Field, error)
	DeactivateField(ctx context.Context, fieldID uuid.UUID) (*domain.Field, error)
	ImportCatalog(ctx context.Context, doc catalog.Document) (*catalog.ImportResult, error)
	ExportCatalog(ctx context.Context, kind domain.EntityKind) (*catalog.Document, error)
}

// CatalogHandler serves the field catalog and its admin endpoints.
type CatalogHandler struct {
	svc catalogService
	log *slog.Logger
}

// NewCatalogHandler creates a CatalogHandler.
func NewCatalogHandler(svc catalogService, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{svc: svc, log: logger.With("handler", "catalog")}
}

func kindParam(r *http.Request) domain.EntityKind {
	return domain.EntityKind(chi.URLParam(r, "kind"))
}

// Get handles GET /api/catalog/{kind}. Anonymous callers get public modules only.
func (h *CatalogHandler) Get(w http.ResponseWriter, r *http.Request) {
	get := h.svc.PublicCatalog
	if _, ok := ctxutil.UserIDFromCtx(r.Context()); ok {
		get = h.svc.Catalog
	}

	c, err := get(r.Context(), kindParam(r))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toCatalogResponse(c))
}

// ListModules handles GET /api/admin/modules?kind=system, inactive modules included.
func (h *CatalogHandler) ListModules(w http.ResponseWriter, r *http.Request) {
	kind := domain.EntityKind(r.URL.Query().Get("kind"))
	if kind == "" {
		kind = domain.EntityKindSystem
	}

	modules, err := h.svc.ListAllModules(r.Context(), kind)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out := make([]moduleResponse, len(modules))
	for i := range modules {
		out[i] = toModuleResponse(&modules[i])
	}
	writeJSON(w, http.StatusOK, out)
}

// ListModuleFields handles GET /api/admin/modules/{id}/fields.
func (h *CatalogHandler) ListModuleFields(w http.ResponseWriter, r *http.Request) {
	id, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}

	fields, err := h.svc.ListModuleFields(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out := make([]fieldResponse, len(fields))
	for i := range fields {
		out[i] = toFieldResponse(&fields[i])
	}
	writeJSON(w, http.StatusOK, out)
}

type createModuleRequest struct {
	Kind        string  `json:"kind"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
	OrderIndex  int     `json:"orderIndex"`
	IsPublic    bool    `json:"isPublic"`
}

// CreateModule handles POST /api/admin/modules.
func (h *CatalogHandler) CreateModule(w http.ResponseWriter, r *http.Request) {
	var req createModuleRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Kind == "" {
		req.Kind = domain.EntityKindSystem.String()
	}

	m, err := h.svc.CreateModule(r.Context(), catalog.CreateModuleInput{
		Kind:        domain.EntityKind(req.Kind),
		Name:        req.Name,
		Description: req.Description,
		OrderIndex:  req.OrderIndex,
		IsPublic:    req.IsPublic,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toModuleResponse(m))
}

type updateModuleRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	OrderIndex  *int    `json:"orderIndex"`
	IsActive    *bool   `json:"isActive"`
	IsPublic    *bool   `json:"isPublic"`
}

// UpdateModule handles PUT /api/admin/modules/{id}.
func (h *CatalogHandler) UpdateModule(w http.ResponseWriter, r *http.Request) {
	id, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}
	var req updateModuleRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	m, err := h.svc.UpdateModule(r.Context(), catalog.UpdateModuleInput{
		ModuleID:    id,
		Name:        req.Name,
		Description: req.Description,
		OrderIndex:  req.OrderIndex,
		IsActive:    req.IsActive,
		IsPublic:    req.IsPublic,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toModuleResponse(m))
}

// DeleteModule handles DELETE /api/admin/modules/{id}. A module that still
// has fields is deactivated instead of removed.
func (h *CatalogHandler) DeleteModule(w http.ResponseWriter, r *http.Request) {
	id, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}

	deactivated, err := h.svc.DeleteModule(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"deactivated": deactivated})
}

type createFieldRequest struct {
	ModuleID    uuid.UUID `json:"moduleId"`
	Name        string    `json:"name"`
	Key         string    `json:"key"`
	Type        string    `json:"type"`
	Description *string   `json:"description"`
	IsRequired  bool      `json:"isRequired"`
	Options     []string  `json:"options"`
	OrderIndex  int       `json:"orderIndex"`
}

// CreateField handles POST /api/admin/fields.
func (h *CatalogHandler) CreateField(w http.ResponseWriter, r *http.Request) {
	var req createFieldRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	f, err := h.svc.CreateField(r.Context(), catalog.CreateFieldInput{
		ModuleID:    req.ModuleID,
		Name:        req.Name,
		Key:         req.Key,
		Type:        domain.FieldType(req.Type),
		Description: req.Description,
		IsRequired:  req.IsRequired,
		Options:     req.Options,
		OrderIndex:  req.OrderIndex,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toFieldResponse(f))
}

type updateFieldRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	IsRequired  *bool    `json:"isRequired"`
	Options     []string `json:"options"`
	OrderIndex  *int     `json:"orderIndex"`
	IsActive    *bool    `json:"isActive"`
}

// UpdateField handles PUT /api/admin/fields/{id}.
func (h *CatalogHandler) UpdateField(w http.ResponseWriter, r *http.Request) {
	id, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}
	var req updateFieldRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	f, err := h.svc.UpdateField(r.Context(), catalog.UpdateFieldInput{
		FieldID:     id,
		Name:        req.Name,
		Description: req.Description,
		IsRequired:  req.IsRequired,
		Options:     req.Options,
		OrderIndex:  req.OrderIndex,
		IsActive:    req.IsActive,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toFieldResponse(f))
}

// DeleteField handles DELETE /api/admin/fields/{id}. Fields are only ever
// deactivated so stored values survive.
func (h *CatalogHandler) DeleteField(w http.ResponseWriter, r *http.Request) {
	id, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}

	f, err := h.svc.DeactivateField(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toFieldResponse(f))
}

// Export handles GET /api/admin/catalog/{kind}/export as YAML.
func (h *CatalogHandler) Export(w http.ResponseWriter, r *http.Request) {
	doc, err := h.svc.ExportCatalog(r.Context(), kindParam(r))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out, err := yaml.Marshal(doc)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.Header().Set("Content-Type", "application/yaml")
	w.WriteHeader(http.StatusOK)
	w.Write(out) //nolint:errcheck
}

type importResponse struct {
	ModulesCreated int `json:"modulesCreated"`
	ModulesUpdated int `json:"modulesUpdated"`
	FieldsCreated  int `json:"fieldsCreated"`
	FieldsUpdated  int `json:"fieldsUpdated"`
}

// Import handles POST /api/admin/catalog/import with a YAML document body.
func (h *CatalogHandler) Import(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	var doc catalog.Document
	if err := yaml.Unmarshal(body, &doc); err != nil {
		writeError(w, http.StatusBadRequest, "invalid YAML document")
		return
	}

	res, err := h.svc.ImportCatalog(r.Context(), doc)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, importResponse(*res))
}
