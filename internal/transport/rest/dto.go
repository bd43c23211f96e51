package rest

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/erp-compare-backend/internal/domain"
	"github.com/heartmarshall/erp-compare-backend/internal/dynform"
)

type userResponse struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
	Name  string    `json:"name"`
	Role  string    `json:"role"`
}

func toUserResponse(u *domain.User) userResponse {
	return userResponse{ID: u.ID, Email: u.Email, Name: u.Name, Role: u.Role.String()}
}

type moduleResponse struct {
	ID          uuid.UUID `json:"id"`
	Kind        string    `json:"kind"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	OrderIndex  int       `json:"orderIndex"`
	IsActive    bool      `json:"isActive"`
	IsPublic    bool      `json:"isPublic"`
}

func toModuleResponse(m *domain.Module) moduleResponse {
	return moduleResponse{
		ID:          m.ID,
		Kind:        m.EntityKind.String(),
		Name:        m.Name,
		Description: m.Description,
		OrderIndex:  m.OrderIndex,
		IsActive:    m.IsActive,
		IsPublic:    m.IsPublic,
	}
}

type fieldResponse struct {
	ID          uuid.UUID `json:"id"`
	ModuleID    uuid.UUID `json:"moduleId"`
	Key         string    `json:"key"`
	Name        string    `json:"name"`
	Type        string    `json:"type"`
	Description *string   `json:"description,omitempty"`
	IsRequired  bool      `json:"isRequired"`
	Options     []string  `json:"options,omitempty"`
	OrderIndex  int       `json:"orderIndex"`
	IsActive    bool      `json:"isActive"`
}

func toFieldResponse(f *domain.Field) fieldResponse {
	return fieldResponse{
		ID:          f.ID,
		ModuleID:    f.ModuleID,
		Key:         f.Key,
		Name:        f.Name,
		Type:        f.Type.String(),
		Description: f.Description,
		IsRequired:  f.IsRequired,
		Options:     f.Options,
		OrderIndex:  f.OrderIndex,
		IsActive:    f.IsActive,
	}
}

type catalogModule struct {
	moduleResponse
	Fields []fieldResponse `json:"fields"`
}

type catalogResponse struct {
	Kind    string          `json:"kind"`
	Modules []catalogModule `json:"modules"`
}

func toCatalogResponse(c domain.Catalog) catalogResponse {
	byModule := c.FieldsByModule()
	resp := catalogResponse{Kind: c.Kind.String(), Modules: []catalogModule{}}
	for _, m := range c.SortedModules() {
		cm := catalogModule{moduleResponse: toModuleResponse(&m), Fields: []fieldResponse{}}
		for _, f := range byModule[m.ID] {
			cm.Fields = append(cm.Fields, toFieldResponse(&f))
		}
		resp.Modules = append(resp.Modules, cm)
	}
	return resp
}

type systemResponse struct {
	ID          uuid.UUID                 `json:"id"`
	Name        string                    `json:"name"`
	Vendor      string                    `json:"vendor"`
	Website     *string                   `json:"website,omitempty"`
	Description *string                   `json:"description,omitempty"`
	Size        []string                  `json:"size"`
	Status      string                    `json:"status"`
	CreatedBy   *uuid.UUID                `json:"createdBy,omitempty"`
	ReviewedBy  *uuid.UUID                `json:"reviewedBy,omitempty"`
	ReviewedAt  *time.Time                `json:"reviewedAt,omitempty"`
	ReviewNotes *string                   `json:"reviewNotes,omitempty"`
	CreatedAt   time.Time                 `json:"createdAt"`
	UpdatedAt   time.Time                 `json:"updatedAt"`
	Attributes  map[string]attributeValue `json:"attributes,omitempty"`
}

// attributeValue is one extension value, keyed in the response by field key.
type attributeValue struct {
	Label string   `json:"label"`
	Text  string   `json:"text,omitempty"`
	Items []string `json:"items,omitempty"`
	Bool  *bool    `json:"bool,omitempty"`
}

func toSystemResponse(s *domain.System) systemResponse {
	size := s.Size
	if size == nil {
		size = []string{}
	}
	return systemResponse{
		ID:          s.ID,
		Name:        s.Name,
		Vendor:      s.Vendor,
		Website:     s.Website,
		Description: s.Description,
		Size:        size,
		Status:      s.Status.String(),
		CreatedBy:   s.CreatedBy,
		ReviewedBy:  s.ReviewedBy,
		ReviewedAt:  s.ReviewedAt,
		ReviewNotes: s.ReviewNotes,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

// withAttributes decodes stored values of fields present in catalog.
// Values of fields outside the catalog, such as hidden modules, are dropped.
func (r systemResponse) withAttributes(catalog domain.Catalog, values []domain.FieldValue) systemResponse {
	byID := make(map[uuid.UUID]domain.Field, len(catalog.Fields))
	for _, f := range catalog.Fields {
		byID[f.ID] = f
	}

	r.Attributes = make(map[string]attributeValue, len(values))
	for _, v := range values {
		f, ok := byID[v.FieldID]
		if !ok {
			continue
		}
		val := domain.DecodeValue(f.Type, v.Value)
		a := attributeValue{Label: f.Name}
		switch f.Type {
		case domain.FieldTypeMultiselect:
			a.Items = val.Items
		case domain.FieldTypeBoolean:
			a.Bool = &val.Bool
		default:
			a.Text = val.Text
		}
		r.Attributes[f.Key] = a
	}
	return r
}

type systemListResponse struct {
	Items []systemResponse `json:"items"`
	Total int              `json:"total"`
}

type formSection struct {
	ModuleID uuid.UUID       `json:"moduleId"`
	Name     string          `json:"name"`
	Fields   []formFieldJSON `json:"fields"`
}

type formFieldJSON struct {
	ID  uuid.UUID `json:"id"`
	Key string    `json:"key"`
	dynform.Input
}

type formResponse struct {
	SystemID *uuid.UUID    `json:"systemId,omitempty"`
	Sections []formSection `json:"sections"`
}

func toFormResponse(f *dynform.Form) formResponse {
	resp := formResponse{SystemID: f.SystemID, Sections: make([]formSection, 0, len(f.Sections))}
	for _, sec := range f.Sections {
		fs := formSection{ModuleID: sec.Module.ID, Name: sec.Module.Name, Fields: make([]formFieldJSON, 0, len(sec.Fields))}
		for _, ff := range sec.Fields {
			fs.Fields = append(fs.Fields, formFieldJSON{ID: ff.Field.ID, Key: ff.Field.Key, Input: ff.Input()})
		}
		resp.Sections = append(resp.Sections, fs)
	}
	return resp
}

type auditResponse struct {
	ID        uuid.UUID      `json:"id"`
	UserID    uuid.UUID      `json:"userId"`
	Action    string         `json:"action"`
	Changes   map[string]any `json:"changes,omitempty"`
	CreatedAt time.Time      `json:"createdAt"`
}

func toAuditResponses(records []domain.AuditRecord) []auditResponse {
	out := make([]auditResponse, len(records))
	for i, rec := range records {
		out[i] = auditResponse{
			ID:        rec.ID,
			UserID:    rec.UserID,
			Action:    string(rec.Action),
			Changes:   rec.Changes,
			CreatedAt: rec.CreatedAt,
		}
	}
	return out
}

type draftResponse struct {
	EntityKey string          `json:"entityKey"`
	Seq       int64           `json:"seq"`
	Payload   json.RawMessage `json:"payload"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

type glossaryResponse struct {
	ID         uuid.UUID `json:"id"`
	Slug       string    `json:"slug"`
	Term       string    `json:"term"`
	Definition string    `json:"definition"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

func toGlossaryResponse(t *domain.GlossaryTerm) glossaryResponse {
	return glossaryResponse{ID: t.ID, Slug: t.Slug, Term: t.Term, Definition: t.Definition, UpdatedAt: t.UpdatedAt}
}
