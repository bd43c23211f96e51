package catalog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/erp-compare-backend/internal/domain"
	"github.com/heartmarshall/erp-compare-backend/pkg/ctxutil"
)

// Document is the portable form of a catalog used by import and export.
type Document struct {
	Kind    domain.EntityKind `yaml:"kind"`
	Modules []ModuleEntry     `yaml:"modules"`
}

// ModuleEntry describes one module and its fields.
type ModuleEntry struct {
	Name        string       `yaml:"name"`
	Description string       `yaml:"description,omitempty"`
	OrderIndex  int          `yaml:"order_index"`
	IsPublic    bool         `yaml:"public"`
	Fields      []FieldEntry `yaml:"fields"`
}

// FieldEntry describes one field. Key is the upsert identity.
type FieldEntry struct {
	Key         string           `yaml:"key"`
	Name        string           `yaml:"name"`
	Type        domain.FieldType `yaml:"type"`
	Description string           `yaml:"description,omitempty"`
	IsRequired  bool             `yaml:"required,omitempty"`
	Options     []string         `yaml:"options,omitempty"`
	OrderIndex  int              `yaml:"order_index"`
}

// ImportResult counts what an import changed.
type ImportResult struct {
	ModulesCreated int
	ModulesUpdated int
	FieldsCreated  int
	FieldsUpdated  int
}

// Validate checks the whole document and reports errors with their path,
// e.g. "modules[1].fields[0].field_key".
func (d *Document) Validate() error {
	var errs []domain.FieldError

	if !d.Kind.IsValid() {
		errs = append(errs, domain.FieldError{Field: "kind", Message: "unknown entity kind"})
	}

	moduleNames := make(map[string]bool, len(d.Modules))
	keys := make(map[string]bool)
	for mi, m := range d.Modules {
		prefix := fmt.Sprintf("modules[%d]", mi)
		name := strings.TrimSpace(m.Name)
		if moduleNames[name] {
			errs = append(errs, domain.FieldError{Field: prefix + ".name", Message: "duplicate module name"})
		}
		moduleNames[name] = true

		errs = append(errs, prefixed(prefix, CreateModuleInput{
			Kind:       d.Kind,
			Name:       m.Name,
			OrderIndex: m.OrderIndex,
		}.Validate())...)

		for fi, f := range m.Fields {
			fprefix := fmt.Sprintf("%s.fields[%d]", prefix, fi)
			key := strings.TrimSpace(f.Key)
			if keys[key] {
				errs = append(errs, domain.FieldError{Field: fprefix + ".field_key", Message: "duplicate field key"})
			}
			keys[key] = true

			errs = append(errs, prefixed(fprefix, CreateFieldInput{
				ModuleID:   uuid.Max,
				Name:       f.Name,
				Key:        key,
				Type:       f.Type,
				Options:    normalizeOptions(f.Options),
				OrderIndex: f.OrderIndex,
			}.Validate())...)
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func prefixed(prefix string, err error) []domain.FieldError {
	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		return nil
	}
	out := make([]domain.FieldError, len(ve.Errors))
	for i, fe := range ve.Errors {
		out[i] = domain.FieldError{Field: prefix + "." + fe.Field, Message: fe.Message}
	}
	return out
}

// ImportCatalog upserts modules by name and fields by key in one transaction
// (admin only). Imported modules and fields are (re)activated. A field's type
// and owning module cannot change through import.
func (s *Service) ImportCatalog(ctx context.Context, doc Document) (*ImportResult, error) {
	if err := requireAdmin(ctx); err != nil {
		return nil, err
	}
	userID, _ := ctxutil.UserIDFromCtx(ctx)

	if err := doc.Validate(); err != nil {
		return nil, err
	}

	var result ImportResult
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		result = ImportResult{}
		for _, entry := range doc.Modules {
			module, created, err := s.upsertModule(txCtx, doc.Kind, entry)
			if err != nil {
				return err
			}
			if created {
				result.ModulesCreated++
			} else {
				result.ModulesUpdated++
			}

			for _, fe := range entry.Fields {
				created, err := s.upsertField(txCtx, module, fe)
				if err != nil {
					return err
				}
				if created {
					result.FieldsCreated++
				} else {
					result.FieldsUpdated++
				}
			}

			action := domain.AuditActionUpdate
			if created {
				action = domain.AuditActionCreate
			}
			if err := s.logAudit(txCtx, userID, domain.EntityTypeModule, module.ID, action, map[string]any{
				"import": map[string]any{"fields": len(entry.Fields)},
			}); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.invalidate()

	s.log.InfoContext(ctx, "catalog imported",
		slog.String("kind", doc.Kind.String()),
		slog.Int("modules_created", result.ModulesCreated),
		slog.Int("modules_updated", result.ModulesUpdated),
		slog.Int("fields_created", result.FieldsCreated),
		slog.Int("fields_updated", result.FieldsUpdated),
	)
	return &result, nil
}

func (s *Service) upsertModule(ctx context.Context, kind domain.EntityKind, entry ModuleEntry) (*domain.Module, bool, error) {
	name := strings.TrimSpace(entry.Name)
	description := strings.TrimSpace(entry.Description)

	existing, err := s.modules.GetByName(ctx, kind, name)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		created, err := s.modules.Create(ctx, &domain.Module{
			EntityKind:  kind,
			Name:        name,
			Description: trimOrNil(&description),
			OrderIndex:  entry.OrderIndex,
			IsActive:    true,
			IsPublic:    entry.IsPublic,
		})
		if err != nil {
			return nil, false, fmt.Errorf("import module %q: %w", name, err)
		}
		return created, true, nil
	case err != nil:
		return nil, false, fmt.Errorf("import module %q: %w", name, err)
	}

	active := true
	updated, err := s.modules.Update(ctx, existing.ID, domain.ModuleUpdateParams{
		Description: &description,
		OrderIndex:  &entry.OrderIndex,
		IsActive:    &active,
		IsPublic:    &entry.IsPublic,
	})
	if err != nil {
		return nil, false, fmt.Errorf("import module %q: %w", name, err)
	}
	return updated, false, nil
}

func (s *Service) upsertField(ctx context.Context, module *domain.Module, entry FieldEntry) (bool, error) {
	key := strings.TrimSpace(entry.Key)
	name := strings.TrimSpace(entry.Name)
	description := strings.TrimSpace(entry.Description)
	options := normalizeOptions(entry.Options)

	existing, err := s.fields.GetByKey(ctx, module.EntityKind, key)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		_, err := s.fields.Create(ctx, &domain.Field{
			ModuleID:    module.ID,
			EntityKind:  module.EntityKind,
			Name:        name,
			Key:         key,
			Type:        entry.Type,
			Description: trimOrNil(&description),
			IsRequired:  entry.IsRequired,
			Options:     options,
			OrderIndex:  entry.OrderIndex,
			IsActive:    true,
		})
		if err != nil {
			return false, fmt.Errorf("import field %q: %w", key, err)
		}
		return true, nil
	case err != nil:
		return false, fmt.Errorf("import field %q: %w", key, err)
	}

	if existing.Type != entry.Type {
		return false, domain.NewValidationError(key, "field type cannot change")
	}
	if existing.ModuleID != module.ID {
		return false, domain.NewValidationError(key, "field belongs to another module")
	}

	active := true
	params := domain.FieldUpdateParams{
		Name:        &name,
		Description: &description,
		IsRequired:  &entry.IsRequired,
		OrderIndex:  &entry.OrderIndex,
		IsActive:    &active,
	}
	if entry.Type.HasOptions() {
		params.Options = options
	}
	if _, err := s.fields.Update(ctx, existing.ID, params); err != nil {
		return false, fmt.Errorf("import field %q: %w", key, err)
	}
	return false, nil
}

// ExportCatalog returns the active catalog of a kind as a Document (admin only).
// It reads through to the store instead of the cache.
func (s *Service) ExportCatalog(ctx context.Context, kind domain.EntityKind) (*Document, error) {
	if err := requireAdmin(ctx); err != nil {
		return nil, err
	}
	if !kind.IsValid() {
		return nil, domain.NewValidationError("kind", "unknown entity kind")
	}

	modules, err := s.modules.ListActive(ctx, kind)
	if err != nil {
		return nil, fmt.Errorf("catalog.ExportCatalog modules: %w", err)
	}
	ids := make([]uuid.UUID, len(modules))
	for i, m := range modules {
		ids[i] = m.ID
	}
	fields, err := s.ListFields(ctx, ids)
	if err != nil {
		return nil, err
	}

	c := domain.Catalog{Kind: kind, Modules: modules, Fields: fields}
	byModule := c.FieldsByModule()

	doc := &Document{Kind: kind, Modules: make([]ModuleEntry, 0, len(modules))}
	for _, m := range c.SortedModules() {
		entry := ModuleEntry{
			Name:       m.Name,
			OrderIndex: m.OrderIndex,
			IsPublic:   m.IsPublic,
			Fields:     make([]FieldEntry, 0, len(byModule[m.ID])),
		}
		if m.Description != nil {
			entry.Description = *m.Description
		}
		for _, f := range byModule[m.ID] {
			fs := FieldEntry{
				Key:        f.Key,
				Name:       f.Name,
				Type:       f.Type,
				IsRequired: f.IsRequired,
				Options:    f.Options,
				OrderIndex: f.OrderIndex,
			}
			if f.Description != nil {
				fs.Description = *f.Description
			}
			entry.Fields = append(entry.Fields, fs)
		}
		doc.Modules = append(doc.Modules, entry)
	}
	return doc, nil
}
