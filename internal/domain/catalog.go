package domain

import (
	"cmp"
	"slices"
	"time"

	"github.com/google/uuid"
)

// Module is a named, ordered group of fields for one entity kind.
// Modules referenced by fields are soft-disabled (IsActive=false) instead of deleted.
type Module struct {
	ID          uuid.UUID
	EntityKind  EntityKind
	Name        string
	Description *string
	OrderIndex  int
	IsActive    bool
	IsPublic    bool // visible to anonymous comparison viewers
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Field is one typed attribute owned by exactly one module.
// Options is non-empty iff Type.HasOptions().
type Field struct {
	ID          uuid.UUID
	ModuleID    uuid.UUID
	EntityKind  EntityKind
	Name        string
	Key         string
	Type        FieldType
	Description *string
	IsRequired  bool
	Options     []string
	OrderIndex  int
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// FieldValue is the persisted value of one field for one entity.
// Value is always the encoded string form (see Value.Encode).
type FieldValue struct {
	EntityID uuid.UUID
	FieldID  uuid.UUID
	Value    string
}

// Catalog is the active field catalog of one entity kind.
type Catalog struct {
	Kind    EntityKind
	Modules []Module
	Fields  []Field
}

// ModuleUpdateParams holds optional fields for a partial module update.
type ModuleUpdateParams struct {
	Name        *string
	Description *string // ptr("") clears
	OrderIndex  *int
	IsActive    *bool
	IsPublic    *bool
}

// FieldUpdateParams holds optional fields for a partial field update.
// Type and Key are immutable once values exist, so they are not updatable.
type FieldUpdateParams struct {
	Name        *string
	Description *string
	IsRequired  *bool
	Options     []string // nil = keep
	OrderIndex  *int
	IsActive    *bool
}

// Core field keys map onto System attributes instead of FieldValue rows.
const (
	FieldKeySystemName  = "system_name"
	FieldKeySupplier    = "supplier"
	FieldKeyWebsite     = "website"
	FieldKeyDescription = "description"
)

// IsCoreFieldKey reports whether key designates a core system attribute.
func IsCoreFieldKey(key string) bool {
	switch key {
	case FieldKeySystemName, FieldKeySupplier, FieldKeyWebsite, FieldKeyDescription:
		return true
	}
	return false
}

// SortedModules returns the modules ordered by OrderIndex, then Name.
func (c Catalog) SortedModules() []Module {
	out := slices.Clone(c.Modules)
	slices.SortStableFunc(out, func(a, b Module) int {
		return cmp.Or(cmp.Compare(a.OrderIndex, b.OrderIndex), cmp.Compare(a.Name, b.Name))
	})
	return out
}

// FieldsByModule groups fields by module id, each group ordered by OrderIndex, then Name.
func (c Catalog) FieldsByModule() map[uuid.UUID][]Field {
	grouped := make(map[uuid.UUID][]Field, len(c.Modules))
	for _, f := range c.Fields {
		grouped[f.ModuleID] = append(grouped[f.ModuleID], f)
	}
	for id := range grouped {
		slices.SortStableFunc(grouped[id], func(a, b Field) int {
			return cmp.Or(cmp.Compare(a.OrderIndex, b.OrderIndex), cmp.Compare(a.Name, b.Name))
		})
	}
	return grouped
}

// FieldByKey finds a field by its machine key.
func (c Catalog) FieldByKey(key string) (Field, bool) {
	for _, f := range c.Fields {
		if f.Key == key {
			return f, true
		}
	}
	return Field{}, false
}

// PublicOnly returns a copy restricted to public modules and their fields.
func (c Catalog) PublicOnly() Catalog {
	out := Catalog{Kind: c.Kind}
	public := make(map[uuid.UUID]bool, len(c.Modules))
	for _, m := range c.Modules {
		if m.IsPublic {
			public[m.ID] = true
			out.Modules = append(out.Modules, m)
		}
	}
	for _, f := range c.Fields {
		if public[f.ModuleID] {
			out.Fields = append(out.Fields, f)
		}
	}
	return out
}
