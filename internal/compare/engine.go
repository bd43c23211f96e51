// Package compare builds side-by-side comparison matrices of ERP systems and
// holds per-session comparison selections.
package compare

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/erp-compare-backend/internal/domain"
)

const (
	// MinSystems and MaxSystems bound a comparison.
	MinSystems = 2
	MaxSystems = 4

	// Missing is the display and comparison sentinel of an absent value.
	Missing = "-"

	// BasicSectionID identifies the fixed basic-information section.
	BasicSectionID = "basic"
)

// Basic section row keys.
const (
	RowVendor      = "vendor"
	RowSize        = "size"
	RowWebsite     = "website"
	RowDescription = "description"
)

// Access describes what the viewer may see.
type Access struct {
	Elevated bool
}

// Column identifies one compared system in selection order.
type Column struct {
	ID     uuid.UUID `json:"id"`
	Name   string    `json:"name"`
	Vendor string    `json:"vendor"`
}

// Cell is one system's value for one row. Items is set for list values.
type Cell struct {
	Text    string   `json:"text"`
	Items   []string `json:"items,omitempty"`
	Missing bool     `json:"missing"`
}

// Row is one attribute across all compared systems.
type Row struct {
	Key     string `json:"key"`
	Label   string `json:"label"`
	Cells   []Cell `json:"cells"`
	Differs bool   `json:"differs"`
}

// Section groups rows of one module.
type Section struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Rows []Row  `json:"rows"`
}

// Matrix is the full comparison result. Cells in every row follow Columns order.
type Matrix struct {
	Columns  []Column  `json:"columns"`
	Sections []Section `json:"sections"`
}

// Compare projects systems onto the catalog. values holds the stored field
// values per system id. systems must already be in selection order.
func Compare(systems []domain.System, catalog domain.Catalog, values map[uuid.UUID][]domain.FieldValue, access Access) (*Matrix, error) {
	if len(systems) < MinSystems || len(systems) > MaxSystems {
		return nil, domain.NewValidationError("ids", fmt.Sprintf("select between %d and %d systems", MinSystems, MaxSystems))
	}

	m := &Matrix{Columns: make([]Column, len(systems))}
	for i, s := range systems {
		m.Columns[i] = Column{ID: s.ID, Name: s.Name, Vendor: s.Vendor}
	}

	if basic := basicSection(systems, access); len(basic.Rows) > 0 {
		m.Sections = append(m.Sections, basic)
	}

	index := make([]map[uuid.UUID]string, len(systems))
	for i, s := range systems {
		index[i] = make(map[uuid.UUID]string, len(values[s.ID]))
		for _, v := range values[s.ID] {
			index[i][v.FieldID] = v.Value
		}
	}

	fieldsByModule := catalog.FieldsByModule()
	for _, mod := range catalog.SortedModules() {
		if !mod.IsPublic && !access.Elevated {
			continue
		}

		section := Section{ID: mod.ID.String(), Name: mod.Name}
		for _, f := range fieldsByModule[mod.ID] {
			if domain.IsCoreFieldKey(f.Key) {
				continue
			}
			cells := make([]Cell, len(systems))
			for i := range systems {
				cells[i] = fieldCell(f, index[i][f.ID])
			}
			section.Rows = append(section.Rows, newRow(f.Key, f.Name, cells))
		}
		if len(section.Rows) > 0 {
			m.Sections = append(m.Sections, section)
		}
	}

	return m, nil
}

func basicSection(systems []domain.System, access Access) Section {
	vendor := make([]Cell, len(systems))
	size := make([]Cell, len(systems))
	website := make([]Cell, len(systems))
	description := make([]Cell, len(systems))

	for i, s := range systems {
		vendor[i] = textCell(s.Vendor)
		size[i] = listCell(domain.NormalizeMultiselect(s.Size))
		website[i] = textCell(deref(s.Website))
		description[i] = textCell(deref(s.Description))
	}

	section := Section{ID: BasicSectionID, Name: "Informacje podstawowe"}
	section.Rows = append(section.Rows,
		newRow(RowVendor, "Dostawca", vendor),
		newRow(RowSize, "Wielkość firmy", size),
	)
	if access.Elevated {
		section.Rows = append(section.Rows, newRow(RowWebsite, "Strona WWW", website))
	}
	section.Rows = append(section.Rows, newRow(RowDescription, "Opis", description))
	return section
}

func newRow(key, label string, cells []Cell) Row {
	return Row{Key: key, Label: label, Cells: cells, Differs: differs(cells)}
}

// differs reports whether any cell's comparison key differs from the first cell's.
func differs(cells []Cell) bool {
	if len(cells) == 0 {
		return false
	}
	anchor := cells[0].key()
	for _, c := range cells[1:] {
		if c.key() != anchor {
			return true
		}
	}
	return false
}

func (c Cell) key() string {
	if c.Missing {
		return Missing
	}
	if c.Items != nil {
		return domain.JoinMultiselect(c.Items)
	}
	return c.Text
}

func fieldCell(f domain.Field, stored string) Cell {
	switch f.Type {
	case domain.FieldTypeMultiselect:
		return listCell(domain.NormalizeMultiselect(stored))
	case domain.FieldTypeBoolean:
		if stored == "" {
			return textCell("")
		}
		return textCell(domain.DecodeValue(f.Type, stored).Encode())
	default:
		return textCell(stored)
	}
}

func textCell(s string) Cell {
	s = strings.TrimSpace(s)
	if s == "" {
		return Cell{Text: Missing, Missing: true}
	}
	return Cell{Text: s}
}

func listCell(items []string) Cell {
	if len(items) == 0 {
		return Cell{Text: Missing, Missing: true}
	}
	return Cell{Text: strings.Join(items, ", "), Items: items}
}

// OrderBySelection returns the systems re-sorted to match ids. Systems whose
// id is not in ids are dropped; ids without a system are skipped.
func OrderBySelection(ids []uuid.UUID, systems []domain.System) []domain.System {
	byID := make(map[uuid.UUID]domain.System, len(systems))
	for _, s := range systems {
		byID[s.ID] = s
	}

	out := make([]domain.System, 0, len(ids))
	for _, id := range ids {
		if s, ok := byID[id]; ok {
			out = append(out, s)
		}
	}
	return out
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
