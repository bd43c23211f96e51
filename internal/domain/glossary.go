package domain

import (
	"time"

	"github.com/google/uuid"
)

// GlossaryTerm is one ERP term with its definition.
type GlossaryTerm struct {
	ID         uuid.UUID
	Slug       string
	Term       string
	Definition string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
