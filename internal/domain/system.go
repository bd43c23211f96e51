package domain

import (
	"time"

	"github.com/google/uuid"
)

// System is an ERP system in the catalog. Extension attributes live in
// FieldValue rows keyed by field id, not here.
type System struct {
	ID          uuid.UUID
	Name        string
	Vendor      string
	Website     *string
	Description *string
	Size        []string
	Status      SystemStatus
	CreatedBy   *uuid.UUID
	ReviewedBy  *uuid.UUID
	ReviewedAt  *time.Time
	ReviewNotes *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// CoreAttributes are the designated form fields stored on the System row.
type CoreAttributes struct {
	Name        string
	Vendor      string
	Website     string
	Description string
}

// ClearReview drops reviewer metadata, used when an edit returns the system to review.
func (s *System) ClearReview() {
	s.ReviewedBy = nil
	s.ReviewedAt = nil
	s.ReviewNotes = nil
}

// ApplyCore copies submitted core attributes onto the system.
// Empty optional attributes are stored as NULL.
func (s *System) ApplyCore(c CoreAttributes) {
	s.Name = c.Name
	s.Vendor = c.Vendor
	s.Website = optional(c.Website)
	s.Description = optional(c.Description)
}

// Core returns the system's core attributes with NULLs as empty strings.
func (s *System) Core() CoreAttributes {
	return CoreAttributes{
		Name:        s.Name,
		Vendor:      s.Vendor,
		Website:     deref(s.Website),
		Description: deref(s.Description),
	}
}

// IsOwnedBy reports whether userID created the system.
func (s *System) IsOwnedBy(userID uuid.UUID) bool {
	return s.CreatedBy != nil && *s.CreatedBy == userID
}

// SystemFilter contains filtering and pagination parameters for system listings.
type SystemFilter struct {
	Status    *SystemStatus
	Search    *string
	VisibleTo *uuid.UUID // also include non-published systems created by this user
	AllStatus bool       // privileged listing: no status restriction unless Status is set
	Limit     int
	Offset    int
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
