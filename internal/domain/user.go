package domain

import (
	"time"

	"github.com/google/uuid"
)

// User represents an authenticated portal user (editor, reviewer or admin).
type User struct {
	ID           uuid.UUID
	Email        string
	Name         string
	Role         UserRole
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
