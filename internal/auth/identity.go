package auth

import (
	"github.com/google/uuid"

	"github.com/heartmarshall/erp-compare-backend/internal/domain"
)

// Identity is the caller recovered from a valid access token.
type Identity struct {
	UserID uuid.UUID
	Role   domain.UserRole
}
