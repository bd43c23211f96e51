package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/erp-compare-backend/internal/domain"
)

type roleService interface {
	SetRole(ctx context.Context, targetUserID uuid.UUID, role domain.UserRole) (*domain.User, error)
}

// UserAdminHandler serves admin user management.
type UserAdminHandler struct {
	svc roleService
	log *slog.Logger
}

// NewUserAdminHandler creates a UserAdminHandler.
func NewUserAdminHandler(svc roleService, logger *slog.Logger) *UserAdminHandler {
	return &UserAdminHandler{svc: svc, log: logger.With("handler", "user_admin")}
}

type setRoleRequest struct {
	Role string `json:"role"`
}

// SetRole handles PUT /api/admin/users/{id}/role.
func (h *UserAdminHandler) SetRole(w http.ResponseWriter, r *http.Request) {
	id, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}
	var req setRoleRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	user, err := h.svc.SetRole(r.Context(), id, domain.UserRole(req.Role))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toUserResponse(user))
}
