package middleware

import (
	"net/http"

	"github.com/heartmarshall/erp-compare-backend/pkg/ctxutil"
)

// RequireAdmin rejects anonymous callers with 401 and non-admins with 403.
// Services repeat the check; this keeps admin routes closed even to probing.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := ctxutil.UserIDFromCtx(r.Context()); !ok {
			writeError(w, http.StatusUnauthorized, "unauthorized")
			return
		}
		if !ctxutil.IsAdminCtx(r.Context()) {
			writeError(w, http.StatusForbidden, "admin access required")
			return
		}
		next.ServeHTTP(w, r)
	})
}
