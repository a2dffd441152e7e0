package middleware

import (
	"net/http"
	"slices"

	"github.com/cmlabs-hris/training-backend-go/internal/handler/http/response"
	"github.com/cmlabs-hris/training-backend-go/internal/pkg/jwt"
)

// RequireManager requires manager or owner role
func RequireManager(next http.Handler) http.Handler {
	return RequireRole(jwt.RoleManager, jwt.RoleOwner)(next)
}

// RequireRole allows the request through only for the listed roles
func RequireRole(roles ...jwt.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !slices.Contains(roles, jwt.RoleFromContext(r.Context())) {
				response.HandleError(w, jwt.ErrRoleNotAllowed)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
