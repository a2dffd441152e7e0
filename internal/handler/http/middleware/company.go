package middleware

import (
	"net/http"

	"github.com/cmlabs-hris/training-backend-go/internal/handler/http/response"
	"github.com/cmlabs-hris/training-backend-go/internal/pkg/jwt"
)

// RequireCompany rejects tokens without a company scope (users still onboarding)
func RequireCompany(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, err := jwt.CompanyIDFromContext(r.Context()); err != nil {
			response.HandleError(w, jwt.ErrCompanyIDRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}
