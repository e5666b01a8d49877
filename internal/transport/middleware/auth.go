package middleware

import (
	"net/http"

	"github.com/pep299/learntube/internal/transport/response"
)

// Auth requires "Authorization: Bearer <token>". An empty token disables
// the check so the endpoint stays open by default.
func Auth(token string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if token == "" {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader != "Bearer "+token {
				response.WriteUnauthorized(w, "Unauthorized")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
