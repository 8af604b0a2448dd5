package router

import (
	"net/http"
	"slices"

	"github.com/jbeshir/idea-feed/internal/domain"
)

func requireAuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID := domain.UserIDFromContext(r.Context())
		if userID == 0 {
			logger := domain.LoggerFromContext(r.Context())
			logger.WarnContext(r.Context(), "attempt to use endpoint requiring auth without user ID")
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// requireAdminMiddleware restricts a handler to the configured admin user ids.
func requireAdminMiddleware(adminUserIDs []int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return requireAuthMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID := domain.UserIDFromContext(r.Context())
			if !slices.Contains(adminUserIDs, userID) {
				logger := domain.LoggerFromContext(r.Context())
				logger.WarnContext(r.Context(), "non-admin attempted admin endpoint")
				w.WriteHeader(http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r)
		}))
	}
}
