// Package middleware provides HTTP middleware for bearer-token
// authentication, request IDs, and rate limiting.
package middleware

import (
	"encoding/json"
	"net/http"
	"strings"

	"orders-demo/internal/domain"
	"orders-demo/internal/service/auth"
)

// RequireAuth returns middleware that authenticates every request via a
// bearer token. On success the verified principal is stored in the request
// context; every failure — missing header, expired, malformed, or
// claims-incomplete token — yields 401 with a bearer challenge. The detail
// text distinguishes the failure kinds, the status never does.
func RequireAuth(authorizer *auth.RequestAuthorizer) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				writeUnauthenticated(w, "Not authenticated")
				return
			}

			principal, err := authorizer.AuthenticateRequest(token)
			if err != nil {
				writeUnauthenticated(w, err.Error())
				return
			}

			ctx := domain.WithPrincipal(r.Context(), principal)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func writeUnauthenticated(w http.ResponseWriter, detail string) {
	w.Header().Set("WWW-Authenticate", "Bearer")
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{"detail": detail})
}
