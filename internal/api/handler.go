// Package api provides the HTTP handlers for the orders API.
package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"orders-demo/internal/domain"
	"orders-demo/internal/service/auth"
	"orders-demo/internal/service/orders"
	"orders-demo/internal/service/profiles"
)

// Handler holds the services behind the HTTP surface.
type Handler struct {
	auth     *auth.Authenticator
	orders   *orders.Service
	profiles *profiles.Service
	logger   *slog.Logger
}

// NewHandler creates a Handler with all required service dependencies.
func NewHandler(authn *auth.Authenticator, orderSvc *orders.Service, profileSvc *profiles.Service, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{auth: authn, orders: orderSvc, profiles: profileSvc, logger: logger}
}

// Health responds to liveness probes.
func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "orders-api",
	})
}

// principalFromRequest extracts the authenticated principal placed in the
// context by the auth middleware.
func principalFromRequest(r *http.Request) (domain.Principal, error) {
	p, ok := domain.PrincipalFromContext(r.Context())
	if !ok {
		return domain.Principal{}, domain.ErrUnauthenticated("Not authenticated")
	}
	return p, nil
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError renders a domain error as a {"detail": ...} response with the
// mapped status. Unknown errors become an opaque 500.
func (h *Handler) writeError(w http.ResponseWriter, err error) {
	status := httpStatusFromDomainError(err)
	detail := err.Error()
	if status == http.StatusInternalServerError {
		h.logger.Error("internal error", "error", err)
		detail = "Internal server error"
	}
	if needsBearerChallenge(err) {
		w.Header().Set("WWW-Authenticate", "Bearer")
	}
	writeJSON(w, status, map[string]string{"detail": detail})
}

// decodeJSON parses a request body, reporting failures as validation errors.
func decodeJSON(r *http.Request, v interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return domain.ErrValidation("Invalid request body")
	}
	return nil
}
