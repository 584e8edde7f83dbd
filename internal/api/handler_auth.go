package api

import (
	"net/http"

	"orders-demo/internal/service/auth"
)

// Token handles POST /auth/token: it exchanges a password or
// client_credentials grant for a bearer token.
func (h *Handler) Token(w http.ResponseWriter, r *http.Request) {
	var req auth.GrantRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, err)
		return
	}

	resp, err := h.auth.IssueToken(req)
	if err != nil {
		h.logger.Info("token issuance rejected",
			"grant_type", req.GrantType, "error", err)
		h.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}
