package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"orders-demo/internal/domain"
)

// GetProfile handles GET /users/{userID}/profile.
func (h *Handler) GetProfile(w http.ResponseWriter, r *http.Request) {
	principal, err := principalFromRequest(r)
	if err != nil {
		h.writeError(w, err)
		return
	}

	profile, err := h.profiles.Get(r.Context(), principal, chi.URLParam(r, "userID"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

// UpdateProfile handles PUT /users/{userID}/profile with a partial update.
func (h *Handler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	principal, err := principalFromRequest(r)
	if err != nil {
		h.writeError(w, err)
		return
	}

	var req domain.UpdateProfileRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, err)
		return
	}

	profile, err := h.profiles.Update(r.Context(), principal, chi.URLParam(r, "userID"), req)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, profile)
}
