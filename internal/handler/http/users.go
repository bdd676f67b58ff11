package http

import (
	"net/http"

	"github.com/MKhiriev/go-social-api/internal/utils"
)

// currentUser returns the user resolved by the auth middleware.
func (h *Handler) currentUser(w http.ResponseWriter, r *http.Request) {
	user, ok := utils.GetUserFromContext(r.Context())
	if !ok {
		writeError(w, r, ErrNotAuthenticated)
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}
