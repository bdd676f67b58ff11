package http

import (
	"net/http"

	"github.com/MKhiriev/go-social-api/internal/logger"
	"github.com/MKhiriev/go-social-api/internal/utils"
	"github.com/MKhiriev/go-social-api/models"
	"github.com/go-chi/chi/v5"
)

const (
	registeredDetail = "User created. Please confirm your email."
	confirmedDetail  = "User confirmed"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var in models.UserIn
	if err := h.decodeAndValidate(w, r, &in); err != nil {
		writeError(w, r, err)
		return
	}

	if _, err := h.services.AuthService.Register(r.Context(), in.Email, in.Password); err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Str("email", logger.MaskEmail(in.Email)).Msg("user registered")
	utils.WriteJSON(w, models.RegisterResponse{Detail: registeredDetail, Email: in.Email}, http.StatusCreated)
}

func (h *Handler) confirm(w http.ResponseWriter, r *http.Request) {
	token := chi.URLParam(r, "token")

	if err := h.services.AuthService.Confirm(r.Context(), token); err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteDetail(w, confirmedDetail, http.StatusOK)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var in models.UserIn
	if err := h.decodeAndValidate(w, r, &in); err != nil {
		writeError(w, r, err)
		return
	}

	token, err := h.services.AuthService.Login(r.Context(), in.Email, in.Password)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.AccessTokenResponse{AccessToken: token, TokenType: models.BearerTokenType}, http.StatusOK)
}
