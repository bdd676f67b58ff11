package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-social-api/internal/crypto"
	"github.com/MKhiriev/go-social-api/internal/logger"
	"github.com/MKhiriev/go-social-api/internal/service"
	"github.com/MKhiriev/go-social-api/internal/utils"
	"github.com/MKhiriev/go-social-api/internal/validators"
)

var errorStatusMap = map[error]int{
	ErrInvalidJSON:                 http.StatusBadRequest,
	ErrInvalidGzipBody:             http.StatusBadRequest,
	ErrInvalidPostID:               http.StatusBadRequest,
	ErrNotAuthenticated:            http.StatusUnauthorized,
	ErrCouldNotValidateCredentials: http.StatusUnauthorized,
	validators.ErrInvalidInput:     http.StatusBadRequest,

	service.ErrEmailAlreadyExists:    http.StatusConflict,
	service.ErrInvalidCredentials:    http.StatusUnauthorized,
	service.ErrUserNotConfirmed:      http.StatusUnauthorized,
	service.ErrUserNotFound:          http.StatusNotFound,
	service.ErrTokenExpired:          http.StatusUnauthorized,
	service.ErrTokenInvalid:          http.StatusUnauthorized,
	service.ErrPostNotFound:          http.StatusNotFound,
	service.ErrTokenCreationFailed:   http.StatusInternalServerError,
	service.ErrVersionIsNotSpecified: http.StatusInternalServerError,

	crypto.ErrHashingFailed: http.StatusInternalServerError,

	context.DeadlineExceeded: http.StatusGatewayTimeout,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// detailFromError returns the client-facing message for err. Server errors
// get the generic status text; validation errors keep their field details;
// everything else is reduced to the matched sentinel's message.
func detailFromError(err error, status int) string {
	if status >= http.StatusInternalServerError {
		return http.StatusText(status)
	}
	if errors.Is(err, validators.ErrInvalidInput) {
		return err.Error()
	}
	for target := range errorStatusMap {
		if errors.Is(err, target) {
			return target.Error()
		}
	}
	return http.StatusText(status)
}

// writeError logs err and writes it as a {"detail"} body.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)
	log := logger.FromRequest(r)

	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	if status == http.StatusUnauthorized {
		w.Header().Set("WWW-Authenticate", "Bearer")
	}
	utils.WriteDetail(w, detailFromError(err, status), status)
}
