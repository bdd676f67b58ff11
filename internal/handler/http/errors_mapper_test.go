package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-social-api/internal/crypto"
	"github.com/MKhiriev/go-social-api/internal/service"
	"github.com/MKhiriev/go-social-api/internal/validators"
	"github.com/stretchr/testify/assert"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{ErrInvalidJSON, http.StatusBadRequest},
		{fmt.Errorf("%w: unexpected EOF", ErrInvalidJSON), http.StatusBadRequest},
		{ErrInvalidGzipBody, http.StatusBadRequest},
		{fmt.Errorf("%w: email: must be a valid email address", validators.ErrInvalidInput), http.StatusBadRequest},
		{ErrNotAuthenticated, http.StatusUnauthorized},
		{service.ErrInvalidCredentials, http.StatusUnauthorized},
		{service.ErrUserNotConfirmed, http.StatusUnauthorized},
		{service.ErrTokenExpired, http.StatusUnauthorized},
		{service.ErrTokenInvalid, http.StatusUnauthorized},
		{service.ErrEmailAlreadyExists, http.StatusConflict},
		{service.ErrUserNotFound, http.StatusNotFound},
		{service.ErrPostNotFound, http.StatusNotFound},
		{crypto.ErrHashingFailed, http.StatusInternalServerError},
		{fmt.Errorf("query: %w", context.DeadlineExceeded), http.StatusGatewayTimeout},
		{errors.New("anything else"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			assert.Equal(t, tt.want, statusFromError(tt.err))
		})
	}
}

func TestDetailFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "sentinel message replaces wrapped detail",
			err:  fmt.Errorf("%w: unexpected EOF at offset 3", ErrInvalidJSON),
			want: "Invalid JSON was passed",
		},
		{
			name: "validation detail is kept",
			err:  fmt.Errorf("%w: %w", validators.ErrInvalidInput, errors.New("email: cannot be blank.")),
			want: "invalid input: email: cannot be blank.",
		},
		{
			name: "server error detail is hidden",
			err:  fmt.Errorf("%w: bcrypt: cost out of range", crypto.ErrHashingFailed),
			want: http.StatusText(http.StatusInternalServerError),
		},
		{
			name: "unknown error",
			err:  errors.New("dial tcp 10.0.0.1:5432: connection refused"),
			want: http.StatusText(http.StatusInternalServerError),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, detailFromError(tt.err, statusFromError(tt.err)))
		})
	}
}

func TestWriteError_SetsAuthenticateHeaderOnlyOn401(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	rr := httptest.NewRecorder()
	writeError(rr, req, service.ErrTokenInvalid)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Equal(t, "Bearer", rr.Header().Get("WWW-Authenticate"))
	assert.JSONEq(t, `{"detail":"invalid token"}`, rr.Body.String())

	rr = httptest.NewRecorder()
	writeError(rr, req, service.ErrPostNotFound)
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Empty(t, rr.Header().Get("WWW-Authenticate"))
}
