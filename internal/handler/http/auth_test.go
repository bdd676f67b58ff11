// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/MKhiriev/go-social-api/internal/crypto"
	"github.com/MKhiriev/go-social-api/internal/service"
	"github.com/MKhiriev/go-social-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister(t *testing.T) {
	tests := []struct {
		name         string
		body         string
		registerFn   func(ctx context.Context, email, password string) (string, error)
		wantStatus   int
		wantDetail   string
		wantContains string
	}{
		{
			name: "created",
			body: `{"email":"a@b.com","password":"pw1"}`,
			registerFn: func(_ context.Context, email, password string) (string, error) {
				if email != "a@b.com" || password != "pw1" {
					return "", fmt.Errorf("unexpected credentials %q/%q", email, password)
				}
				return "confirmation-token", nil
			},
			wantStatus: http.StatusCreated,
			wantDetail: registeredDetail,
		},
		{
			name:       "malformed json",
			body:       `{"email":`,
			wantStatus: http.StatusBadRequest,
			wantDetail: ErrInvalidJSON.Error(),
		},
		{
			name:         "invalid email",
			body:         `{"email":"not-an-email","password":"pw1"}`,
			wantStatus:   http.StatusBadRequest,
			wantContains: "email",
		},
		{
			name:         "missing password",
			body:         `{"email":"a@b.com"}`,
			wantStatus:   http.StatusBadRequest,
			wantContains: "password",
		},
		{
			name: "email already exists",
			body: `{"email":"a@b.com","password":"pw1"}`,
			registerFn: func(context.Context, string, string) (string, error) {
				return "", fmt.Errorf("create user: %w", service.ErrEmailAlreadyExists)
			},
			wantStatus: http.StatusConflict,
			wantDetail: service.ErrEmailAlreadyExists.Error(),
		},
		{
			name: "hashing failure is not leaked",
			body: `{"email":"a@b.com","password":"pw1"}`,
			registerFn: func(context.Context, string, string) (string, error) {
				return "", fmt.Errorf("%w: entropy source unavailable", crypto.ErrHashingFailed)
			},
			wantStatus: http.StatusInternalServerError,
			wantDetail: http.StatusText(http.StatusInternalServerError),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandler(t, &mockAuthService{registerFn: tt.registerFn}, nil)

			rr := serve(t, h, http.MethodPost, "/register", tt.body, nil)

			assert.Equal(t, tt.wantStatus, rr.Code, rr.Body.String())
			detail := decodeDetail(t, rr)
			if tt.wantDetail != "" {
				assert.Equal(t, tt.wantDetail, detail)
			}
			if tt.wantContains != "" {
				assert.Contains(t, detail, tt.wantContains)
			}
		})
	}
}

func TestRegister_EchoesEmailWithoutToken(t *testing.T) {
	h := newTestHandler(t, &mockAuthService{
		registerFn: func(context.Context, string, string) (string, error) {
			return "confirmation-token", nil
		},
	}, nil)

	rr := serve(t, h, http.MethodPost, "/register", `{"email":"a@b.com","password":"pw1"}`, nil)

	require.Equal(t, http.StatusCreated, rr.Code)
	var resp models.RegisterResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "a@b.com", resp.Email)
	assert.NotContains(t, rr.Body.String(), "confirmation-token")
}

func TestConfirm(t *testing.T) {
	tests := []struct {
		name       string
		confirmErr error
		wantStatus int
		wantDetail string
	}{
		{name: "confirmed", wantStatus: http.StatusOK, wantDetail: confirmedDetail},
		{name: "expired", confirmErr: service.ErrTokenExpired, wantStatus: http.StatusUnauthorized, wantDetail: service.ErrTokenExpired.Error()},
		{name: "invalid", confirmErr: service.ErrTokenInvalid, wantStatus: http.StatusUnauthorized, wantDetail: service.ErrTokenInvalid.Error()},
		{name: "user gone", confirmErr: service.ErrUserNotFound, wantStatus: http.StatusNotFound, wantDetail: service.ErrUserNotFound.Error()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotToken string
			h := newTestHandler(t, &mockAuthService{
				confirmFn: func(_ context.Context, token string) error {
					gotToken = token
					return tt.confirmErr
				},
			}, nil)

			rr := serve(t, h, http.MethodGet, "/confirm/abc.def.ghi", "", nil)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, "abc.def.ghi", gotToken)
			assert.Equal(t, tt.wantDetail, decodeDetail(t, rr))
			if tt.wantStatus == http.StatusUnauthorized {
				assert.Equal(t, "Bearer", rr.Header().Get("WWW-Authenticate"))
			}
		})
	}
}

func TestLogin(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		loginFn    func(ctx context.Context, email, password string) (string, error)
		wantStatus int
		wantDetail string
	}{
		{
			name:       "malformed json",
			body:       `[]`,
			wantStatus: http.StatusBadRequest,
			wantDetail: ErrInvalidJSON.Error(),
		},
		{
			name: "invalid credentials",
			body: `{"email":"nobody@x.com","password":"whatever"}`,
			loginFn: func(context.Context, string, string) (string, error) {
				return "", service.ErrInvalidCredentials
			},
			wantStatus: http.StatusUnauthorized,
			wantDetail: service.ErrInvalidCredentials.Error(),
		},
		{
			name: "not confirmed",
			body: `{"email":"a@b.com","password":"pw1"}`,
			loginFn: func(context.Context, string, string) (string, error) {
				return "", service.ErrUserNotConfirmed
			},
			wantStatus: http.StatusUnauthorized,
			wantDetail: service.ErrUserNotConfirmed.Error(),
		},
		{
			name: "token creation failure",
			body: `{"email":"a@b.com","password":"pw1"}`,
			loginFn: func(context.Context, string, string) (string, error) {
				return "", service.ErrTokenCreationFailed
			},
			wantStatus: http.StatusInternalServerError,
			wantDetail: http.StatusText(http.StatusInternalServerError),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandler(t, &mockAuthService{loginFn: tt.loginFn}, nil)

			rr := serve(t, h, http.MethodPost, "/token", tt.body, nil)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantDetail, decodeDetail(t, rr))
		})
	}
}

func TestLogin_ReturnsBearerToken(t *testing.T) {
	h := newTestHandler(t, &mockAuthService{
		loginFn: func(_ context.Context, email, password string) (string, error) {
			assert.Equal(t, "a@b.com", email)
			assert.Equal(t, "pw1", password)
			return "access-token", nil
		},
	}, nil)

	rr := serve(t, h, http.MethodPost, "/token", `{"email":"a@b.com","password":"pw1"}`, nil)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var resp models.AccessTokenResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, models.AccessTokenResponse{AccessToken: "access-token", TokenType: "bearer"}, resp)
}

func TestLogin_RejectsOversizedBody(t *testing.T) {
	h := newTestHandler(t, nil, nil)

	body := `{"email":"a@b.com","password":"` + strings.Repeat("a", maxBodyBytes) + `"}`

	rr := serve(t, h, http.MethodPost, "/token", body, nil)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, ErrInvalidJSON.Error(), decodeDetail(t, rr))
}
