package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-social-api/internal/logger"
	"github.com/MKhiriev/go-social-api/internal/service"
	"github.com/MKhiriev/go-social-api/internal/utils"
	"github.com/rs/zerolog"
)

// auth is an HTTP middleware that resolves the current user from the bearer
// token in the "Authorization" header.
//
// On success the user is stored in the request context with [utils.WithUser]
// and the request logger gains a "user_id" field.
//
// The middleware rejects requests with HTTP 401 Unauthorized when:
//   - the header is absent or not of the form "Bearer <token>";
//   - the token has expired ("Token has expired");
//   - the token is invalid or names a user that no longer exists.
//
// Storage failures while loading the user are answered with 500.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, err := utils.ParseBearerToken(r.Header.Get("Authorization"))
		if err != nil {
			writeError(w, r, ErrNotAuthenticated)
			return
		}

		ctx := r.Context()
		user, err := h.services.AuthService.ResolveCurrentUser(ctx, token)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrTokenExpired):
				writeError(w, r, err)
			case errors.Is(err, service.ErrTokenInvalid), errors.Is(err, service.ErrUserNotFound):
				writeError(w, r, ErrCouldNotValidateCredentials)
			default:
				writeError(w, r, err)
			}
			return
		}

		log := logger.FromContext(ctx).GetChildLogger()
		log.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Int64("user_id", user.ID)
		})
		ctx = log.WithContext(utils.WithUser(ctx, user))

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
