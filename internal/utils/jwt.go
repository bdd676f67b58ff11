package utils

import (
	"errors"
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidAuthorizationHeader is returned by [ParseBearerToken] when the
// header is missing, uses another scheme, or carries no token.
var ErrInvalidAuthorizationHeader = errors.New("invalid authorization header")

// bearerScheme is the Authorization scheme accepted by [ParseBearerToken].
const bearerScheme = "bearer"

// ParseBearerToken extracts the token from an "Authorization: Bearer <token>"
// header value. The scheme is matched case-insensitively.
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Fields(authorizationHeader)
	if len(parts) != 2 || !strings.EqualFold(parts[0], bearerScheme) || parts[1] == "" {
		return "", ErrInvalidAuthorizationHeader
	}
	return parts[1], nil
}

// SignHS256 signs claims with HMAC-SHA256 using signKey and returns the
// compact serialized token.
//
// Example usage:
//
//	token, err := utils.SignHS256(claims, "secret")
func SignHS256(claims jwt.Claims, signKey string) (string, error) {
	if signKey == "" {
		return "", errors.New("empty sign key")
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return "", fmt.Errorf("error occurred during signing JWT token: %w", err)
	}

	return tokenString, nil
}
