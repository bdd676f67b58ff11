package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-social-api/internal/config"
	"github.com/MKhiriev/go-social-api/internal/utils"
	"github.com/MKhiriev/go-social-api/models"
	"github.com/golang-jwt/jwt/v5"
)

// tokenClaims is the JWT payload shared by access and confirmation tokens.
// Subject holds the user's email.
type tokenClaims struct {
	jwt.RegisteredClaims
	Type models.TokenType `json:"token_type"`

	// expected is the type the decoding codec accepts. It is not serialized.
	expected models.TokenType
}

// Validate implements jwt.ClaimsValidator. The parser runs it together with
// the registered claim checks, so a wrong type is reported even when the
// token has also expired.
func (c tokenClaims) Validate() error {
	if c.Type != c.expected {
		return errTokenTypeMismatch
	}
	if c.Subject == "" {
		return errors.New("token has no subject")
	}
	return nil
}

type tokenCodec struct {
	tokenType models.TokenType
	signKey   string
	issuer    string
	ttl       time.Duration

	parser *jwt.Parser
	now    func() time.Time
}

// NewAccessTokenCodec returns the codec for bearer tokens issued at login.
func NewAccessTokenCodec(cfg config.App) TokenCodec {
	return newTokenCodec(models.AccessToken, cfg.TokenSignKey, cfg.TokenIssuer, cfg.AccessTokenDuration)
}

// NewConfirmationTokenCodec returns the codec for tokens mailed at
// registration. It signs with ConfirmationSignKey, or TokenSignKey when that
// is empty.
func NewConfirmationTokenCodec(cfg config.App) TokenCodec {
	key := cfg.ConfirmationSignKey
	if key == "" {
		key = cfg.TokenSignKey
	}
	return newTokenCodec(models.ConfirmationToken, key, cfg.TokenIssuer, cfg.ConfirmationTokenDuration)
}

func newTokenCodec(tokenType models.TokenType, signKey, issuer string, ttl time.Duration) *tokenCodec {
	return &tokenCodec{
		tokenType: tokenType,
		signKey:   signKey,
		issuer:    issuer,
		ttl:       ttl,
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithIssuer(issuer),
			jwt.WithExpirationRequired(),
		),
		now: time.Now,
	}
}

// Encode implements [TokenCodec].
func (c *tokenCodec) Encode(email string) (string, error) {
	now := c.now()
	claims := tokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    c.issuer,
			Subject:   email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
		},
		Type: c.tokenType,
	}

	token, err := utils.SignHS256(claims, c.signKey)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}
	return token, nil
}

// Decode implements [TokenCodec].
func (c *tokenCodec) Decode(token string) (string, error) {
	claims := &tokenClaims{expected: c.tokenType}
	_, err := c.parser.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return []byte(c.signKey), nil
	})
	if err != nil {
		return "", classifyTokenError(err)
	}
	return claims.Subject, nil
}

// classifyTokenError reduces a parser error to ErrTokenExpired or
// ErrTokenInvalid. Expiry is reported only when it is the sole failure.
func classifyTokenError(err error) error {
	if errors.Is(err, jwt.ErrTokenExpired) &&
		!errors.Is(err, errTokenTypeMismatch) &&
		!errors.Is(err, jwt.ErrTokenInvalidIssuer) &&
		!errors.Is(err, jwt.ErrTokenSignatureInvalid) {
		return ErrTokenExpired
	}
	return ErrTokenInvalid
}
