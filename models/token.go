package models

// TokenType discriminates the purpose a signed token was issued for.
// It is embedded into every token as the "token_type" claim so that a token
// minted for one purpose can never be accepted for another.
type TokenType string

const (
	// AccessToken marks a bearer credential issued at login.
	AccessToken TokenType = "access"

	// ConfirmationToken marks a short-lived token proving email ownership,
	// issued at registration.
	ConfirmationToken TokenType = "confirmation"
)

// String implements [fmt.Stringer].
func (t TokenType) String() string {
	return string(t)
}

// BearerTokenType is the value of "token_type" in login responses.
const BearerTokenType = "bearer"

// AccessTokenResponse is the body returned by a successful login.
type AccessTokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}
