// Package service holds the business logic of go-social-api: the
// authentication flow (register, confirm, login, current-user resolution),
// posts with comments and likes, and build information.
package service

import (
	"context"

	"github.com/MKhiriev/go-social-api/models"
)

// AuthService registers users, confirms their email, logs them in and
// resolves the user behind an access token.
type AuthService interface {
	// Register creates an unconfirmed user and returns a confirmation token.
	// The token is also mailed to email as a confirmation link.
	Register(ctx context.Context, email, password string) (string, error)

	// Confirm marks the user named by a confirmation token as confirmed.
	// Confirming twice succeeds.
	Confirm(ctx context.Context, confirmationToken string) error

	// Login checks the credentials of a confirmed user and returns an access token.
	Login(ctx context.Context, email, password string) (string, error)

	// ResolveCurrentUser returns the user an access token was issued to.
	ResolveCurrentUser(ctx context.Context, accessToken string) (models.User, error)
}

// PostService manages posts, comments and likes.
type PostService interface {
	CreatePost(ctx context.Context, userID int64, body string) (models.Post, error)
	ListPosts(ctx context.Context, sorting models.PostSorting) ([]models.PostWithLikes, error)
	GetPostWithComments(ctx context.Context, postID int64) (models.PostWithComments, error)
	CreateComment(ctx context.Context, userID, postID int64, body string) (models.Comment, error)
	ListComments(ctx context.Context, postID int64) ([]models.Comment, error)
	LikePost(ctx context.Context, userID, postID int64) (models.Like, error)
}

// AppInfoService exposes build information.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// TokenCodec signs and verifies stateless tokens of a single type.
type TokenCodec interface {
	// Encode returns a signed token carrying email that expires after the
	// codec's lifetime.
	Encode(email string) (string, error)

	// Decode verifies token and returns the email it carries. It fails with
	// ErrTokenExpired or ErrTokenInvalid.
	Decode(token string) (string, error)
}

// MailQueue accepts mails for asynchronous delivery.
type MailQueue interface {
	Enqueue(mail models.Mail) error
}
