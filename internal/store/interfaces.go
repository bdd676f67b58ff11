package store

import (
	"context"

	"github.com/MKhiriev/go-social-api/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/repository_mock.go -package=mock

// UserRepository stores user accounts keyed by email.
type UserRepository interface {
	// CreateUser inserts an unconfirmed user in a single statement. A
	// duplicate email fails with [ErrEmailAlreadyExists].
	CreateUser(ctx context.Context, email, passwordHash string) (models.User, error)
	// FindUserByEmail returns the user with exactly this email, or
	// [ErrNoUserWasFound].
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	// SetConfirmed marks the user confirmed. Confirming a confirmed user
	// succeeds. A missing user fails with [ErrNoUserWasFound].
	SetConfirmed(ctx context.Context, email string) error
}

// PostRepository stores posts together with their comments and likes.
type PostRepository interface {
	CreatePost(ctx context.Context, post models.Post) (models.Post, error)
	ListPosts(ctx context.Context, sorting models.PostSorting) ([]models.PostWithLikes, error)
	GetPost(ctx context.Context, postID int64) (models.PostWithLikes, error)
	CreateComment(ctx context.Context, comment models.Comment) (models.Comment, error)
	ListComments(ctx context.Context, postID int64) ([]models.Comment, error)
	CreateLike(ctx context.Context, like models.Like) (models.Like, error)
}
