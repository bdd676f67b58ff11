package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-social-api/internal/logger"
	"github.com/MKhiriev/go-social-api/internal/store"
	"github.com/MKhiriev/go-social-api/models"
)

type postService struct {
	postRepository store.PostRepository

	logger *logger.Logger
}

// NewPostService constructs a PostService backed by postRepository.
func NewPostService(postRepository store.PostRepository, logger *logger.Logger) PostService {
	return &postService{postRepository: postRepository, logger: logger}
}

func (p *postService) CreatePost(ctx context.Context, userID int64, body string) (models.Post, error) {
	post, err := p.postRepository.CreatePost(ctx, models.Post{Body: body, UserID: userID})
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("user_id", userID).Msg("post creation failed")
		return models.Post{}, fmt.Errorf("post creation failed: %w", err)
	}
	return post, nil
}

// ListPosts returns every post with its like count. An empty sorting lists
// the newest posts first.
func (p *postService) ListPosts(ctx context.Context, sorting models.PostSorting) ([]models.PostWithLikes, error) {
	if sorting == "" {
		sorting = models.SortNew
	}

	posts, err := p.postRepository.ListPosts(ctx, sorting)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("sorting", string(sorting)).Msg("listing posts failed")
		return nil, fmt.Errorf("listing posts failed: %w", err)
	}
	return posts, nil
}

func (p *postService) GetPostWithComments(ctx context.Context, postID int64) (models.PostWithComments, error) {
	post, err := p.postRepository.GetPost(ctx, postID)
	if err != nil {
		return models.PostWithComments{}, p.mapPostError(ctx, err, postID, "post lookup failed")
	}

	comments, err := p.postRepository.ListComments(ctx, postID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("post_id", postID).Msg("listing comments failed")
		return models.PostWithComments{}, fmt.Errorf("listing comments failed: %w", err)
	}

	return models.PostWithComments{Post: post, Comments: comments}, nil
}

// CreateComment attaches a comment to postID. The post's existence is
// enforced by the foreign key, so a missing post fails with ErrPostNotFound.
func (p *postService) CreateComment(ctx context.Context, userID, postID int64, body string) (models.Comment, error) {
	comment, err := p.postRepository.CreateComment(ctx, models.Comment{Body: body, PostID: postID, UserID: userID})
	if err != nil {
		return models.Comment{}, p.mapPostError(ctx, err, postID, "comment creation failed")
	}
	return comment, nil
}

// ListComments returns the comments of postID; an unknown post has none.
func (p *postService) ListComments(ctx context.Context, postID int64) ([]models.Comment, error) {
	comments, err := p.postRepository.ListComments(ctx, postID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("post_id", postID).Msg("listing comments failed")
		return nil, fmt.Errorf("listing comments failed: %w", err)
	}
	return comments, nil
}

func (p *postService) LikePost(ctx context.Context, userID, postID int64) (models.Like, error) {
	like, err := p.postRepository.CreateLike(ctx, models.Like{PostID: postID, UserID: userID})
	if err != nil {
		return models.Like{}, p.mapPostError(ctx, err, postID, "like creation failed")
	}
	return like, nil
}

func (p *postService) mapPostError(ctx context.Context, err error, postID int64, msg string) error {
	if errors.Is(err, store.ErrPostNotFound) {
		return ErrPostNotFound
	}
	logger.FromContext(ctx).Err(err).Int64("post_id", postID).Msg(msg)
	return fmt.Errorf("%s: %w", msg, err)
}
