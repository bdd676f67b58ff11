package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-social-api/internal/logger"
	"github.com/MKhiriev/go-social-api/models"
	sq "github.com/Masterminds/squirrel"
)

// postRepository is the SQL implementation of [PostRepository] over the
// "posts", "comments" and "likes" tables.
type postRepository struct {
	*DB
	logger *logger.Logger
}

// NewPostRepository constructs a [PostRepository] backed by db.
func NewPostRepository(db *DB, logger *logger.Logger) PostRepository {
	logger.Debug().Msg("creating post repository")
	return &postRepository{
		DB:     db,
		logger: logger,
	}
}

// CreatePost inserts a post and returns it with its assigned ID.
func (p *postRepository) CreatePost(ctx context.Context, post models.Post) (models.Post, error) {
	log := logger.FromContext(ctx)

	query, args, err := p.builder().
		Insert("posts").
		Columns("body", "user_id").
		Values(post.Body, post.UserID).
		Suffix("RETURNING id, body, user_id").
		ToSql()
	if err != nil {
		return models.Post{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var created models.Post
	if err = p.QueryRowContext(ctx, query, args...).Scan(&created.ID, &created.Body, &created.UserID); err != nil {
		log.Err(err).Str("func", "postRepository.CreatePost").Int64("user_id", post.UserID).Msg("error inserting post")
		return models.Post{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return created, nil
}

// postsWithLikes selects posts with their like counts in a single grouped
// aggregate. Posts without likes count zero.
func (p *postRepository) postsWithLikes() sq.SelectBuilder {
	return p.builder().
		Select("posts.id", "posts.body", "posts.user_id", "COUNT(likes.id) AS likes").
		From("posts").
		LeftJoin("likes ON likes.post_id = posts.id").
		GroupBy("posts.id", "posts.body", "posts.user_id")
}

// orderBy returns the ORDER BY clauses of a sort order. Unknown orders fall
// back to [models.SortNew].
func orderBy(sorting models.PostSorting) []string {
	switch sorting {
	case models.SortOld:
		return []string{"posts.id ASC"}
	case models.SortMostLikes:
		return []string{"likes DESC", "posts.id DESC"}
	default:
		return []string{"posts.id DESC"}
	}
}

// ListPosts returns every post with its like count in the requested order.
func (p *postRepository) ListPosts(ctx context.Context, sorting models.PostSorting) ([]models.PostWithLikes, error) {
	log := logger.FromContext(ctx)

	query, args, err := p.postsWithLikes().OrderBy(orderBy(sorting)...).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var posts []models.PostWithLikes
	err = p.withRetry(ctx, func(ctx context.Context) error {
		posts, err = p.queryPosts(ctx, query, args...)
		return err
	})
	if err != nil {
		log.Err(err).Str("func", "postRepository.ListPosts").Str("sorting", string(sorting)).Msg("error listing posts")
		return nil, err
	}

	return posts, nil
}

func (p *postRepository) queryPosts(ctx context.Context, query string, args ...any) ([]models.PostWithLikes, error) {
	rows, err := p.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	posts := make([]models.PostWithLikes, 0)
	for rows.Next() {
		var post models.PostWithLikes
		if err = rows.Scan(&post.ID, &post.Body, &post.UserID, &post.Likes); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		posts = append(posts, post)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return posts, nil
}

// GetPost returns a single post with its like count, or [ErrPostNotFound].
func (p *postRepository) GetPost(ctx context.Context, postID int64) (models.PostWithLikes, error) {
	log := logger.FromContext(ctx)

	query, args, err := p.postsWithLikes().Where("posts.id = ?", postID).ToSql()
	if err != nil {
		return models.PostWithLikes{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var post models.PostWithLikes
	err = p.withRetry(ctx, func(ctx context.Context) error {
		return p.QueryRowContext(ctx, query, args...).Scan(&post.ID, &post.Body, &post.UserID, &post.Likes)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return models.PostWithLikes{}, ErrPostNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "postRepository.GetPost").Int64("post_id", postID).Msg("error getting post")
		return models.PostWithLikes{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return post, nil
}

// CreateComment inserts a comment. The post's existence is checked by the
// foreign key in the same statement: a missing post yields [ErrPostNotFound].
func (p *postRepository) CreateComment(ctx context.Context, comment models.Comment) (models.Comment, error) {
	log := logger.FromContext(ctx)

	query, args, err := p.builder().
		Insert("comments").
		Columns("body", "post_id", "user_id").
		Values(comment.Body, comment.PostID, comment.UserID).
		Suffix("RETURNING id, body, post_id, user_id").
		ToSql()
	if err != nil {
		return models.Comment{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var created models.Comment
	err = p.QueryRowContext(ctx, query, args...).Scan(&created.ID, &created.Body, &created.PostID, &created.UserID)
	if err != nil {
		if violatedConstraint(err) == foreignKeyConstraint {
			return models.Comment{}, ErrPostNotFound
		}
		log.Err(err).Str("func", "postRepository.CreateComment").Int64("post_id", comment.PostID).Msg("error inserting comment")
		return models.Comment{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return created, nil
}

// ListComments returns the comments of a post in creation order.
func (p *postRepository) ListComments(ctx context.Context, postID int64) ([]models.Comment, error) {
	log := logger.FromContext(ctx)

	query, args, err := p.builder().
		Select("id", "body", "post_id", "user_id").
		From("comments").
		Where("post_id = ?", postID).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var comments []models.Comment
	err = p.withRetry(ctx, func(ctx context.Context) error {
		comments, err = p.queryComments(ctx, query, args...)
		return err
	})
	if err != nil {
		log.Err(err).Str("func", "postRepository.ListComments").Int64("post_id", postID).Msg("error listing comments")
		return nil, err
	}

	return comments, nil
}

func (p *postRepository) queryComments(ctx context.Context, query string, args ...any) ([]models.Comment, error) {
	rows, err := p.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	comments := make([]models.Comment, 0)
	for rows.Next() {
		var comment models.Comment
		if err = rows.Scan(&comment.ID, &comment.Body, &comment.PostID, &comment.UserID); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		comments = append(comments, comment)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return comments, nil
}

// CreateLike records a like. A missing post yields [ErrPostNotFound].
func (p *postRepository) CreateLike(ctx context.Context, like models.Like) (models.Like, error) {
	log := logger.FromContext(ctx)

	query, args, err := p.builder().
		Insert("likes").
		Columns("post_id", "user_id").
		Values(like.PostID, like.UserID).
		Suffix("RETURNING id, post_id, user_id").
		ToSql()
	if err != nil {
		return models.Like{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var created models.Like
	err = p.QueryRowContext(ctx, query, args...).Scan(&created.ID, &created.PostID, &created.UserID)
	if err != nil {
		if violatedConstraint(err) == foreignKeyConstraint {
			return models.Like{}, ErrPostNotFound
		}
		log.Err(err).Str("func", "postRepository.CreateLike").Int64("post_id", like.PostID).Msg("error inserting like")
		return models.Like{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return created, nil
}
