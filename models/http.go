package models

// UserIn carries credentials for registration and login.
type UserIn struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// PostIn is the request body for creating a post.
type PostIn struct {
	Body string `json:"body"`
}

// CommentIn is the request body for commenting on a post.
type CommentIn struct {
	Body   string `json:"body"`
	PostID int64  `json:"post_id"`
}

// LikeIn is the request body for liking a post.
type LikeIn struct {
	PostID int64 `json:"post_id"`
}
