package models

// Post is a short text published by a user.
type Post struct {
	ID     int64  `json:"id"`
	Body   string `json:"body"`
	UserID int64  `json:"user_id"`
}

// TableName returns the name of the database table
// associated with the Post model.
func (p Post) TableName() string {
	return "posts"
}

// PostWithLikes is a post together with the number of likes it received.
type PostWithLikes struct {
	Post
	Likes int64 `json:"likes"`
}

// Comment is a reply attached to a post.
type Comment struct {
	ID     int64  `json:"id"`
	Body   string `json:"body"`
	PostID int64  `json:"post_id"`
	UserID int64  `json:"user_id"`
}

// TableName returns the name of the database table
// associated with the Comment model.
func (c Comment) TableName() string {
	return "comments"
}

// Like records that a user liked a post.
type Like struct {
	ID     int64 `json:"id"`
	PostID int64 `json:"post_id"`
	UserID int64 `json:"user_id"`
}

// TableName returns the name of the database table
// associated with the Like model.
func (l Like) TableName() string {
	return "likes"
}

// PostWithComments is the detailed view of a single post.
type PostWithComments struct {
	Post     PostWithLikes `json:"post"`
	Comments []Comment     `json:"comments"`
}

// PostSorting selects the order in which posts are listed.
type PostSorting string

const (
	// SortNew lists the most recently created posts first.
	SortNew PostSorting = "new"
	// SortOld lists the oldest posts first.
	SortOld PostSorting = "old"
	// SortMostLikes lists posts with the highest like count first.
	SortMostLikes PostSorting = "most_likes"
)

// IsValid reports whether s is one of the supported sort orders.
func (s PostSorting) IsValid() bool {
	switch s {
	case SortNew, SortOld, SortMostLikes:
		return true
	default:
		return false
	}
}
