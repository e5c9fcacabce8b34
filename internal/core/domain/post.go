package domain

import "time"

// Post is a single published photo post. ImageURL is empty when the post
// was created without an upload. AuthorID is stored as an unchecked
// reference; the service layer verifies it on create, but reads must
// tolerate a dangling value.
type Post struct {
	ID        string    `json:"id"`
	AuthorID  string    `json:"author_id"`
	Caption   string    `json:"caption"`
	ImageURL  string    `json:"image_url"`
	CreatedAt time.Time `json:"created_at"`
}

// PostAuthor is the subset of User exposed when a post's author reference
// is expanded at read time.
type PostAuthor struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

// FeedPost is a post with its author reference expanded. Author is nil when
// the referenced user no longer exists.
type FeedPost struct {
	ID        string      `json:"id"`
	Author    *PostAuthor `json:"author"`
	Caption   string      `json:"caption"`
	ImageURL  string      `json:"image_url"`
	CreatedAt time.Time   `json:"created_at"`
}
