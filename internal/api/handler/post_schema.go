package handler

import "time"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// messageResponse is the envelope for confirmation-only responses.
type messageResponse struct {
	Message string `json:"message"`
}

// --- Request / Response types ---

// createPostRequest carries the non-file fields of the multipart form. The
// image itself is read separately via the multipart API.
type createPostRequest struct {
	UserID  string `form:"userId" validate:"required"`
	Caption string `form:"caption"`
}

type postResponse struct {
	ID        string    `json:"id"`
	AuthorID  string    `json:"authorId"`
	Caption   string    `json:"caption"`
	ImageURL  string    `json:"imageUrl"`
	CreatedAt time.Time `json:"createdAt"`
}

// Response-only types owned by the transport layer.
// These are intentionally separate from domain types so the JSON contract
// is not coupled to internal changes.

type postAuthorResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

// feedPostResponse is a single feed item. AuthorID holds the expanded
// author reference, or null when the referenced user no longer exists.
type feedPostResponse struct {
	ID        string              `json:"id"`
	AuthorID  *postAuthorResponse `json:"authorId"`
	Caption   string              `json:"caption"`
	ImageURL  string              `json:"imageUrl"`
	CreatedAt time.Time           `json:"createdAt"`
}
