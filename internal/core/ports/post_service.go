package ports

import (
	"context"

	"github.com/snapgram/api/internal/core/domain"
)

// CreatePostInput carries all data needed to publish a post. ImageURL is
// the stored path produced by the upload receiver, or empty when the
// request carried no file.
type CreatePostInput struct {
	AuthorID string
	Caption  string
	ImageURL string
}

// PostService defines use-case operations for posts.
type PostService interface {
	CreatePost(ctx context.Context, input CreatePostInput) (*domain.Post, error)
	ListPosts(ctx context.Context) ([]domain.FeedPost, error)
}
