package ports

import (
	"context"

	"github.com/snapgram/api/internal/core/domain"
)

// PostRepository defines persistence operations for posts.
type PostRepository interface {
	Create(ctx context.Context, post *domain.Post) (*domain.Post, error)
	// ListWithAuthors returns all posts in store-default order with each
	// author reference expanded to {id, username}. A post whose author no
	// longer exists is returned with a nil Author.
	ListWithAuthors(ctx context.Context) ([]domain.FeedPost, error)
}
