package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/snapgram/api/internal/api/metrics"
	"github.com/snapgram/api/internal/core/domain"
	"github.com/snapgram/api/internal/core/ports"
)

// FeedCache abstracts the read-through cache (Redis) in front of the feed
// listing. All methods are best-effort: a cache failure never fails the
// request.
type FeedCache interface {
	Get(ctx context.Context) ([]domain.FeedPost, bool, error)
	Set(ctx context.Context, posts []domain.FeedPost) error
	Invalidate(ctx context.Context) error
}

type PostService struct {
	posts  ports.PostRepository
	users  ports.UserRepository
	cache  FeedCache
	logger zerolog.Logger
}

func NewPostService(posts ports.PostRepository, users ports.UserRepository, cache FeedCache, logger zerolog.Logger) *PostService {
	return &PostService{posts: posts, users: users, cache: cache, logger: logger}
}

// CreatePost verifies the author exists, persists the post, and invalidates
// the feed cache. The datastore itself does not enforce the author
// reference, so the check here is the only integrity guarantee.
func (s *PostService) CreatePost(ctx context.Context, input ports.CreatePostInput) (*domain.Post, error) {
	if _, err := s.users.FindByID(ctx, input.AuthorID); err != nil {
		return nil, fmt.Errorf("create post: %w", err)
	}

	post := &domain.Post{
		AuthorID: input.AuthorID,
		Caption:  input.Caption,
		ImageURL: input.ImageURL,
	}

	created, err := s.posts.Create(ctx, post)
	if err != nil {
		s.logger.Error().Err(err).Str("author_id", input.AuthorID).Msg("failed to create post")
		return nil, err
	}

	if err := s.cache.Invalidate(ctx); err != nil {
		s.logger.Warn().Err(err).Msg("failed to invalidate feed cache")
	}

	imageLabel := "no_image"
	if created.ImageURL != "" {
		imageLabel = "with_image"
	}
	metrics.PostsCreatedTotal.WithLabelValues(imageLabel).Inc()

	s.logger.Info().Str("post_id", created.ID).Str("author_id", created.AuthorID).Msg("post created")
	return created, nil
}

// ListPosts returns all posts with authors expanded, served from the feed
// cache when fresh.
func (s *PostService) ListPosts(ctx context.Context) ([]domain.FeedPost, error) {
	cached, ok, err := s.cache.Get(ctx)
	if err != nil {
		s.logger.Warn().Err(err).Msg("feed cache read failed")
	} else if ok {
		metrics.FeedCacheTotal.WithLabelValues("hit").Inc()
		return cached, nil
	}
	metrics.FeedCacheTotal.WithLabelValues("miss").Inc()

	posts, err := s.posts.ListWithAuthors(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list posts")
		return nil, err
	}

	if err := s.cache.Set(ctx, posts); err != nil {
		s.logger.Warn().Err(err).Msg("feed cache write failed")
	}

	return posts, nil
}
