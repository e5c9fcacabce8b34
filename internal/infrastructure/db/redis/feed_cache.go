package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/snapgram/api/internal/core/domain"
)

const feedKey = "feed:posts"
const feedTTL = 30 * time.Second

// FeedCache caches the expanded post feed as a JSON blob under a single
// key with a short TTL. Writes invalidate it; reads fall through to Mongo
// on a miss.
type FeedCache struct {
	client *redis.Client
}

// NewFeedCache creates a FeedCache wrapping the given Redis client.
func NewFeedCache(client *redis.Client) *FeedCache {
	return &FeedCache{client: client}
}

// Get returns the cached feed. The second return value is false on a miss.
func (c *FeedCache) Get(ctx context.Context) ([]domain.FeedPost, bool, error) {
	raw, err := c.client.Get(ctx, feedKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("feed cache get: %w", err)
	}

	var posts []domain.FeedPost
	if err := json.Unmarshal(raw, &posts); err != nil {
		return nil, false, fmt.Errorf("feed cache decode: %w", err)
	}
	return posts, true, nil
}

// Set stores the feed, replacing any previous value.
func (c *FeedCache) Set(ctx context.Context, posts []domain.FeedPost) error {
	raw, err := json.Marshal(posts)
	if err != nil {
		return fmt.Errorf("feed cache encode: %w", err)
	}
	return c.client.Set(ctx, feedKey, raw, feedTTL).Err()
}

// Invalidate drops the cached feed.
func (c *FeedCache) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, feedKey).Err()
}
