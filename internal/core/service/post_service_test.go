package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/snapgram/api/internal/core/domain"
	"github.com/snapgram/api/internal/core/ports"
)

type stubPostRepo struct {
	posts   []domain.Post
	listErr error
}

func (r *stubPostRepo) Create(_ context.Context, post *domain.Post) (*domain.Post, error) {
	created := *post
	created.ID = fmt.Sprintf("post-%d", len(r.posts)+1)
	created.CreatedAt = time.Now().UTC()
	r.posts = append(r.posts, created)
	return &created, nil
}

func (r *stubPostRepo) ListWithAuthors(_ context.Context) ([]domain.FeedPost, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	out := make([]domain.FeedPost, 0, len(r.posts))
	for _, p := range r.posts {
		out = append(out, domain.FeedPost{
			ID:        p.ID,
			Caption:   p.Caption,
			ImageURL:  p.ImageURL,
			CreatedAt: p.CreatedAt,
			Author:    &domain.PostAuthor{ID: p.AuthorID, Username: "user-" + p.AuthorID},
		})
	}
	return out, nil
}

type stubFeedCache struct {
	cached      []domain.FeedPost
	hit         bool
	getErr      error
	sets        int
	invalidates int
}

func (c *stubFeedCache) Get(_ context.Context) ([]domain.FeedPost, bool, error) {
	if c.getErr != nil {
		return nil, false, c.getErr
	}
	return c.cached, c.hit, nil
}

func (c *stubFeedCache) Set(_ context.Context, posts []domain.FeedPost) error {
	c.cached = posts
	c.sets++
	return nil
}

func (c *stubFeedCache) Invalidate(_ context.Context) error {
	c.cached = nil
	c.hit = false
	c.invalidates++
	return nil
}

func newPostService(posts *stubPostRepo, users *stubUserRepo, cache *stubFeedCache) *PostService {
	return NewPostService(posts, users, cache, zerolog.Nop())
}

func TestPostService_CreatePost_Success(t *testing.T) {
	users := newStubUserRepo()
	alice, _ := users.Create(context.Background(), &domain.User{Username: "alice", PasswordHash: "x"})
	posts := &stubPostRepo{}
	cache := &stubFeedCache{}
	svc := newPostService(posts, users, cache)

	created, err := svc.CreatePost(context.Background(), ports.CreatePostInput{
		AuthorID: alice.ID,
		Caption:  "hello",
	})
	if err != nil {
		t.Fatalf("CreatePost returned error: %v", err)
	}
	if created.ID == "" {
		t.Fatalf("expected assigned id")
	}
	if created.ImageURL != "" {
		t.Fatalf("expected empty image url, got %q", created.ImageURL)
	}
	if created.CreatedAt.IsZero() {
		t.Fatalf("expected created_at to be set")
	}
	if cache.invalidates != 1 {
		t.Fatalf("expected one cache invalidation, got %d", cache.invalidates)
	}
}

func TestPostService_CreatePost_UnknownAuthor(t *testing.T) {
	users := newStubUserRepo()
	posts := &stubPostRepo{}
	svc := newPostService(posts, users, &stubFeedCache{})

	_, err := svc.CreatePost(context.Background(), ports.CreatePostInput{AuthorID: "missing"})
	if !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
	if len(posts.posts) != 0 {
		t.Fatalf("post should not be persisted for an unknown author")
	}
}

func TestPostService_ListPosts_CacheMiss(t *testing.T) {
	users := newStubUserRepo()
	alice, _ := users.Create(context.Background(), &domain.User{Username: "alice", PasswordHash: "x"})
	posts := &stubPostRepo{}
	cache := &stubFeedCache{}
	svc := newPostService(posts, users, cache)

	_, _ = svc.CreatePost(context.Background(), ports.CreatePostInput{AuthorID: alice.ID, Caption: "one"})
	_, _ = svc.CreatePost(context.Background(), ports.CreatePostInput{AuthorID: alice.ID, Caption: "two"})

	feed, err := svc.ListPosts(context.Background())
	if err != nil {
		t.Fatalf("ListPosts returned error: %v", err)
	}
	if len(feed) != 2 {
		t.Fatalf("expected 2 posts, got %d", len(feed))
	}
	if feed[0].Author == nil || feed[0].Author.ID != alice.ID {
		t.Fatalf("expected expanded author, got %+v", feed[0].Author)
	}
	if cache.sets != 1 {
		t.Fatalf("expected feed to be cached after a miss, got %d sets", cache.sets)
	}
}

func TestPostService_ListPosts_CacheHit(t *testing.T) {
	users := newStubUserRepo()
	posts := &stubPostRepo{listErr: errors.New("mongo down")}
	cache := &stubFeedCache{
		hit:    true,
		cached: []domain.FeedPost{{ID: "post-1", Caption: "cached"}},
	}
	svc := newPostService(posts, users, cache)

	feed, err := svc.ListPosts(context.Background())
	if err != nil {
		t.Fatalf("ListPosts returned error: %v", err)
	}
	if len(feed) != 1 || feed[0].Caption != "cached" {
		t.Fatalf("expected cached feed, got %+v", feed)
	}
}

func TestPostService_ListPosts_CacheErrorFallsThrough(t *testing.T) {
	users := newStubUserRepo()
	posts := &stubPostRepo{}
	cache := &stubFeedCache{getErr: errors.New("redis down")}
	svc := newPostService(posts, users, cache)

	feed, err := svc.ListPosts(context.Background())
	if err != nil {
		t.Fatalf("ListPosts returned error: %v", err)
	}
	if len(feed) != 0 {
		t.Fatalf("expected empty feed, got %d items", len(feed))
	}
}
