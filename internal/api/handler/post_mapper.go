package handler

import (
	"github.com/snapgram/api/internal/core/domain"
)

// --- Service result → HTTP response ---

func toPostResponse(p *domain.Post) postResponse {
	return postResponse{
		ID:        p.ID,
		AuthorID:  p.AuthorID,
		Caption:   p.Caption,
		ImageURL:  p.ImageURL,
		CreatedAt: p.CreatedAt.UTC(),
	}
}

func toFeedResponse(posts []domain.FeedPost) []feedPostResponse {
	out := make([]feedPostResponse, len(posts))
	for i, p := range posts {
		item := feedPostResponse{
			ID:        p.ID,
			Caption:   p.Caption,
			ImageURL:  p.ImageURL,
			CreatedAt: p.CreatedAt.UTC(),
		}
		if p.Author != nil {
			item.AuthorID = &postAuthorResponse{
				ID:       p.Author.ID,
				Username: p.Author.Username,
			}
		}
		out[i] = item
	}
	return out
}
