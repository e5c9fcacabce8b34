package ports

import (
	"context"

	"github.com/snapgram/api/internal/core/domain"
)

type AuthService interface {
	Register(ctx context.Context, username, password string) (*domain.User, error)
	// Login verifies the credentials and returns a signed bearer token
	// carrying the user's id.
	Login(ctx context.Context, username, password string) (string, error)
}
