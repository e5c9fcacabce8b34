package ports

import (
	"context"
	"io"
)

// FileStore receives a single uploaded file and persists it under a
// generated unique name, returning the public path it is served from.
type FileStore interface {
	Save(ctx context.Context, originalName string, r io.Reader) (string, error)
}
