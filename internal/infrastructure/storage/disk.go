package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/snapgram/api/internal/api/metrics"
)

// DiskStore writes uploaded files to a local directory. Stored names take
// the form <upload-unix-millis>-<original-filename>; collisions within the
// same millisecond are not handled.
type DiskStore struct {
	dir       string
	urlPrefix string
	now       func() time.Time
}

// NewDiskStore creates the upload directory if needed and returns a store
// whose Save results are paths under urlPrefix (e.g. "/uploads").
func NewDiskStore(dir, urlPrefix string) (*DiskStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &DiskStore{dir: dir, urlPrefix: urlPrefix, now: time.Now}, nil
}

// Save writes a single uploaded file and returns the public path it will be
// served from. The original name is stripped of any directory components
// before use.
func (s *DiskStore) Save(ctx context.Context, originalName string, r io.Reader) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	name := fmt.Sprintf("%d-%s", s.now().UnixMilli(), filepath.Base(originalName))

	f, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("create upload: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		return "", fmt.Errorf("write upload: %w", err)
	}

	metrics.UploadsStoredTotal.Inc()
	return s.urlPrefix + "/" + name, nil
}

// Dir returns the directory files are stored in, for static serving.
func (s *DiskStore) Dir() string {
	return s.dir
}
