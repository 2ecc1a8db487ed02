package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"time"
)

// Local writes uploads to a directory on disk and returns a relative URL
// under urlPrefix. Filenames are prefixed with the upload timestamp so
// repeated uploads of the same file never collide.
type Local struct {
	dir       string
	urlPrefix string
}

// NewLocal creates a disk-backed uploader rooted at dir.
func NewLocal(dir, urlPrefix string) *Local {
	return &Local{
		dir:       dir,
		urlPrefix: urlPrefix,
	}
}

// Upload writes the blob to disk and returns its relative URL.
func (l *Local) Upload(_ context.Context, filename string, r io.Reader) (string, error) {
	if err := os.MkdirAll(l.dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create upload directory: %w", err)
	}

	name := fmt.Sprintf("%d-%s", time.Now().UnixMilli(), filepath.Base(filename))
	dst, err := os.Create(filepath.Join(l.dir, name))
	if err != nil {
		return "", fmt.Errorf("failed to create upload file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, r); err != nil {
		return "", fmt.Errorf("failed to write upload file: %w", err)
	}

	return path.Join(l.urlPrefix, name), nil
}
