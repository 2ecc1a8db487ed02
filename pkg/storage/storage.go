package storage

import (
	"context"
	"io"
)

// Uploader stores a named blob and returns the URL it will be served from.
// Implementations exist for local disk and Cloudinary.
type Uploader interface {
	Upload(ctx context.Context, filename string, r io.Reader) (string, error)
}
