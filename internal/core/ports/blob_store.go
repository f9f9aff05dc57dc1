package ports

import (
	"context"
	"io"
)

// BlobStore stores uploaded binary files and returns retrievable URLs.
// Upload reads the object from r; the key is derived from prefix and
// filename by the implementation. Delete accepts the URL returned by a
// previous Upload.
type BlobStore interface {
	Upload(ctx context.Context, prefix, filename, contentType string, r io.Reader, size int64) (string, error)
	Delete(ctx context.Context, url string) error
}
