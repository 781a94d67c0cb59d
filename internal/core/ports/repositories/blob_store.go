package repositories

import (
	"context"
	"io"
)

// BlobStore is the backend holding raw file bytes. Keys are opaque handles
// generated by the store, distinct from user-visible filenames.
type BlobStore interface {
	// Save streams content into a new blob and returns its key. The key
	// preserves the original extension so downloads keep their type.
	Save(ctx context.Context, extension string, content io.Reader) (string, error)
	// Open returns the blob content for streaming. The caller must close
	// the reader. Returns apperrors.ErrNotFound when the blob is missing.
	Open(ctx context.Context, key string) (io.ReadCloser, error)
	// Exists reports whether a blob is present without opening it.
	Exists(ctx context.Context, key string) (bool, error)
	// Delete removes a blob. Callers treat failures as best-effort.
	Delete(ctx context.Context, key string) error
}
