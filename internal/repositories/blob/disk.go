// Package blob contains the blob-store implementations backing raw file
// content. Keys are random ids with the original extension preserved, so a
// stored blob never collides with or reveals a user-visible filename.
package blob

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/mwalto7/filevault/internal/apperrors"
	portsrepo "github.com/mwalto7/filevault/internal/core/ports/repositories"
)

// DiskStore keeps one file per blob under a root directory.
type DiskStore struct {
	root string
}

// NewDiskStore creates the root directory if missing and returns the store.
func NewDiskStore(root string) (*DiskStore, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory %s: %w", root, err)
	}
	return &DiskStore{root: root}, nil
}

// Ensure DiskStore implements portsrepo.BlobStore
var _ portsrepo.BlobStore = (*DiskStore)(nil)

func (s *DiskStore) Save(ctx context.Context, extension string, content io.Reader) (string, error) {
	key := uuid.NewString()
	if extension != "" {
		key += "." + extension
	}

	path := filepath.Join(s.root, key)
	dst, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create blob file: %w", err)
	}

	if _, err := io.Copy(dst, content); err != nil {
		dst.Close()
		os.Remove(path)
		return "", fmt.Errorf("failed to write blob content: %w", err)
	}
	if err := dst.Close(); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("failed to close blob file: %w", err)
	}

	return key, nil
}

func (s *DiskStore) Open(ctx context.Context, key string) (io.ReadCloser, error) {
	f, err := os.Open(filepath.Join(s.root, key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to open blob %s: %w", key, err)
	}
	return f, nil
}

func (s *DiskStore) Exists(ctx context.Context, key string) (bool, error) {
	_, err := os.Stat(filepath.Join(s.root, key))
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to stat blob %s: %w", key, err)
	}
	return true, nil
}

func (s *DiskStore) Delete(ctx context.Context, key string) error {
	err := os.Remove(filepath.Join(s.root, key))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete blob %s: %w", key, err)
	}
	return nil
}
