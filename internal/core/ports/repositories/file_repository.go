package repositories

import (
	"context"

	"github.com/mwalto7/filevault/internal/core/domain"
)

// FileRepository defines the persistence operations for file metadata.
type FileRepository interface {
	// SaveFile inserts a metadata row and returns the store-assigned id.
	SaveFile(ctx context.Context, file domain.File) (int64, error)
	// FindFileByID returns apperrors.ErrNotFound when no such row exists.
	// Ownership is not checked here; the service layer enforces it.
	FindFileByID(ctx context.Context, fileID int64) (*domain.File, error)
	// FindFilesByOwner returns one page of rows scoped to the owner in a
	// stable but unspecified order.
	FindFilesByOwner(ctx context.Context, ownerID string, limit, offset int) ([]domain.File, error)
	CountFilesByOwner(ctx context.Context, ownerID string) (int64, error)
	// UpdateFile overwrites the mutable columns of an existing row.
	UpdateFile(ctx context.Context, file domain.File) error
	// DeleteFile removes a row, returning apperrors.ErrNotFound when it is
	// already gone.
	DeleteFile(ctx context.Context, fileID int64) error
}
