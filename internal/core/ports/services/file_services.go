package services

import (
	"context"

	"github.com/mwalto7/filevault/internal/core/domain"
)

// FileSvcFacade orchestrates per-user file storage. Every operation except
// Upload enforces ownership: a file that does not exist and a file owned by
// someone else both come back as apperrors.ErrNotFound.
type FileSvcFacade interface {
	Upload(ctx context.Context, ownerID string, upload domain.FileUpload) (*domain.File, error)
	List(ctx context.Context, ownerID string, page, perPage int) (*domain.FilePage, error)
	Show(ctx context.Context, ownerID string, fileID int64) (*domain.File, error)
	Download(ctx context.Context, ownerID string, fileID int64) (*domain.FileDownload, error)
	Update(ctx context.Context, ownerID string, fileID int64, upload domain.FileUpload) (*domain.File, error)
	Delete(ctx context.Context, ownerID string, fileID int64) error
}
