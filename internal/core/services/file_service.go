package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/mwalto7/filevault/internal/apperrors"
	"github.com/mwalto7/filevault/internal/core/domain"
	portsrepo "github.com/mwalto7/filevault/internal/core/ports/repositories"
	portssvc "github.com/mwalto7/filevault/internal/core/ports/services"
	"github.com/mwalto7/filevault/internal/middleware"
)

const defaultPerPage = 10

// fileService implements the FileSvcFacade over the metadata store and the
// blob backend.
type fileService struct {
	fileRepo  portsrepo.FileRepository
	blobStore portsrepo.BlobStore
	audit     *AuditRecorder
}

// NewFileService creates a new instance of fileService.
func NewFileService(fileRepo portsrepo.FileRepository, blobStore portsrepo.BlobStore, audit *AuditRecorder) portssvc.FileSvcFacade {
	return &fileService{
		fileRepo:  fileRepo,
		blobStore: blobStore,
		audit:     audit,
	}
}

// findOwned resolves a file by id and enforces ownership. A missing row
// and a row owned by another user are both ErrNotFound, so callers cannot
// probe for the existence of other users' files.
func (s *fileService) findOwned(ctx context.Context, ownerID string, fileID int64) (*domain.File, error) {
	file, err := s.fileRepo.FindFileByID(ctx, fileID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to resolve file %d: %w", fileID, err)
	}
	if file.OwnerID != ownerID {
		return nil, apperrors.ErrNotFound
	}
	return file, nil
}

// deleteBlob removes a blob best-effort: failures are logged and ignored
// so the metadata operation proceeds regardless.
func (s *fileService) deleteBlob(ctx context.Context, key string) {
	if err := s.blobStore.Delete(ctx, key); err != nil {
		middleware.GetLoggerFromCtx(ctx).Warn("Failed to delete blob",
			slog.String("key", key),
			slog.String("error", err.Error()),
		)
	}
}

// extensionOf returns the extension of a filename without the leading dot.
func extensionOf(name string) string {
	return strings.TrimPrefix(filepath.Ext(name), ".")
}

func (s *fileService) Upload(ctx context.Context, ownerID string, upload domain.FileUpload) (*domain.File, error) {
	if upload.Content == nil {
		return nil, apperrors.ErrValidation
	}

	ext := extensionOf(upload.Name)
	key, err := s.blobStore.Save(ctx, ext, upload.Content)
	if err != nil {
		return nil, fmt.Errorf("failed to store blob: %w", err)
	}

	file := domain.File{
		OwnerID:     ownerID,
		Name:        upload.Name,
		Extension:   ext,
		MimeType:    upload.MimeType,
		Size:        upload.Size,
		StoragePath: key,
		UploadedAt:  time.Now(),
	}

	fileID, err := s.fileRepo.SaveFile(ctx, file)
	if err != nil {
		s.deleteBlob(ctx, key)
		return nil, fmt.Errorf("failed to save file metadata: %w", err)
	}
	file.FileID = fileID

	s.audit.Record(ctx, ownerID, domain.AuditFileUpload, nil, file)

	return &file, nil
}

func (s *fileService) List(ctx context.Context, ownerID string, page, perPage int) (*domain.FilePage, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = defaultPerPage
	}

	files, err := s.fileRepo.FindFilesByOwner(ctx, ownerID, perPage, (page-1)*perPage)
	if err != nil {
		return nil, fmt.Errorf("failed to list files: %w", err)
	}

	total, err := s.fileRepo.CountFilesByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to count files: %w", err)
	}

	lastPage := int((total + int64(perPage) - 1) / int64(perPage))

	return &domain.FilePage{
		Files: files,
		Meta: domain.PageMeta{
			CurrentPage: page,
			PerPage:     perPage,
			Total:       total,
			LastPage:    lastPage,
		},
	}, nil
}

func (s *fileService) Show(ctx context.Context, ownerID string, fileID int64) (*domain.File, error) {
	return s.findOwned(ctx, ownerID, fileID)
}

func (s *fileService) Download(ctx context.Context, ownerID string, fileID int64) (*domain.FileDownload, error) {
	file, err := s.findOwned(ctx, ownerID, fileID)
	if err != nil {
		return nil, err
	}

	// Detect a missing blob explicitly before streaming: metadata may
	// outlive the blob.
	exists, err := s.blobStore.Exists(ctx, file.StoragePath)
	if err != nil {
		return nil, fmt.Errorf("failed to check blob existence: %w", err)
	}
	if !exists {
		return nil, apperrors.ErrNotFound
	}

	content, err := s.blobStore.Open(ctx, file.StoragePath)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to open blob: %w", err)
	}

	s.audit.Record(ctx, ownerID, domain.AuditFileDownload, nil, map[string]any{"id": file.FileID, "name": file.Name})

	return &domain.FileDownload{File: *file, Content: content}, nil
}

func (s *fileService) Update(ctx context.Context, ownerID string, fileID int64, upload domain.FileUpload) (*domain.File, error) {
	oldFile, err := s.findOwned(ctx, ownerID, fileID)
	if err != nil {
		return nil, err
	}
	if upload.Content == nil {
		return nil, apperrors.ErrValidation
	}

	ext := extensionOf(upload.Name)
	key, err := s.blobStore.Save(ctx, ext, upload.Content)
	if err != nil {
		return nil, fmt.Errorf("failed to store blob: %w", err)
	}

	s.deleteBlob(ctx, oldFile.StoragePath)

	newFile := domain.File{
		FileID:      oldFile.FileID,
		OwnerID:     ownerID,
		Name:        upload.Name,
		Extension:   ext,
		MimeType:    upload.MimeType,
		Size:        upload.Size,
		StoragePath: key,
		UploadedAt:  time.Now(),
	}
	if err := s.fileRepo.UpdateFile(ctx, newFile); err != nil {
		return nil, fmt.Errorf("failed to update file metadata: %w", err)
	}

	s.audit.Record(ctx, ownerID, domain.AuditFileUpdate, oldFile, newFile)

	return &newFile, nil
}

func (s *fileService) Delete(ctx context.Context, ownerID string, fileID int64) error {
	file, err := s.findOwned(ctx, ownerID, fileID)
	if err != nil {
		return err
	}

	s.deleteBlob(ctx, file.StoragePath)

	if err := s.fileRepo.DeleteFile(ctx, file.FileID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.ErrNotFound
		}
		return fmt.Errorf("failed to delete file metadata: %w", err)
	}

	s.audit.Record(ctx, ownerID, domain.AuditFileDelete, file, nil)

	return nil
}
