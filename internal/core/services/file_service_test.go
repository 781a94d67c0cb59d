package services_test

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/mwalto7/filevault/internal/apperrors"
	"github.com/mwalto7/filevault/internal/core/domain"
	portssvc "github.com/mwalto7/filevault/internal/core/ports/services"
	"github.com/mwalto7/filevault/internal/core/services"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type FileServiceTestSuite struct {
	suite.Suite
	mockFileRepo  *MockFileRepository
	mockBlobStore *MockBlobStore
	mockAuditRepo *MockAuditRepository
	service       portssvc.FileSvcFacade
}

func (s *FileServiceTestSuite) SetupTest() {
	s.mockFileRepo = new(MockFileRepository)
	s.mockBlobStore = new(MockBlobStore)
	s.mockAuditRepo = new(MockAuditRepository)
	audit := services.NewAuditRecorder(s.mockAuditRepo)
	s.service = services.NewFileService(s.mockFileRepo, s.mockBlobStore, audit)
}

func (s *FileServiceTestSuite) expectAudit(event domain.AuditEvent) {
	s.mockAuditRepo.On("Append", mock.Anything, mock.MatchedBy(func(e domain.AuditEntry) bool {
		return e.EventType == event
	})).Return(nil).Once()
}

func (s *FileServiceTestSuite) ownedFile(fileID int64, ownerID string) *domain.File {
	return &domain.File{
		FileID:      fileID,
		OwnerID:     ownerID,
		Name:        "report.pdf",
		Extension:   "pdf",
		MimeType:    "application/pdf",
		Size:        42,
		StoragePath: "aaaa-bbbb.pdf",
		UploadedAt:  time.Now(),
	}
}

func (s *FileServiceTestSuite) TestUpload_Success() {
	ctx := context.Background()
	content := strings.NewReader("hello")

	s.mockBlobStore.On("Save", ctx, "txt", content).Return("blob-key.txt", nil).Once()
	s.mockFileRepo.On("SaveFile", ctx, mock.MatchedBy(func(f domain.File) bool {
		return f.OwnerID == "user@example.com" &&
			f.Name == "notes.txt" &&
			f.Extension == "txt" &&
			f.StoragePath == "blob-key.txt"
	})).Return(int64(7), nil).Once()
	s.expectAudit(domain.AuditFileUpload)

	file, err := s.service.Upload(ctx, "user@example.com", domain.FileUpload{
		Name:     "notes.txt",
		MimeType: "text/plain",
		Size:     5,
		Content:  content,
	})

	s.Require().NoError(err)
	s.Require().NotNil(file)
	s.Equal(int64(7), file.FileID)
	s.Equal("blob-key.txt", file.StoragePath)
	s.mockBlobStore.AssertExpectations(s.T())
	s.mockFileRepo.AssertExpectations(s.T())
}

func (s *FileServiceTestSuite) TestUpload_NoContent() {
	file, err := s.service.Upload(context.Background(), "user@example.com", domain.FileUpload{Name: "x.txt"})
	s.Require().ErrorIs(err, apperrors.ErrValidation)
	s.Nil(file)
	s.mockBlobStore.AssertNotCalled(s.T(), "Save", mock.Anything, mock.Anything, mock.Anything)
}

func (s *FileServiceTestSuite) TestUpload_MetadataFailureCleansUpBlob() {
	ctx := context.Background()
	content := strings.NewReader("hello")

	s.mockBlobStore.On("Save", ctx, "txt", content).Return("orphan-key.txt", nil).Once()
	s.mockFileRepo.On("SaveFile", ctx, mock.AnythingOfType("domain.File")).Return(int64(0), errors.New("db down")).Once()
	s.mockBlobStore.On("Delete", ctx, "orphan-key.txt").Return(nil).Once()

	file, err := s.service.Upload(ctx, "user@example.com", domain.FileUpload{Name: "notes.txt", Content: content})

	s.Require().Error(err)
	s.Nil(file)
	s.mockBlobStore.AssertExpectations(s.T())
}

func (s *FileServiceTestSuite) TestList_DefaultsApplied() {
	ctx := context.Background()

	s.mockFileRepo.On("FindFilesByOwner", ctx, "user@example.com", 10, 0).Return([]domain.File{}, nil).Once()
	s.mockFileRepo.On("CountFilesByOwner", ctx, "user@example.com").Return(int64(0), nil).Once()

	page, err := s.service.List(ctx, "user@example.com", 0, 0)

	s.Require().NoError(err)
	s.Equal(1, page.Meta.CurrentPage)
	s.Equal(10, page.Meta.PerPage)
	s.Equal(int64(0), page.Meta.Total)
	s.Equal(0, page.Meta.LastPage)
	s.mockFileRepo.AssertExpectations(s.T())
}

func (s *FileServiceTestSuite) TestList_PaginationMeta() {
	ctx := context.Background()
	files := []domain.File{*s.ownedFile(4, "user@example.com"), *s.ownedFile(5, "user@example.com"), *s.ownedFile(6, "user@example.com")}

	s.mockFileRepo.On("FindFilesByOwner", ctx, "user@example.com", 3, 3).Return(files, nil).Once()
	s.mockFileRepo.On("CountFilesByOwner", ctx, "user@example.com").Return(int64(7), nil).Once()

	page, err := s.service.List(ctx, "user@example.com", 2, 3)

	s.Require().NoError(err)
	s.Len(page.Files, 3)
	s.Equal(2, page.Meta.CurrentPage)
	s.Equal(3, page.Meta.PerPage)
	s.Equal(int64(7), page.Meta.Total)
	s.Equal(3, page.Meta.LastPage)
}

func (s *FileServiceTestSuite) TestShow_Success() {
	ctx := context.Background()
	file := s.ownedFile(3, "user@example.com")
	s.mockFileRepo.On("FindFileByID", ctx, int64(3)).Return(file, nil).Once()

	got, err := s.service.Show(ctx, "user@example.com", 3)

	s.Require().NoError(err)
	s.Equal(file, got)
}

func (s *FileServiceTestSuite) TestShow_ForeignFileIsNotFound() {
	ctx := context.Background()
	file := s.ownedFile(3, "other@example.com")
	s.mockFileRepo.On("FindFileByID", ctx, int64(3)).Return(file, nil).Once()

	got, err := s.service.Show(ctx, "user@example.com", 3)

	// Someone else's file must be indistinguishable from a missing one.
	s.Require().ErrorIs(err, apperrors.ErrNotFound)
	s.Nil(got)
}

func (s *FileServiceTestSuite) TestShow_Missing() {
	ctx := context.Background()
	s.mockFileRepo.On("FindFileByID", ctx, int64(99)).Return(nil, apperrors.ErrNotFound).Once()

	got, err := s.service.Show(ctx, "user@example.com", 99)

	s.Require().ErrorIs(err, apperrors.ErrNotFound)
	s.Nil(got)
}

func (s *FileServiceTestSuite) TestDownload_Success() {
	ctx := context.Background()
	file := s.ownedFile(3, "user@example.com")

	s.mockFileRepo.On("FindFileByID", ctx, int64(3)).Return(file, nil).Once()
	s.mockBlobStore.On("Exists", ctx, file.StoragePath).Return(true, nil).Once()
	s.mockBlobStore.On("Open", ctx, file.StoragePath).Return(io.NopCloser(strings.NewReader("content")), nil).Once()
	s.expectAudit(domain.AuditFileDownload)

	dl, err := s.service.Download(ctx, "user@example.com", 3)

	s.Require().NoError(err)
	s.Require().NotNil(dl)
	data, err := io.ReadAll(dl.Content)
	s.Require().NoError(err)
	s.Equal("content", string(data))
	s.Equal(file.Name, dl.File.Name)
	s.mockAuditRepo.AssertExpectations(s.T())
}

func (s *FileServiceTestSuite) TestDownload_BlobGone() {
	ctx := context.Background()
	file := s.ownedFile(3, "user@example.com")

	s.mockFileRepo.On("FindFileByID", ctx, int64(3)).Return(file, nil).Once()
	s.mockBlobStore.On("Exists", ctx, file.StoragePath).Return(false, nil).Once()

	dl, err := s.service.Download(ctx, "user@example.com", 3)

	s.Require().ErrorIs(err, apperrors.ErrNotFound)
	s.Nil(dl)
	s.mockBlobStore.AssertNotCalled(s.T(), "Open", mock.Anything, mock.Anything)
}

func (s *FileServiceTestSuite) TestUpdate_ReplacesBlobAndMetadata() {
	ctx := context.Background()
	oldFile := s.ownedFile(3, "user@example.com")
	content := strings.NewReader("new bytes")

	s.mockFileRepo.On("FindFileByID", ctx, int64(3)).Return(oldFile, nil).Once()
	s.mockBlobStore.On("Save", ctx, "png", content).Return("new-key.png", nil).Once()
	s.mockBlobStore.On("Delete", ctx, oldFile.StoragePath).Return(nil).Once()
	s.mockFileRepo.On("UpdateFile", ctx, mock.MatchedBy(func(f domain.File) bool {
		return f.FileID == int64(3) && f.Name == "photo.png" && f.StoragePath == "new-key.png"
	})).Return(nil).Once()
	s.expectAudit(domain.AuditFileUpdate)

	file, err := s.service.Update(ctx, "user@example.com", 3, domain.FileUpload{
		Name:     "photo.png",
		MimeType: "image/png",
		Size:     9,
		Content:  content,
	})

	s.Require().NoError(err)
	s.Equal(int64(3), file.FileID)
	s.Equal("new-key.png", file.StoragePath)
	s.mockBlobStore.AssertExpectations(s.T())
	s.mockFileRepo.AssertExpectations(s.T())
}

func (s *FileServiceTestSuite) TestUpdate_ForeignFileIsNotFound() {
	ctx := context.Background()
	oldFile := s.ownedFile(3, "other@example.com")
	s.mockFileRepo.On("FindFileByID", ctx, int64(3)).Return(oldFile, nil).Once()

	file, err := s.service.Update(ctx, "user@example.com", 3, domain.FileUpload{
		Name:    "photo.png",
		Content: strings.NewReader("x"),
	})

	s.Require().ErrorIs(err, apperrors.ErrNotFound)
	s.Nil(file)
	s.mockBlobStore.AssertNotCalled(s.T(), "Save", mock.Anything, mock.Anything, mock.Anything)
}

func (s *FileServiceTestSuite) TestDelete_Success() {
	ctx := context.Background()
	file := s.ownedFile(3, "user@example.com")

	s.mockFileRepo.On("FindFileByID", ctx, int64(3)).Return(file, nil).Once()
	s.mockBlobStore.On("Delete", ctx, file.StoragePath).Return(nil).Once()
	s.mockFileRepo.On("DeleteFile", ctx, int64(3)).Return(nil).Once()
	s.expectAudit(domain.AuditFileDelete)

	err := s.service.Delete(ctx, "user@example.com", 3)

	s.Require().NoError(err)
	s.mockFileRepo.AssertExpectations(s.T())
}

func (s *FileServiceTestSuite) TestDelete_BlobFailureIsBestEffort() {
	ctx := context.Background()
	file := s.ownedFile(3, "user@example.com")

	s.mockFileRepo.On("FindFileByID", ctx, int64(3)).Return(file, nil).Once()
	s.mockBlobStore.On("Delete", ctx, file.StoragePath).Return(errors.New("storage unreachable")).Once()
	s.mockFileRepo.On("DeleteFile", ctx, int64(3)).Return(nil).Once()
	s.expectAudit(domain.AuditFileDelete)

	// The metadata row goes away even when the blob backend misbehaves.
	err := s.service.Delete(ctx, "user@example.com", 3)

	s.Require().NoError(err)
	s.mockFileRepo.AssertExpectations(s.T())
}

func TestFileServiceTestSuite(t *testing.T) {
	suite.Run(t, new(FileServiceTestSuite))
}
