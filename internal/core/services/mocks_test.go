package services_test

import (
	"context"
	"io"

	"github.com/mwalto7/filevault/internal/core/domain"
	"github.com/stretchr/testify/mock"
)

// --- Mock UserRepository ---

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

// --- Mock TokenRepository ---

type MockTokenRepository struct {
	mock.Mock
}

func (m *MockTokenRepository) SaveToken(ctx context.Context, token domain.RefreshToken) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func (m *MockTokenRepository) FindByToken(ctx context.Context, refreshToken string) (*domain.RefreshToken, error) {
	args := m.Called(ctx, refreshToken)
	var token *domain.RefreshToken
	if args.Get(0) != nil {
		token = args.Get(0).(*domain.RefreshToken)
	}
	return token, args.Error(1)
}

func (m *MockTokenRepository) DeleteByToken(ctx context.Context, refreshToken string) error {
	args := m.Called(ctx, refreshToken)
	return args.Error(0)
}

// --- Mock FileRepository ---

type MockFileRepository struct {
	mock.Mock
}

func (m *MockFileRepository) SaveFile(ctx context.Context, file domain.File) (int64, error) {
	args := m.Called(ctx, file)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockFileRepository) FindFileByID(ctx context.Context, fileID int64) (*domain.File, error) {
	args := m.Called(ctx, fileID)
	var file *domain.File
	if args.Get(0) != nil {
		file = args.Get(0).(*domain.File)
	}
	return file, args.Error(1)
}

func (m *MockFileRepository) FindFilesByOwner(ctx context.Context, ownerID string, limit, offset int) ([]domain.File, error) {
	args := m.Called(ctx, ownerID, limit, offset)
	var files []domain.File
	if args.Get(0) != nil {
		files = args.Get(0).([]domain.File)
	}
	return files, args.Error(1)
}

func (m *MockFileRepository) CountFilesByOwner(ctx context.Context, ownerID string) (int64, error) {
	args := m.Called(ctx, ownerID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockFileRepository) UpdateFile(ctx context.Context, file domain.File) error {
	args := m.Called(ctx, file)
	return args.Error(0)
}

func (m *MockFileRepository) DeleteFile(ctx context.Context, fileID int64) error {
	args := m.Called(ctx, fileID)
	return args.Error(0)
}

// --- Mock AuditRepository ---

type MockAuditRepository struct {
	mock.Mock
}

func (m *MockAuditRepository) Append(ctx context.Context, entry domain.AuditEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

// --- Mock BlobStore ---

type MockBlobStore struct {
	mock.Mock
}

func (m *MockBlobStore) Save(ctx context.Context, extension string, content io.Reader) (string, error) {
	args := m.Called(ctx, extension, content)
	return args.String(0), args.Error(1)
}

func (m *MockBlobStore) Open(ctx context.Context, key string) (io.ReadCloser, error) {
	args := m.Called(ctx, key)
	var rc io.ReadCloser
	if args.Get(0) != nil {
		rc = args.Get(0).(io.ReadCloser)
	}
	return rc, args.Error(1)
}

func (m *MockBlobStore) Exists(ctx context.Context, key string) (bool, error) {
	args := m.Called(ctx, key)
	return args.Bool(0), args.Error(1)
}

func (m *MockBlobStore) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}
