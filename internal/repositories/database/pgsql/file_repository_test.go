package pgsql

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/require"

	"github.com/mwalto7/filevault/internal/apperrors"
	"github.com/mwalto7/filevault/internal/core/domain"
)

func testFile() domain.File {
	return domain.File{
		OwnerID:     "user@example.com",
		Name:        "report.pdf",
		Extension:   "pdf",
		MimeType:    "application/pdf",
		Size:        1024,
		StoragePath: "aaaa-bbbb.pdf",
		UploadedAt:  time.Now(),
	}
}

func TestFileRepository_SaveFile(t *testing.T) {
	mock := newMockDB(t)
	defer mock.Close()
	r := NewPgxFileRepository(mock)
	ctx := context.Background()
	file := testFile()

	mock.ExpectQuery(`INSERT INTO files`).
		WithArgs(file.OwnerID, file.Name, file.Extension, file.MimeType, file.Size, file.StoragePath, file.UploadedAt).
		WillReturnRows(pgxmock.NewRows([]string{"file_id"}).AddRow(int64(7)))

	fileID, err := r.SaveFile(ctx, file)
	require.NoError(t, err)
	require.Equal(t, int64(7), fileID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFileRepository_FindFileByID(t *testing.T) {
	mock := newMockDB(t)
	defer mock.Close()
	r := NewPgxFileRepository(mock)
	ctx := context.Background()
	uploadedAt := time.Now()

	mock.ExpectQuery(`SELECT file_id, user_id, name, extension, mime_type, size, storage_path, uploaded_at`).
		WithArgs(int64(7)).
		WillReturnRows(pgxmock.NewRows([]string{"file_id", "user_id", "name", "extension", "mime_type", "size", "storage_path", "uploaded_at"}).
			AddRow(int64(7), "user@example.com", "report.pdf", "pdf", "application/pdf", int64(1024), "aaaa-bbbb.pdf", uploadedAt))

	file, err := r.FindFileByID(ctx, 7)
	require.NoError(t, err)
	require.Equal(t, int64(7), file.FileID)
	require.Equal(t, "user@example.com", file.OwnerID)
	require.Equal(t, "aaaa-bbbb.pdf", file.StoragePath)

	mock.ExpectQuery(`SELECT file_id, user_id, name, extension, mime_type, size, storage_path, uploaded_at`).
		WithArgs(int64(99)).
		WillReturnError(pgx.ErrNoRows)

	file, err = r.FindFileByID(ctx, 99)
	require.ErrorIs(t, err, apperrors.ErrNotFound)
	require.Nil(t, file)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFileRepository_FindFilesByOwner(t *testing.T) {
	mock := newMockDB(t)
	defer mock.Close()
	r := NewPgxFileRepository(mock)
	ctx := context.Background()
	uploadedAt := time.Now()

	mock.ExpectQuery(`SELECT file_id, user_id, name, extension, mime_type, size, storage_path, uploaded_at`).
		WithArgs("user@example.com", 2, 2).
		WillReturnRows(pgxmock.NewRows([]string{"file_id", "user_id", "name", "extension", "mime_type", "size", "storage_path", "uploaded_at"}).
			AddRow(int64(3), "user@example.com", "a.txt", "txt", "text/plain", int64(1), "k1.txt", uploadedAt).
			AddRow(int64(4), "user@example.com", "b.txt", "txt", "text/plain", int64(2), "k2.txt", uploadedAt))

	files, err := r.FindFilesByOwner(ctx, "user@example.com", 2, 2)
	require.NoError(t, err)
	require.Len(t, files, 2)
	require.Equal(t, int64(3), files[0].FileID)
	require.Equal(t, int64(4), files[1].FileID)

	// No rows comes back as an empty slice, not an error.
	mock.ExpectQuery(`SELECT file_id, user_id, name, extension, mime_type, size, storage_path, uploaded_at`).
		WithArgs("empty@example.com", 10, 0).
		WillReturnRows(pgxmock.NewRows([]string{"file_id", "user_id", "name", "extension", "mime_type", "size", "storage_path", "uploaded_at"}))

	files, err = r.FindFilesByOwner(ctx, "empty@example.com", 10, 0)
	require.NoError(t, err)
	require.Empty(t, files)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFileRepository_CountFilesByOwner(t *testing.T) {
	mock := newMockDB(t)
	defer mock.Close()
	r := NewPgxFileRepository(mock)
	ctx := context.Background()

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM files`).
		WithArgs("user@example.com").
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(12)))

	total, err := r.CountFilesByOwner(ctx, "user@example.com")
	require.NoError(t, err)
	require.Equal(t, int64(12), total)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFileRepository_UpdateFile(t *testing.T) {
	mock := newMockDB(t)
	defer mock.Close()
	r := NewPgxFileRepository(mock)
	ctx := context.Background()
	file := testFile()
	file.FileID = 7

	mock.ExpectExec(`UPDATE files`).
		WithArgs(file.Name, file.Extension, file.MimeType, file.Size, file.StoragePath, file.UploadedAt, file.FileID).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	require.NoError(t, r.UpdateFile(ctx, file))

	mock.ExpectExec(`UPDATE files`).
		WithArgs(file.Name, file.Extension, file.MimeType, file.Size, file.StoragePath, file.UploadedAt, file.FileID).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))
	err := r.UpdateFile(ctx, file)
	require.ErrorIs(t, err, apperrors.ErrNotFound)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFileRepository_DeleteFile(t *testing.T) {
	mock := newMockDB(t)
	defer mock.Close()
	r := NewPgxFileRepository(mock)
	ctx := context.Background()

	mock.ExpectExec(`DELETE FROM files`).
		WithArgs(int64(7)).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))
	require.NoError(t, r.DeleteFile(ctx, 7))

	mock.ExpectExec(`DELETE FROM files`).
		WithArgs(int64(99)).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))
	err := r.DeleteFile(ctx, 99)
	require.ErrorIs(t, err, apperrors.ErrNotFound)

	require.NoError(t, mock.ExpectationsWereMet())
}
