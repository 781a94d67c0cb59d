package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/mwalto7/filevault/internal/apperrors"
	"github.com/mwalto7/filevault/internal/core/domain"
	portsrepo "github.com/mwalto7/filevault/internal/core/ports/repositories"
	"github.com/mwalto7/filevault/internal/models"
)

type PgxFileRepository struct {
	db PgxPool
}

func NewPgxFileRepository(db PgxPool) portsrepo.FileRepository {
	return &PgxFileRepository{db: db}
}

// Ensure PgxFileRepository implements portsrepo.FileRepository
var _ portsrepo.FileRepository = (*PgxFileRepository)(nil)

func toDomainFile(m models.File) domain.File {
	return domain.File{
		FileID:      m.FileID,
		OwnerID:     m.UserID,
		Name:        m.Name,
		Extension:   m.Extension,
		MimeType:    m.MimeType,
		Size:        m.Size,
		StoragePath: m.StoragePath,
		UploadedAt:  m.UploadedAt,
	}
}

func toDomainFileSlice(ms []models.File) []domain.File {
	ds := make([]domain.File, len(ms))
	for i, m := range ms {
		ds[i] = toDomainFile(m)
	}
	return ds
}

func (r *PgxFileRepository) SaveFile(ctx context.Context, file domain.File) (int64, error) {
	query := `
        INSERT INTO files (user_id, name, extension, mime_type, size, storage_path, uploaded_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING file_id;
    `
	var fileID int64
	err := r.db.QueryRow(ctx, query,
		file.OwnerID,
		file.Name,
		file.Extension,
		file.MimeType,
		file.Size,
		file.StoragePath,
		file.UploadedAt,
	).Scan(&fileID)
	if err != nil {
		return 0, fmt.Errorf("failed to save file metadata: %w", err)
	}
	return fileID, nil
}

func (r *PgxFileRepository) FindFileByID(ctx context.Context, fileID int64) (*domain.File, error) {
	query := `
		SELECT file_id, user_id, name, extension, mime_type, size, storage_path, uploaded_at
		FROM files
		WHERE file_id = $1;
	`
	var modelFile models.File
	err := r.db.QueryRow(ctx, query, fileID).Scan(
		&modelFile.FileID,
		&modelFile.UserID,
		&modelFile.Name,
		&modelFile.Extension,
		&modelFile.MimeType,
		&modelFile.Size,
		&modelFile.StoragePath,
		&modelFile.UploadedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find file by ID %d: %w", fileID, err)
	}

	domainFile := toDomainFile(modelFile)
	return &domainFile, nil
}

func (r *PgxFileRepository) FindFilesByOwner(ctx context.Context, ownerID string, limit, offset int) ([]domain.File, error) {
	if limit <= 0 {
		limit = 10
	}
	if offset < 0 {
		offset = 0
	}

	// file_id gives a stable order; clients must not rely on any
	// particular ordering.
	query := `
        SELECT file_id, user_id, name, extension, mime_type, size, storage_path, uploaded_at
        FROM files
        WHERE user_id = $1
        ORDER BY file_id
        LIMIT $2 OFFSET $3;
    `
	rows, err := r.db.Query(ctx, query, ownerID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query files: %w", err)
	}
	defer rows.Close()

	modelFiles := []models.File{}
	for rows.Next() {
		var modelFile models.File
		err := rows.Scan(
			&modelFile.FileID,
			&modelFile.UserID,
			&modelFile.Name,
			&modelFile.Extension,
			&modelFile.MimeType,
			&modelFile.Size,
			&modelFile.StoragePath,
			&modelFile.UploadedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan file row: %w", err)
		}
		modelFiles = append(modelFiles, modelFile)
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating file rows: %w", rows.Err())
	}

	return toDomainFileSlice(modelFiles), nil
}

func (r *PgxFileRepository) CountFilesByOwner(ctx context.Context, ownerID string) (int64, error) {
	query := `SELECT COUNT(*) FROM files WHERE user_id = $1;`
	var total int64
	if err := r.db.QueryRow(ctx, query, ownerID).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to count files: %w", err)
	}
	return total, nil
}

func (r *PgxFileRepository) UpdateFile(ctx context.Context, file domain.File) error {
	query := `
        UPDATE files
        SET name = $1, extension = $2, mime_type = $3, size = $4, storage_path = $5, uploaded_at = $6
        WHERE file_id = $7;
    `
	cmdTag, err := r.db.Exec(ctx, query,
		file.Name,
		file.Extension,
		file.MimeType,
		file.Size,
		file.StoragePath,
		file.UploadedAt,
		file.FileID,
	)
	if err != nil {
		return fmt.Errorf("failed to execute update file query: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("file not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxFileRepository) DeleteFile(ctx context.Context, fileID int64) error {
	query := `DELETE FROM files WHERE file_id = $1;`
	cmdTag, err := r.db.Exec(ctx, query, fileID)
	if err != nil {
		return fmt.Errorf("failed to delete file metadata: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("file not found: %w", apperrors.ErrNotFound)
	}
	return nil
}
