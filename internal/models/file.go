package models

import "time"

// File is the persistence shape of stored file metadata.
type File struct {
	FileID      int64     `db:"file_id"`
	UserID      string    `db:"user_id"`
	Name        string    `db:"name"`
	Extension   string    `db:"extension"`
	MimeType    string    `db:"mime_type"`
	Size        int64     `db:"size"`
	StoragePath string    `db:"storage_path"`
	UploadedAt  time.Time `db:"uploaded_at"`
}
