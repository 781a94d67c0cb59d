package domain

import (
	"io"
	"time"
)

// File is the metadata of a stored blob. StoragePath is an opaque handle
// into the blob backend and is never exposed to clients; Name is the
// user-visible original filename.
type File struct {
	FileID      int64     `json:"id"`
	OwnerID     string    `json:"-"`
	Name        string    `json:"name"`
	Extension   string    `json:"extension"`
	MimeType    string    `json:"mime_type"`
	Size        int64     `json:"size"`
	StoragePath string    `json:"-"`
	UploadedAt  time.Time `json:"upload_date"`
}

// FileUpload carries the content and client-supplied metadata of an
// incoming upload. Content is nil when no blob was provided.
type FileUpload struct {
	Name     string
	MimeType string
	Size     int64
	Content  io.Reader
}

// FileDownload pairs file metadata with its blob content. The caller owns
// Content and must close it.
type FileDownload struct {
	File    File
	Content io.ReadCloser
}

// PageMeta describes the position of a page within a listing.
type PageMeta struct {
	CurrentPage int   `json:"current_page"`
	PerPage     int   `json:"per_page"`
	Total       int64 `json:"total"`
	LastPage    int   `json:"last_page"`
}

// FilePage is one page of file metadata scoped to a single owner.
type FilePage struct {
	Files []File
	Meta  PageMeta
}
