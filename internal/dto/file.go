package dto

import (
	"time"

	"github.com/mwalto7/filevault/internal/core/domain"
)

// FileResponse is the client-visible shape of file metadata. The storage
// path is deliberately absent.
type FileResponse struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	Extension  string    `json:"extension"`
	MimeType   string    `json:"mime_type"`
	Size       int64     `json:"size"`
	UploadDate time.Time `json:"upload_date"`
}

// ToFileResponse converts a domain.File to its response DTO.
func ToFileResponse(f *domain.File) FileResponse {
	return FileResponse{
		ID:         f.FileID,
		Name:       f.Name,
		Extension:  f.Extension,
		MimeType:   f.MimeType,
		Size:       f.Size,
		UploadDate: f.UploadedAt,
	}
}

// PageMetaResponse describes the position of a page within a listing.
type PageMetaResponse struct {
	CurrentPage int   `json:"current_page"`
	PerPage     int   `json:"per_page"`
	Total       int64 `json:"total"`
	LastPage    int   `json:"last_page"`
}

// FileListResponse wraps one page of file metadata.
type FileListResponse struct {
	Data []FileResponse   `json:"data"`
	Meta PageMetaResponse `json:"meta"`
}

// ToFileListResponse converts a domain.FilePage to its response DTO.
func ToFileListResponse(p *domain.FilePage) FileListResponse {
	data := make([]FileResponse, len(p.Files))
	for i := range p.Files {
		data[i] = ToFileResponse(&p.Files[i])
	}
	return FileListResponse{
		Data: data,
		Meta: PageMetaResponse{
			CurrentPage: p.Meta.CurrentPage,
			PerPage:     p.Meta.PerPage,
			Total:       p.Meta.Total,
			LastPage:    p.Meta.LastPage,
		},
	}
}
