package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/mwalto7/filevault/internal/apperrors"
	"github.com/mwalto7/filevault/internal/core/domain"
	portssvc "github.com/mwalto7/filevault/internal/core/ports/services"
	"github.com/mwalto7/filevault/internal/dto"
	"github.com/mwalto7/filevault/internal/middleware"
)

// multipartFieldName is the form field carrying the blob on upload and update.
const multipartFieldName = "file"

// FileHandler handles per-user file storage requests.
type FileHandler struct {
	fileService portssvc.FileSvcFacade
}

// NewFileHandler creates a new FileHandler.
func NewFileHandler(fs portssvc.FileSvcFacade) *FileHandler {
	return &FileHandler{fileService: fs}
}

// callerID pulls the authenticated user from the request context. The auth
// middleware guarantees presence on these routes; the fallback guards
// against misregistered routes.
func callerID(c *gin.Context) (string, bool) {
	userID, ok := middleware.GetUserIDFromCtx(c.Request.Context())
	if !ok {
		respondError(c, http.StatusUnauthorized, "Token required")
	}
	return userID, ok
}

// pathFileID parses the :id route parameter. Anything non-numeric cannot
// name an existing file, so it maps to 404 rather than 400.
func pathFileID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		respondError(c, http.StatusNotFound, "File not found")
		return 0, false
	}
	return id, true
}

// formUpload reads the multipart blob into a domain.FileUpload. The
// returned closer must be called after the service is done with it.
func formUpload(c *gin.Context) (*domain.FileUpload, func(), bool) {
	fileHeader, err := c.FormFile(multipartFieldName)
	if err != nil {
		respondError(c, http.StatusBadRequest, "No file uploaded")
		return nil, nil, false
	}

	src, err := fileHeader.Open()
	if err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to open multipart file", slog.String("error", err.Error()))
		respondError(c, http.StatusInternalServerError, "Internal server error")
		return nil, nil, false
	}

	upload := &domain.FileUpload{
		Name:     fileHeader.Filename,
		MimeType: fileHeader.Header.Get("Content-Type"),
		Size:     fileHeader.Size,
		Content:  src,
	}
	return upload, func() { src.Close() }, true
}

// Upload godoc
// @Summary Upload a file
// @Description Stores a blob and returns its metadata.
// @Tags file
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "File to upload"
// @Success 201 {object} dto.FileResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /file/upload [post]
func (h *FileHandler) Upload(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	upload, closeUpload, ok := formUpload(c)
	if !ok {
		return
	}
	defer closeUpload()

	file, err := h.fileService.Upload(c.Request.Context(), userID, *upload)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			respondError(c, http.StatusBadRequest, "No file uploaded")
			return
		}
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to upload file", slog.String("error", err.Error()))
		respondError(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	c.JSON(http.StatusCreated, dto.ToFileResponse(file))
}

// List godoc
// @Summary List files
// @Description Returns one page of the caller's file metadata.
// @Tags file
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number, default 1"
// @Param list_size query int false "Page size, default 10"
// @Success 200 {object} dto.FileListResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /file/list [get]
func (h *FileHandler) List(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	page := queryInt(c, "page", 1)
	perPage := queryInt(c, "list_size", 10)

	result, err := h.fileService.List(c.Request.Context(), userID, page, perPage)
	if err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to list files", slog.String("error", err.Error()))
		respondError(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, dto.ToFileListResponse(result))
}

// Show godoc
// @Summary File metadata
// @Description Returns metadata of one file owned by the caller.
// @Tags file
// @Produce json
// @Security BearerAuth
// @Param id path int true "File ID"
// @Success 200 {object} dto.FileResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /file/{id} [get]
func (h *FileHandler) Show(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	fileID, ok := pathFileID(c)
	if !ok {
		return
	}

	file, err := h.fileService.Show(c.Request.Context(), userID, fileID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			respondError(c, http.StatusNotFound, "File not found")
			return
		}
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to show file", slog.String("error", err.Error()))
		respondError(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, dto.ToFileResponse(file))
}

// Download godoc
// @Summary Download a file
// @Description Streams the blob with the original name as the suggested filename.
// @Tags file
// @Produce octet-stream
// @Security BearerAuth
// @Param id path int true "File ID"
// @Success 200 {file} binary
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /file/download/{id} [get]
func (h *FileHandler) Download(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	fileID, ok := pathFileID(c)
	if !ok {
		return
	}

	download, err := h.fileService.Download(c.Request.Context(), userID, fileID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			respondError(c, http.StatusNotFound, "File not found")
			return
		}
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to download file", slog.String("error", err.Error()))
		respondError(c, http.StatusInternalServerError, "Internal server error")
		return
	}
	defer download.Content.Close()

	headers := map[string]string{
		"Content-Disposition": fmt.Sprintf("attachment; filename=%q", download.File.Name),
	}
	c.DataFromReader(http.StatusOK, download.File.Size, download.File.MimeType, download.Content, headers)
}

// Update godoc
// @Summary Replace a file
// @Description Replaces blob and metadata of one file owned by the caller.
// @Tags file
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path int true "File ID"
// @Param file formData file true "Replacement file"
// @Success 200 {object} dto.FileResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /file/update/{id} [put]
func (h *FileHandler) Update(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	fileID, ok := pathFileID(c)
	if !ok {
		return
	}
	upload, closeUpload, ok := formUpload(c)
	if !ok {
		return
	}
	defer closeUpload()

	file, err := h.fileService.Update(c.Request.Context(), userID, fileID, *upload)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			respondError(c, http.StatusNotFound, "File not found")
		case errors.Is(err, apperrors.ErrValidation):
			respondError(c, http.StatusBadRequest, "No file uploaded")
		default:
			middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to update file", slog.String("error", err.Error()))
			respondError(c, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToFileResponse(file))
}

// Delete godoc
// @Summary Delete a file
// @Description Deletes blob and metadata of one file owned by the caller.
// @Tags file
// @Produce json
// @Security BearerAuth
// @Param id path int true "File ID"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /file/delete/{id} [delete]
func (h *FileHandler) Delete(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	fileID, ok := pathFileID(c)
	if !ok {
		return
	}

	if err := h.fileService.Delete(c.Request.Context(), userID, fileID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			respondError(c, http.StatusNotFound, "File not found")
			return
		}
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to delete file", slog.String("error", err.Error()))
		respondError(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, dto.SuccessResponse{Success: true})
}
