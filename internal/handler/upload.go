package handler

import (
	"context"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"intown-api/internal/uploads"
)

// Uploader interface for dependency injection.
type Uploader interface {
	Upload(ctx context.Context, filename, contentType string, body io.Reader) (uploads.UploadedFile, error)
}

// UploadHandler handles multipart image uploads.
type UploadHandler struct {
	uploader Uploader
}

// NewUploadHandler creates a new upload handler.
func NewUploadHandler(uploader Uploader) *UploadHandler {
	return &UploadHandler{uploader: uploader}
}

// Upload handles POST /api/s3/upload. It accepts one or more files in
// the "files" multipart field and returns the stored objects.
func (h *UploadHandler) Upload(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "multipart form required"})
		return
	}

	headers := form.File["files"]
	if len(headers) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no files provided"})
		return
	}

	files := make([]uploads.UploadedFile, 0, len(headers))
	for _, header := range headers {
		src, err := header.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read " + header.Filename})
			return
		}

		contentType := header.Header.Get("Content-Type")
		if contentType == "" {
			contentType = "application/octet-stream"
		}

		file, err := h.uploader.Upload(c.Request.Context(), header.Filename, contentType, src)
		src.Close()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to upload " + header.Filename})
			return
		}
		files = append(files, file)
	}

	c.JSON(http.StatusOK, gin.H{"files": files})
}
