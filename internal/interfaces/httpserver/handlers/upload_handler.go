package handlers

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"chat-server/internal/config"
	"chat-server/internal/interfaces/httpserver/responses"
	"chat-server/internal/utils/idgen"
	"chat-server/internal/utils/platformerrors"
)

// UploadHandler handles media uploads. The chat core only ever consumes the
// resulting URL plus a type tag; storage stays behind this handler.
type UploadHandler struct {
	dir      string
	maxBytes int64
	log      zerolog.Logger
}

// NewUploadHandler creates the upload handler and ensures the upload
// directory exists.
func NewUploadHandler(cfg *config.Config, log zerolog.Logger) (*UploadHandler, error) {
	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &UploadHandler{
		dir:      cfg.UploadDir,
		maxBytes: cfg.UploadMaxBytes,
		log:      log.With().Str("component", "upload-handler").Logger(),
	}, nil
}

// Upload stores one multipart file under a generated name, keeping the
// original extension, and returns its public URL together with the type
// tag the client supplied.
func (h *UploadHandler) Upload(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxBytes)

	file, err := c.FormFile("file")
	if err != nil {
		platformerrors.WriteValidationError(c, "no file uploaded")
		return
	}
	if file.Size > h.maxBytes {
		platformerrors.WriteValidationError(c, "file too large")
		return
	}

	name, err := idgen.NewName("file", 24)
	if err != nil {
		h.log.Error().Err(err).Msg("failed to generate file name")
		platformerrors.WriteInternalError(c, "failed to store file")
		return
	}
	filename := name + filepath.Ext(file.Filename)

	if err := c.SaveUploadedFile(file, filepath.Join(h.dir, filename)); err != nil {
		h.log.Error().Err(err).Str("filename", filename).Msg("failed to save upload")
		platformerrors.WriteInternalError(c, "failed to store file")
		return
	}

	c.JSON(http.StatusOK, responses.UploadResponse{
		Success: true,
		URL:     "/uploads/" + filename,
		Type:    c.PostForm("type"),
	})
}
