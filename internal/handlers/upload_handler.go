package handlers

import (
	"mymirro/internal/apperrors"
	"mymirro/pkg/logger"
	"mymirro/pkg/storage"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// UploadHandler handles the public image upload route backed by cloud
// storage.
type UploadHandler struct {
	uploads storage.Uploader
}

// NewUploadHandler creates a new UploadHandler.
func NewUploadHandler(uploads storage.Uploader) *UploadHandler {
	return &UploadHandler{
		uploads: uploads,
	}
}

// RegisterRoutes registers the public upload route.
func (h *UploadHandler) RegisterRoutes(router fiber.Router) {
	router.Post("/upload", h.HandleUpload)
}

// HandleUpload stores the image in cloud storage and returns its hosted URL.
func (h *UploadHandler) HandleUpload(c *fiber.Ctx) error {
	file, err := c.FormFile("image")
	if err != nil {
		return fail(c, apperrors.Validation("No image uploaded"))
	}

	src, err := file.Open()
	if err != nil {
		return fail(c, apperrors.Internal(err))
	}
	defer src.Close()

	url, err := h.uploads.Upload(c.Context(), file.Filename, src)
	if err != nil {
		logger.Error("image upload failed", zap.String("filename", file.Filename), zap.Error(err))
		return fail(c, apperrors.Internal(err))
	}

	return c.JSON(fiber.Map{
		"success":  true,
		"imageUrl": url,
	})
}
