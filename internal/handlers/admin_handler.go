package handlers

import (
	"mymirro/internal/apperrors"
	"mymirro/internal/middleware"
	"mymirro/internal/models"
	"mymirro/internal/services"
	"mymirro/pkg/logger"
	"mymirro/pkg/storage"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// AdminHandler handles the admin-owned file entries and their uploads.
// Uploaded files go to local disk and are referenced by a relative URL.
type AdminHandler struct {
	entryService *services.EntryService
	uploads      storage.Uploader
	validate     *validator.Validate
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(entryService *services.EntryService, uploads storage.Uploader) *AdminHandler {
	return &AdminHandler{
		entryService: entryService,
		uploads:      uploads,
		validate:     validator.New(),
	}
}

// RegisterRoutes registers the admin routes. The whole group is gated behind
// identity plus the admin role.
func (h *AdminHandler) RegisterRoutes(router fiber.Router, authService *services.AuthService) {
	adminRoutes := router.Group("/admin", middleware.Protected(authService), middleware.RequireRole(models.RoleAdmin))
	adminRoutes.Post("/upload", h.HandleUpload)
	adminRoutes.Get("/entries", h.HandleGetEntries)
	adminRoutes.Get("/entries/:id", h.HandleGetEntryByID)
	adminRoutes.Put("/entries/:id", h.HandleUpdateEntry)
	adminRoutes.Delete("/entries/:id", h.HandleDeleteEntry)
}

// HandleUpload stores the uploaded file and creates an entry referencing it.
func (h *AdminHandler) HandleUpload(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return fail(c, apperrors.Validation("No file uploaded"))
	}

	entry := models.Entry{
		Title:       c.FormValue("title"),
		Description: c.FormValue("description"),
	}
	if err := h.validate.Struct(entry); err != nil {
		return failValidation(c, err)
	}

	src, err := file.Open()
	if err != nil {
		return fail(c, apperrors.Internal(err))
	}
	defer src.Close()

	url, err := h.uploads.Upload(c.Context(), file.Filename, src)
	if err != nil {
		logger.Error("file upload failed", zap.String("filename", file.Filename), zap.Error(err))
		return fail(c, apperrors.Internal(err))
	}
	entry.FileURL = url

	if err := h.entryService.CreateEntry(&entry); err != nil {
		return fail(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "File uploaded successfully",
		"entry":   entry,
	})
}

// HandleGetEntries lists all entries.
func (h *AdminHandler) HandleGetEntries(c *fiber.Ctx) error {
	entries, err := h.entryService.GetAllEntries()
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"entries": entries,
	})
}

// HandleGetEntryByID fetches a single entry.
func (h *AdminHandler) HandleGetEntryByID(c *fiber.Ctx) error {
	entry, err := h.entryService.GetEntryByID(c.Params("id"))
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"entry":   entry,
	})
}

// HandleUpdateEntry applies a partial update and returns the updated record.
func (h *AdminHandler) HandleUpdateEntry(c *fiber.Ctx) error {
	var update services.EntryUpdate
	if err := c.BodyParser(&update); err != nil {
		return fail(c, apperrors.Validation("Invalid request body"))
	}

	entry, err := h.entryService.UpdateEntry(c.Params("id"), &update)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Entry updated successfully",
		"entry":   entry,
	})
}

// HandleDeleteEntry removes an entry.
func (h *AdminHandler) HandleDeleteEntry(c *fiber.Ctx) error {
	if err := h.entryService.DeleteEntry(c.Params("id")); err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Entry deleted successfully",
	})
}
