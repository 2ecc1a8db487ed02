package handlers

import (
	"fmt"

	"mymirro/internal/apperrors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// fail maps an application error to exactly one JSON response. Anything that
// is not an application error becomes a generic 500.
func fail(c *fiber.Ctx, err error) error {
	return c.Status(apperrors.StatusOf(err)).JSON(fiber.Map{
		"success": false,
		"message": apperrors.MessageOf(err),
	})
}

// failValidation reports missing or malformed input with a per-field
// breakdown.
func failValidation(c *fiber.Ctx, err error) error {
	errorMessages := make(map[string]string)
	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, e := range validationErrors {
			errorMessages[e.Field()] = fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag())
		}
	}
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"success": false,
		"message": "Missing required fields",
		"errors":  errorMessages,
	})
}
