package handlers

import (
	"mymirro/internal/apperrors"
	"mymirro/internal/middleware"
	"mymirro/internal/models"
	"mymirro/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// UserHandler handles HTTP requests for user records.
type UserHandler struct {
	userService *services.UserService
	validate    *validator.Validate
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
		validate:    validator.New(),
	}
}

// RegisterRoutes registers the user routes. Listing is admin-only, fetching
// and updating a record requires ownership or admin, deletion is admin-only.
func (h *UserHandler) RegisterRoutes(router fiber.Router, authService *services.AuthService) {
	userRoutes := router.Group("/user")
	userRoutes.Post("/", h.HandleCreateUser)
	userRoutes.Get("/", middleware.Protected(authService), middleware.RequireRole(models.RoleAdmin), h.HandleGetUsers)
	userRoutes.Get("/:id", middleware.Protected(authService), middleware.RequireSelfOrAdmin("id"), h.HandleGetUserByID)
	userRoutes.Put("/:id", middleware.Protected(authService), middleware.RequireSelfOrAdmin("id"), h.HandleUpdateUser)
	userRoutes.Delete("/:id", middleware.Protected(authService), middleware.RequireRole(models.RoleAdmin), h.HandleDeleteUser)
}

// HandleCreateUser creates a user record. Unlike the register route, this
// accepts OAuth sign-ups: either a password or a Google subject id must be
// present.
func (h *UserHandler) HandleCreateUser(c *fiber.Ctx) error {
	var user models.User
	if err := c.BodyParser(&user); err != nil {
		return fail(c, apperrors.Validation("Invalid request body"))
	}

	if err := h.validate.Struct(user); err != nil {
		return failValidation(c, err)
	}
	if user.Password == "" && user.GoogleID == "" {
		return fail(c, apperrors.Validation("Missing required fields"))
	}

	if err := h.userService.CreateUser(&user); err != nil {
		return fail(c, err)
	}

	user.Sanitize()
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "User registered successfully",
		"user":    user,
	})
}

// HandleGetUsers lists every user.
func (h *UserHandler) HandleGetUsers(c *fiber.Ctx) error {
	users, err := h.userService.GetAllUsers()
	if err != nil {
		return fail(c, err)
	}

	for i := range users {
		users[i].Sanitize()
	}
	return c.JSON(fiber.Map{
		"success": true,
		"users":   users,
	})
}

// HandleGetUserByID fetches a single user record.
func (h *UserHandler) HandleGetUserByID(c *fiber.Ctx) error {
	user, err := h.userService.GetUserByID(c.Params("id"))
	if err != nil {
		return fail(c, err)
	}

	user.Sanitize()
	return c.JSON(fiber.Map{
		"success": true,
		"user":    user,
	})
}

// HandleUpdateUser applies a partial update and returns the updated record.
func (h *UserHandler) HandleUpdateUser(c *fiber.Ctx) error {
	var update services.UserUpdate
	if err := c.BodyParser(&update); err != nil {
		return fail(c, apperrors.Validation("Invalid request body"))
	}

	user, err := h.userService.UpdateUser(c.Params("id"), &update)
	if err != nil {
		return fail(c, err)
	}

	user.Sanitize()
	return c.JSON(fiber.Map{
		"success": true,
		"message": "User updated successfully",
		"user":    user,
	})
}

// HandleDeleteUser removes a user record.
func (h *UserHandler) HandleDeleteUser(c *fiber.Ctx) error {
	if err := h.userService.DeleteUser(c.Params("id")); err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "User deleted successfully",
	})
}
