package handlers

import (
	"mymirro/internal/apperrors"
	"mymirro/internal/models"
	"mymirro/internal/services"
	"mymirro/pkg/logger"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// AuthHandler handles HTTP requests for authentication.
type AuthHandler struct {
	authService *services.AuthService
	validate    *validator.Validate
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		validate:    validator.New(),
	}
}

// RegisterRoutes registers the authentication routes with the Fiber app.
func (h *AuthHandler) RegisterRoutes(router fiber.Router) {
	authRoutes := router.Group("/auth")
	authRoutes.Post("/register", h.HandleRegister)
	authRoutes.Post("/login", h.HandleLogin)
	authRoutes.Post("/google-login", h.HandleGoogleLogin)
}

// HandleRegister handles new user registration with email and password.
func (h *AuthHandler) HandleRegister(c *fiber.Ctx) error {
	var user models.User
	if err := c.BodyParser(&user); err != nil {
		return fail(c, apperrors.Validation("Invalid request body"))
	}

	if err := h.validate.Struct(user); err != nil {
		return failValidation(c, err)
	}
	if user.Password == "" {
		return fail(c, apperrors.Validation("Missing required fields"))
	}

	if err := h.authService.RegisterUser(&user); err != nil {
		logger.Warn("registration failed", zap.String("email", user.Email), zap.Error(err))
		return fail(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "User registered successfully",
	})
}

// LoginRequest represents the request body for password login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// HandleLogin handles password login and issues a token.
func (h *AuthHandler) HandleLogin(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, apperrors.Validation("Invalid request body"))
	}
	if err := h.validate.Struct(req); err != nil {
		return failValidation(c, err)
	}

	token, user, err := h.authService.LoginUser(req.Email, req.Password)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"token":   token,
		"user": fiber.Map{
			"id":       user.ID,
			"username": user.Username,
			"role":     user.Role,
		},
	})
}

// GoogleLoginRequest represents the request body for Google OAuth login.
type GoogleLoginRequest struct {
	TokenID string `json:"tokenId" validate:"required"`
}

// HandleGoogleLogin verifies a Google-issued ID token, provisioning a local
// account on first login, and issues a local token.
func (h *AuthHandler) HandleGoogleLogin(c *fiber.Ctx) error {
	var req GoogleLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, apperrors.Validation("Invalid request body"))
	}
	if err := h.validate.Struct(req); err != nil {
		return failValidation(c, err)
	}

	token, user, err := h.authService.GoogleLogin(c.Context(), req.TokenID)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"token":   token,
		"user": fiber.Map{
			"id":       user.ID,
			"username": user.Username,
			"role":     user.Role,
		},
	})
}
