package middleware

import (
	"strings"

	"mymirro/internal/models"
	"mymirro/internal/services"

	"github.com/gofiber/fiber/v2"
)

// Keys under which the verified identity is stored in the request context.
const (
	LocalUserID = "user_id"
	LocalRole   = "role"
)

// Protected is the identity check: it resolves the bearer token and attaches
// the decoded {id, role} to the request context. Role and ownership checks
// assume it has already run.
func Protected(authService *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success": false,
				"message": "Access Denied. No token provided.",
			})
		}

		// Expected format: "Bearer <token>"
		parts := strings.SplitN(authHeader, " ", 2)
		if !(len(parts) == 2 && parts[0] == "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success": false,
				"message": "Invalid or expired token",
			})
		}

		identity, err := authService.ValidateToken(parts[1])
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success": false,
				"message": "Invalid or expired token",
			})
		}

		c.Locals(LocalUserID, identity.ID)
		c.Locals(LocalRole, identity.Role)

		return c.Next()
	}
}

// RequireRole gates a route to exactly one role. Note this is stricter than
// "authenticated": an admin hitting a user-only route is rejected too.
func RequireRole(role string) fiber.Handler {
	message := "Access denied"
	switch role {
	case models.RoleAdmin:
		message = "Access Denied. Admins only."
	case models.RoleUser:
		message = "Access Denied. Users only."
	}

	return func(c *fiber.Ctx) error {
		if r, _ := c.Locals(LocalRole).(string); r != role {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"success": false,
				"message": message,
			})
		}
		return c.Next()
	}
}

// RequireSelfOrAdmin permits the request only when the path parameter equals
// the requester's own id, or the requester is an admin.
func RequireSelfOrAdmin(param string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, _ := c.Locals(LocalUserID).(string)
		role, _ := c.Locals(LocalRole).(string)
		if c.Params(param) != id && role != models.RoleAdmin {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"success": false,
				"message": "Access denied",
			})
		}
		return c.Next()
	}
}
