package middleware

import (
	"github.com/gofiber/fiber/v2"

	"github.com/betwise/picks-backend/internal/pkg/usercontext"
)

// RequireRoles allows the request through only when the resolved caller
// holds one of the given roles. Must run after APIKeyAuthMiddleware.
func RequireRoles(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userCtx := usercontext.GetUserContext(c)
		if !userCtx.IsLoggedIn {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized", "message": "Authentication required"})
		}
		for _, role := range roles {
			if userCtx.Role == role {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "forbidden", "message": "Insufficient role"})
	}
}
