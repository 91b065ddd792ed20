package middleware

import (
	"property-management-backend/config"
	"property-management-backend/permissions"
	"property-management-backend/token"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// RequirePermission is the single authorization boundary. It resolves the
// authenticated user's role and consults the permission table; handlers
// never re-check permissions themselves.
func RequirePermission(ctx *AppContext, resource string, action permissions.Action) fiber.Handler {
	return func(c *fiber.Ctx) error {
		payload, ok := c.Locals("user").(*token.Payload)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Unauthorized",
				"error":   "Authentication required",
			})
		}

		user, err := ctx.FetchUser(payload.Username)
		if err != nil {
			config.Logger.Error("Failed to resolve authenticated user",
				zap.String("username", payload.Username),
				zap.Error(err),
			)
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Unauthorized",
				"error":   "Unknown account",
			})
		}

		if !user.Active {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"message": "Forbidden",
				"error":   "Account is disabled",
			})
		}

		if !permissions.HasPermission(user.Role, resource, action) {
			config.Logger.Warn("Permission denied",
				zap.String("username", user.Username),
				zap.String("role", string(user.Role)),
				zap.String("resource", resource),
				zap.String("action", string(action)),
			)
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"message": "Forbidden",
				"error":   "You do not have permission to " + string(action) + " " + resource,
			})
		}

		// Location-scoped roles must carry an assignment; without one
		// there is no partition to confine them to.
		if permissions.IsLocationScoped(user.Role) && user.LocationID == nil {
			config.Logger.Warn("Scoped account has no location assignment",
				zap.String("username", user.Username),
				zap.String("role", string(user.Role)),
			)
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"message": "Forbidden",
				"error":   "No location assigned to this account",
			})
		}

		// The account is pinned in locals so the scope helpers can narrow
		// list queries and refuse record access outside the assignment.
		c.Locals("account", user)
		return c.Next()
	}
}
