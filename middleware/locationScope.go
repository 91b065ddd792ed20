package middleware

import (
	"strconv"

	"property-management-backend/apperrors"
	"property-management-backend/db/models"
	"property-management-backend/permissions"

	"github.com/gofiber/fiber/v2"
)

// LocationScope reports the location a scoped account is confined to.
// Unscoped roles, and requests outside RequirePermission, get no scope.
func LocationScope(c *fiber.Ctx) (uint, bool) {
	account, ok := c.Locals("account").(*models.User)
	if !ok || !permissions.IsLocationScoped(account.Role) || account.LocationID == nil {
		return 0, false
	}
	return *account.LocationID, true
}

// ApplyLocationScope forces list queries from scoped accounts down to their
// assigned location, overriding any location filter the client supplied.
func ApplyLocationScope(c *fiber.Ctx, filters map[string]string) {
	if scope, ok := LocationScope(c); ok {
		delete(filters, "city")
		filters["location_id"] = strconv.FormatUint(uint64(scope), 10)
	}
}

// AuthorizeLocation refuses access to a record outside the scoped account's
// assigned location. Unscoped roles always pass.
func AuthorizeLocation(c *fiber.Ctx, locationID uint) error {
	account, ok := c.Locals("account").(*models.User)
	if ok && !permissions.CheckLocationAccess(account, locationID) {
		return apperrors.Forbidden("record belongs to another location")
	}
	return nil
}
