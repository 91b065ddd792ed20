package routes

import (
	"property-management-backend/middleware"
	"property-management-backend/permissions"
	"property-management-backend/search/controllers"

	"github.com/gofiber/fiber/v2"
)

func SearchRouterInit(
	app *fiber.App,
	appCtx *middleware.AppContext,
	searchController *controllers.SearchController,
) {
	app.Get("/search",
		middleware.ProtectedRoute(appCtx),
		middleware.RequirePermission(appCtx, permissions.ResourceSearch, permissions.ActionRead),
		searchController.SearchController)
}
