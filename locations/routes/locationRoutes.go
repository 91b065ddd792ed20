package routes

import (
	"property-management-backend/locations/controllers"
	"property-management-backend/locations/repositories"
	"property-management-backend/middleware"
	"property-management-backend/permissions"

	"github.com/gofiber/fiber/v2"
)

func LocationRouterInit(
	app *fiber.App,
	appCtx *middleware.AppContext,
	locationRepository repositories.LocationRepository,
) {
	locationController := &controllers.LocationController{
		LocationRepo: locationRepository,
		AppCtx:       appCtx,
	}

	locationRoutes := app.Group("/locations", middleware.ProtectedRoute(appCtx))
	locationRoutes.Post("/",
		middleware.RequirePermission(appCtx, permissions.ResourceLocations, permissions.ActionCreate),
		locationController.CreateLocationController)
	locationRoutes.Get("/",
		middleware.RequirePermission(appCtx, permissions.ResourceLocations, permissions.ActionRead),
		locationController.GetAllLocationsController)
	locationRoutes.Get("/:id",
		middleware.RequirePermission(appCtx, permissions.ResourceLocations, permissions.ActionRead),
		locationController.GetLocationController)
	locationRoutes.Put("/:id",
		middleware.RequirePermission(appCtx, permissions.ResourceLocations, permissions.ActionUpdate),
		locationController.UpdateLocationController)
	locationRoutes.Delete("/:id",
		middleware.RequirePermission(appCtx, permissions.ResourceLocations, permissions.ActionDelete),
		locationController.DeleteLocationController)
}
