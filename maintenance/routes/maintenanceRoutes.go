package routes

import (
	"property-management-backend/maintenance/controllers"
	"property-management-backend/maintenance/repositories"
	"property-management-backend/middleware"
	"property-management-backend/permissions"

	"github.com/gofiber/fiber/v2"
)

func MaintenanceRouterInit(
	app *fiber.App,
	appCtx *middleware.AppContext,
	maintenanceRepository repositories.MaintenanceRepository,
) {
	maintenanceController := &controllers.MaintenanceController{
		MaintenanceRepo: maintenanceRepository,
	}

	maintenanceRoutes := app.Group("/maintenance-requests", middleware.ProtectedRoute(appCtx))
	maintenanceRoutes.Post("/",
		middleware.RequirePermission(appCtx, permissions.ResourceMaintenance, permissions.ActionCreate),
		maintenanceController.CreateRequestController)
	maintenanceRoutes.Get("/",
		middleware.RequirePermission(appCtx, permissions.ResourceMaintenance, permissions.ActionRead),
		maintenanceController.GetFilteredRequestsController)
	maintenanceRoutes.Get("/:id",
		middleware.RequirePermission(appCtx, permissions.ResourceMaintenance, permissions.ActionRead),
		maintenanceController.GetRequestController)
	maintenanceRoutes.Put("/:id",
		middleware.RequirePermission(appCtx, permissions.ResourceMaintenance, permissions.ActionUpdate),
		maintenanceController.UpdateRequestController)
	maintenanceRoutes.Delete("/:id",
		middleware.RequirePermission(appCtx, permissions.ResourceMaintenance, permissions.ActionDelete),
		maintenanceController.DeleteRequestController)
}
