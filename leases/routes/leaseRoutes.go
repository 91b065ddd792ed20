package routes

import (
	"property-management-backend/leases/controllers"
	"property-management-backend/leases/repositories"
	"property-management-backend/leases/services"
	"property-management-backend/middleware"
	"property-management-backend/permissions"

	"github.com/gofiber/fiber/v2"
)

func LeaseRouterInit(
	app *fiber.App,
	appCtx *middleware.AppContext,
	leaseRepository repositories.LeaseRepository,
	leaseService *services.LeaseService,
) {
	leaseController := &controllers.LeaseController{
		LeaseRepo:    leaseRepository,
		LeaseService: leaseService,
		AppCtx:       appCtx,
	}

	leaseRoutes := app.Group("/leases", middleware.ProtectedRoute(appCtx))
	leaseRoutes.Post("/",
		middleware.RequirePermission(appCtx, permissions.ResourceLeases, permissions.ActionCreate),
		leaseController.CreateLeaseController)
	leaseRoutes.Get("/",
		middleware.RequirePermission(appCtx, permissions.ResourceLeases, permissions.ActionRead),
		leaseController.GetFilteredLeasesController)
	leaseRoutes.Get("/:id",
		middleware.RequirePermission(appCtx, permissions.ResourceLeases, permissions.ActionRead),
		leaseController.GetLeaseController)
	leaseRoutes.Put("/:id",
		middleware.RequirePermission(appCtx, permissions.ResourceLeases, permissions.ActionUpdate),
		leaseController.UpdateLeaseController)
	leaseRoutes.Post("/:id/terminate",
		middleware.RequirePermission(appCtx, permissions.ResourceLeases, permissions.ActionUpdate),
		leaseController.TerminateLeaseController)
	leaseRoutes.Delete("/:id",
		middleware.RequirePermission(appCtx, permissions.ResourceLeases, permissions.ActionDelete),
		leaseController.DeleteLeaseController)
}
