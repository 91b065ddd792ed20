package routes

import (
	"property-management-backend/middleware"
	"property-management-backend/permissions"
	searchServices "property-management-backend/search/services"
	"property-management-backend/tenants/controllers"
	"property-management-backend/tenants/repositories"

	"github.com/gofiber/fiber/v2"
)

func TenantRouterInit(
	app *fiber.App,
	appCtx *middleware.AppContext,
	tenantRepository repositories.TenantRepository,
	indexer searchServices.Indexer,
) {
	tenantController := &controllers.TenantController{
		TenantRepo: tenantRepository,
		Indexer:    indexer,
	}

	tenantRoutes := app.Group("/tenants", middleware.ProtectedRoute(appCtx))
	tenantRoutes.Post("/",
		middleware.RequirePermission(appCtx, permissions.ResourceTenants, permissions.ActionCreate),
		tenantController.CreateTenantController)
	tenantRoutes.Get("/",
		middleware.RequirePermission(appCtx, permissions.ResourceTenants, permissions.ActionRead),
		tenantController.GetFilteredTenantsController)
	tenantRoutes.Get("/:id",
		middleware.RequirePermission(appCtx, permissions.ResourceTenants, permissions.ActionRead),
		tenantController.GetTenantController)
	tenantRoutes.Put("/:id",
		middleware.RequirePermission(appCtx, permissions.ResourceTenants, permissions.ActionUpdate),
		tenantController.UpdateTenantController)
	tenantRoutes.Delete("/:id",
		middleware.RequirePermission(appCtx, permissions.ResourceTenants, permissions.ActionDelete),
		tenantController.DeleteTenantController)
}
