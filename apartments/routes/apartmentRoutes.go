package routes

import (
	"property-management-backend/apartments/controllers"
	"property-management-backend/apartments/repositories"
	"property-management-backend/middleware"
	"property-management-backend/permissions"
	searchServices "property-management-backend/search/services"

	"github.com/gofiber/fiber/v2"
)

func ApartmentRouterInit(
	app *fiber.App,
	appCtx *middleware.AppContext,
	apartmentRepository repositories.ApartmentRepository,
	indexer searchServices.Indexer,
) {
	apartmentController := &controllers.ApartmentController{
		ApartmentRepo: apartmentRepository,
		Indexer:       indexer,
		AppCtx:        appCtx,
	}

	apartmentRoutes := app.Group("/apartments", middleware.ProtectedRoute(appCtx))
	apartmentRoutes.Post("/",
		middleware.RequirePermission(appCtx, permissions.ResourceApartments, permissions.ActionCreate),
		apartmentController.CreateApartmentController)
	apartmentRoutes.Get("/",
		middleware.RequirePermission(appCtx, permissions.ResourceApartments, permissions.ActionRead),
		apartmentController.GetFilteredApartmentsController)
	apartmentRoutes.Get("/:id",
		middleware.RequirePermission(appCtx, permissions.ResourceApartments, permissions.ActionRead),
		apartmentController.GetApartmentController)
	apartmentRoutes.Put("/:id",
		middleware.RequirePermission(appCtx, permissions.ResourceApartments, permissions.ActionUpdate),
		apartmentController.UpdateApartmentController)
	apartmentRoutes.Delete("/:id",
		middleware.RequirePermission(appCtx, permissions.ResourceApartments, permissions.ActionDelete),
		apartmentController.DeleteApartmentController)
}
