package routes

import (
	"property-management-backend/complaints/controllers"
	"property-management-backend/complaints/repositories"
	"property-management-backend/middleware"
	"property-management-backend/permissions"

	"github.com/gofiber/fiber/v2"
)

func ComplaintRouterInit(
	app *fiber.App,
	appCtx *middleware.AppContext,
	complaintRepository repositories.ComplaintRepository,
) {
	complaintController := &controllers.ComplaintController{
		ComplaintRepo: complaintRepository,
	}

	complaintRoutes := app.Group("/complaints", middleware.ProtectedRoute(appCtx))
	complaintRoutes.Post("/",
		middleware.RequirePermission(appCtx, permissions.ResourceComplaints, permissions.ActionCreate),
		complaintController.CreateComplaintController)
	complaintRoutes.Get("/",
		middleware.RequirePermission(appCtx, permissions.ResourceComplaints, permissions.ActionRead),
		complaintController.GetFilteredComplaintsController)
	complaintRoutes.Get("/:id",
		middleware.RequirePermission(appCtx, permissions.ResourceComplaints, permissions.ActionRead),
		complaintController.GetComplaintController)
	complaintRoutes.Put("/:id",
		middleware.RequirePermission(appCtx, permissions.ResourceComplaints, permissions.ActionUpdate),
		complaintController.UpdateComplaintController)
	complaintRoutes.Delete("/:id",
		middleware.RequirePermission(appCtx, permissions.ResourceComplaints, permissions.ActionDelete),
		complaintController.DeleteComplaintController)
}
