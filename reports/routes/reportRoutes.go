package routes

import (
	"property-management-backend/middleware"
	"property-management-backend/permissions"
	"property-management-backend/reports/controllers"
	"property-management-backend/reports/repositories"

	"github.com/gofiber/fiber/v2"
)

func ReportRouterInit(
	app *fiber.App,
	appCtx *middleware.AppContext,
	reportRepository repositories.ReportRepository,
) {
	reportController := &controllers.ReportController{
		ReportRepo: reportRepository,
		AppCtx:     appCtx,
	}

	reportRoutes := app.Group("/reports",
		middleware.ProtectedRoute(appCtx),
		middleware.RequirePermission(appCtx, permissions.ResourceReports, permissions.ActionRead))

	reportRoutes.Get("/occupancy", reportController.OccupancySummaryController)
	reportRoutes.Get("/revenue", reportController.RevenueSummaryController)
	reportRoutes.Get("/financial-summary", reportController.FinancialSummaryController)
	reportRoutes.Get("/financial-summary/export", reportController.ExportFinancialSummaryController)
	reportRoutes.Get("/late-invoices", reportController.LateInvoicesController)
	reportRoutes.Get("/revenue-trend", reportController.RevenueTrendController)
	reportRoutes.Get("/occupancy-trend", reportController.OccupancyTrendController)
}
