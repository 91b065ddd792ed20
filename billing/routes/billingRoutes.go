package routes

import (
	"property-management-backend/billing/controllers"
	"property-management-backend/billing/repositories"
	"property-management-backend/billing/services"
	"property-management-backend/middleware"
	"property-management-backend/permissions"

	"github.com/gofiber/fiber/v2"
)

func BillingRouterInit(
	app *fiber.App,
	appCtx *middleware.AppContext,
	invoiceRepository repositories.InvoiceRepository,
	paymentRepository repositories.PaymentRepository,
	paymentService *services.PaymentService,
) {
	invoiceController := &controllers.InvoiceController{
		InvoiceRepo: invoiceRepository,
		AppCtx:      appCtx,
	}
	paymentController := &controllers.PaymentController{
		PaymentRepo:    paymentRepository,
		PaymentService: paymentService,
		AppCtx:         appCtx,
	}

	invoiceRoutes := app.Group("/invoices", middleware.ProtectedRoute(appCtx))
	invoiceRoutes.Post("/",
		middleware.RequirePermission(appCtx, permissions.ResourceInvoices, permissions.ActionCreate),
		invoiceController.CreateInvoiceController)
	invoiceRoutes.Get("/",
		middleware.RequirePermission(appCtx, permissions.ResourceInvoices, permissions.ActionRead),
		invoiceController.GetFilteredInvoicesController)
	invoiceRoutes.Get("/:id",
		middleware.RequirePermission(appCtx, permissions.ResourceInvoices, permissions.ActionRead),
		invoiceController.GetInvoiceController)
	invoiceRoutes.Put("/:id",
		middleware.RequirePermission(appCtx, permissions.ResourceInvoices, permissions.ActionUpdate),
		invoiceController.UpdateInvoiceController)
	invoiceRoutes.Delete("/:id",
		middleware.RequirePermission(appCtx, permissions.ResourceInvoices, permissions.ActionDelete),
		invoiceController.DeleteInvoiceController)

	paymentRoutes := app.Group("/payments", middleware.ProtectedRoute(appCtx))
	paymentRoutes.Post("/",
		middleware.RequirePermission(appCtx, permissions.ResourcePayments, permissions.ActionCreate),
		paymentController.RecordPaymentController)
	paymentRoutes.Get("/",
		middleware.RequirePermission(appCtx, permissions.ResourcePayments, permissions.ActionRead),
		paymentController.GetFilteredPaymentsController)
	paymentRoutes.Get("/:id",
		middleware.RequirePermission(appCtx, permissions.ResourcePayments, permissions.ActionRead),
		paymentController.GetPaymentController)
}
