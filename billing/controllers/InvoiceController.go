package controllers

import (
	"property-management-backend/apperrors"
	"property-management-backend/billing/repositories"
	"property-management-backend/config"
	"property-management-backend/db/models"
	"property-management-backend/middleware"
	"property-management-backend/utils"
	"property-management-backend/utils/pagination"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type InvoiceController struct {
	InvoiceRepo repositories.InvoiceRepository
	AppCtx      *middleware.AppContext
}

// CreateInvoiceRequest represents the request body for issuing an invoice
type CreateInvoiceRequest struct {
	TenantID  uint            `json:"tenant_id"`
	AmountDue decimal.Decimal `json:"amount_due"`
	DueDate   utils.DateOnly  `json:"due_date"`
	IssueDate utils.DateOnly  `json:"issue_date"`
}

func (ic *InvoiceController) CreateInvoiceController(c *fiber.Ctx) error {
	var req CreateInvoiceRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
	}

	fields := map[string]string{}
	if req.TenantID == 0 {
		fields["tenant_id"] = "Tenant is required"
	}
	if req.AmountDue.LessThanOrEqual(decimal.Zero) {
		fields["amount_due"] = "Amount due must be positive"
	}
	if req.DueDate.IsZero() {
		fields["due_date"] = "Due date is required"
	}
	if len(fields) > 0 {
		return utils.RespondError(c, apperrors.NewValidationError(fields))
	}

	invoice, err := ic.InvoiceRepo.CreateInvoice(&models.Invoice{
		TenantID:  req.TenantID,
		AmountDue: req.AmountDue,
		DueDate:   req.DueDate,
		IssueDate: req.IssueDate,
	})
	if err != nil {
		config.Logger.Error("Failed to create invoice", zap.Error(err))
		return utils.RespondError(c, err)
	}

	ic.invalidateReports()
	config.Logger.Info("Invoice created",
		zap.Uint("invoiceID", invoice.ID),
		zap.Uint("tenantID", invoice.TenantID))

	return c.Status(fiber.StatusCreated).JSON(invoice)
}

func (ic *InvoiceController) GetFilteredInvoicesController(c *fiber.Ctx) error {
	params := pagination.ParsePaginationParams(c)
	if err := pagination.ValidatePaginationParams(params); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "Invalid pagination parameters",
			"details": err.Error(),
		})
	}

	offset := (params.Page - 1) * params.PageSize
	invoices, total, err := ic.InvoiceRepo.GetFilteredInvoices(params.PageSize, offset, params.Filters)
	if err != nil {
		config.Logger.Error("Failed to list invoices", zap.Error(err))
		return utils.RespondError(c, err)
	}

	return c.JSON(pagination.NewPaginatedResponse(c, invoices, total, params))
}

func (ic *InvoiceController) GetInvoiceController(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "Invalid invoice id",
			"details": err.Error(),
		})
	}

	invoice, err := ic.InvoiceRepo.GetInvoiceByID(uint(id))
	if err != nil {
		return utils.RespondError(c, err)
	}
	return c.JSON(invoice)
}

func (ic *InvoiceController) UpdateInvoiceController(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "Invalid invoice id",
			"details": err.Error(),
		})
	}

	var body map[string]interface{}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
	}

	// Paid is only flipped by RecordPayment so the flag cannot diverge from
	// the payments table.
	fields := utils.PickFields(body, "amount_due", "due_date", "issue_date")
	if len(fields) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "Validation failed",
			"details": "No updatable fields supplied",
		})
	}

	if err := ic.InvoiceRepo.UpdateInvoice(uint(id), fields); err != nil {
		return utils.RespondError(c, err)
	}

	ic.invalidateReports()
	invoice, err := ic.InvoiceRepo.GetInvoiceByID(uint(id))
	if err != nil {
		return utils.RespondError(c, err)
	}
	return c.JSON(invoice)
}

func (ic *InvoiceController) DeleteInvoiceController(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "Invalid invoice id",
			"details": err.Error(),
		})
	}

	if err := ic.InvoiceRepo.DeleteInvoice(uint(id)); err != nil {
		return utils.RespondError(c, err)
	}

	ic.invalidateReports()
	return c.JSON(fiber.Map{"message": "Invoice deleted"})
}

func (ic *InvoiceController) invalidateReports() {
	if ic.AppCtx != nil {
		utils.InvalidateReportCache(ic.AppCtx.Ctx, ic.AppCtx.RedisClient)
	}
}
