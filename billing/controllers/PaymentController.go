package controllers

import (
	"property-management-backend/billing/repositories"
	"property-management-backend/billing/services"
	"property-management-backend/config"
	"property-management-backend/middleware"
	"property-management-backend/utils"
	"property-management-backend/utils/pagination"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type PaymentController struct {
	PaymentRepo    repositories.PaymentRepository
	PaymentService *services.PaymentService
	AppCtx         *middleware.AppContext
}

// RecordPaymentRequest represents the request body for settling an invoice
type RecordPaymentRequest struct {
	InvoiceID   uint            `json:"invoice_id"`
	TenantID    uint            `json:"tenant_id"`
	Amount      decimal.Decimal `json:"amount"`
	PaymentDate utils.DateOnly  `json:"payment_date"`
}

func (pc *PaymentController) RecordPaymentController(c *fiber.Ctx) error {
	var req RecordPaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
	}

	payment, err := pc.PaymentService.RecordPayment(req.InvoiceID, req.TenantID, req.Amount, req.PaymentDate)
	if err != nil {
		config.Logger.Error("Failed to record payment",
			zap.Uint("invoiceID", req.InvoiceID),
			zap.Error(err))
		return utils.RespondError(c, err)
	}

	pc.invalidateReports()
	config.Logger.Info("Payment recorded",
		zap.Uint("paymentID", payment.ID),
		zap.Uint("invoiceID", payment.InvoiceID),
		zap.String("receipt", payment.ReceiptNumber))

	return c.Status(fiber.StatusCreated).JSON(payment)
}

func (pc *PaymentController) GetFilteredPaymentsController(c *fiber.Ctx) error {
	params := pagination.ParsePaginationParams(c)
	if err := pagination.ValidatePaginationParams(params); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "Invalid pagination parameters",
			"details": err.Error(),
		})
	}

	offset := (params.Page - 1) * params.PageSize
	payments, total, err := pc.PaymentRepo.GetFilteredPayments(params.PageSize, offset, params.Filters)
	if err != nil {
		config.Logger.Error("Failed to list payments", zap.Error(err))
		return utils.RespondError(c, err)
	}

	return c.JSON(pagination.NewPaginatedResponse(c, payments, total, params))
}

func (pc *PaymentController) GetPaymentController(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "Invalid payment id",
			"details": err.Error(),
		})
	}

	payment, err := pc.PaymentRepo.GetPaymentByID(uint(id))
	if err != nil {
		return utils.RespondError(c, err)
	}
	return c.JSON(payment)
}

func (pc *PaymentController) invalidateReports() {
	if pc.AppCtx != nil {
		utils.InvalidateReportCache(pc.AppCtx.Ctx, pc.AppCtx.RedisClient)
	}
}
