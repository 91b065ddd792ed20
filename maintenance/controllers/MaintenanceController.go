package controllers

import (
	"strings"

	"property-management-backend/apperrors"
	"property-management-backend/config"
	"property-management-backend/db/models"
	"property-management-backend/maintenance/repositories"
	"property-management-backend/middleware"
	"property-management-backend/utils"
	"property-management-backend/utils/pagination"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type MaintenanceController struct {
	MaintenanceRepo repositories.MaintenanceRepository
}

// CreateMaintenanceRequest represents the request body for reporting an issue
type CreateMaintenanceRequest struct {
	ApartmentID   uint             `json:"apartment_id"`
	TenantID      uint             `json:"tenant_id"`
	Description   string           `json:"description"`
	Priority      int              `json:"priority"`
	ReportedDate  utils.DateOnly   `json:"reported_date"`
	ScheduledDate *utils.DateOnly  `json:"scheduled_date"`
	Cost          *decimal.Decimal `json:"cost"`
}

func (mc *MaintenanceController) CreateRequestController(c *fiber.Ctx) error {
	var req CreateMaintenanceRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
	}

	fields := map[string]string{}
	if req.ApartmentID == 0 {
		fields["apartment_id"] = "Apartment is required"
	}
	if req.TenantID == 0 {
		fields["tenant_id"] = "Tenant is required"
	}
	if strings.TrimSpace(req.Description) == "" {
		fields["description"] = "Description is required"
	}
	if req.Priority < 1 || req.Priority > 5 {
		fields["priority"] = "Priority must be between 1 and 5"
	}
	if len(fields) > 0 {
		return utils.RespondError(c, apperrors.NewValidationError(fields))
	}

	if req.ReportedDate.IsZero() {
		req.ReportedDate = utils.Today()
	}

	// Scoped staff can only raise issues against their own location's stock.
	if _, scoped := middleware.LocationScope(c); scoped {
		locationID, err := mc.MaintenanceRepo.ApartmentLocationID(req.ApartmentID)
		if err != nil {
			return utils.RespondError(c, err)
		}
		if err := middleware.AuthorizeLocation(c, locationID); err != nil {
			return utils.RespondError(c, err)
		}
	}

	request, err := mc.MaintenanceRepo.CreateRequest(&models.MaintenanceRequest{
		ApartmentID:   req.ApartmentID,
		TenantID:      req.TenantID,
		Description:   req.Description,
		Priority:      req.Priority,
		ReportedDate:  req.ReportedDate,
		ScheduledDate: req.ScheduledDate,
		Cost:          req.Cost,
	})
	if err != nil {
		config.Logger.Error("Failed to create maintenance request", zap.Error(err))
		return utils.RespondError(c, err)
	}

	config.Logger.Info("Maintenance request reported",
		zap.Uint("requestID", request.ID),
		zap.Uint("apartmentID", request.ApartmentID),
		zap.Int("priority", request.Priority))

	return c.Status(fiber.StatusCreated).JSON(request)
}

func (mc *MaintenanceController) GetFilteredRequestsController(c *fiber.Ctx) error {
	params := pagination.ParsePaginationParams(c)
	if err := pagination.ValidatePaginationParams(params); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "Invalid pagination parameters",
			"details": err.Error(),
		})
	}

	middleware.ApplyLocationScope(c, params.Filters)

	offset := (params.Page - 1) * params.PageSize
	requests, total, err := mc.MaintenanceRepo.GetFilteredRequests(params.PageSize, offset, params.Filters)
	if err != nil {
		config.Logger.Error("Failed to list maintenance requests", zap.Error(err))
		return utils.RespondError(c, err)
	}

	return c.JSON(pagination.NewPaginatedResponse(c, requests, total, params))
}

func (mc *MaintenanceController) GetRequestController(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "Invalid maintenance request id",
			"details": err.Error(),
		})
	}

	request, err := mc.MaintenanceRepo.GetRequestByID(uint(id))
	if err != nil {
		return utils.RespondError(c, err)
	}
	if request.Apartment != nil {
		if err := middleware.AuthorizeLocation(c, request.Apartment.LocationID); err != nil {
			return utils.RespondError(c, err)
		}
	}
	return c.JSON(request)
}

// authorizeRequestLocation loads the request's apartment to confirm a scoped
// account may touch it. Unscoped accounts skip the extra read.
func (mc *MaintenanceController) authorizeRequestLocation(c *fiber.Ctx, id uint) error {
	if _, scoped := middleware.LocationScope(c); !scoped {
		return nil
	}
	request, err := mc.MaintenanceRepo.GetRequestByID(id)
	if err != nil {
		return err
	}
	if request.Apartment == nil {
		return nil
	}
	return middleware.AuthorizeLocation(c, request.Apartment.LocationID)
}

func (mc *MaintenanceController) UpdateRequestController(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "Invalid maintenance request id",
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

	fields := utils.PickFields(body, "description", "priority", "scheduled_date", "completed", "cost")
	if len(fields) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "Validation failed",
			"details": "No updatable fields supplied",
		})
	}

	if err := mc.authorizeRequestLocation(c, uint(id)); err != nil {
		return utils.RespondError(c, err)
	}

	if err := mc.MaintenanceRepo.UpdateRequest(uint(id), fields); err != nil {
		return utils.RespondError(c, err)
	}

	request, err := mc.MaintenanceRepo.GetRequestByID(uint(id))
	if err != nil {
		return utils.RespondError(c, err)
	}
	return c.JSON(request)
}

func (mc *MaintenanceController) DeleteRequestController(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "Invalid maintenance request id",
			"details": err.Error(),
		})
	}

	if err := mc.authorizeRequestLocation(c, uint(id)); err != nil {
		return utils.RespondError(c, err)
	}

	if err := mc.MaintenanceRepo.DeleteRequest(uint(id)); err != nil {
		return utils.RespondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Maintenance request deleted"})
}
