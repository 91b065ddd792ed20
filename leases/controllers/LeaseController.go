package controllers

import (
	"property-management-backend/config"
	"property-management-backend/db/models"
	"property-management-backend/leases/repositories"
	"property-management-backend/leases/services"
	"property-management-backend/middleware"
	"property-management-backend/utils"
	"property-management-backend/utils/pagination"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type LeaseController struct {
	LeaseRepo    repositories.LeaseRepository
	LeaseService *services.LeaseService
	AppCtx       *middleware.AppContext
}

// CreateLeaseRequest represents the request body for signing a lease
type CreateLeaseRequest struct {
	TenantID    uint            `json:"tenant_id"`
	ApartmentID uint            `json:"apartment_id"`
	StartDate   utils.DateOnly  `json:"start_date"`
	EndDate     utils.DateOnly  `json:"end_date"`
	MonthlyRent decimal.Decimal `json:"monthly_rent"`
}

func (lc *LeaseController) CreateLeaseController(c *fiber.Ctx) error {
	var req CreateLeaseRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
	}

	lease, err := lc.LeaseService.CreateLease(&models.LeaseAgreement{
		TenantID:    req.TenantID,
		ApartmentID: req.ApartmentID,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		MonthlyRent: req.MonthlyRent,
	})
	if err != nil {
		config.Logger.Error("Failed to create lease", zap.Error(err))
		return utils.RespondError(c, err)
	}

	lc.invalidateReports()
	config.Logger.Info("Lease created",
		zap.Uint("leaseID", lease.ID),
		zap.Uint("tenantID", lease.TenantID),
		zap.Uint("apartmentID", lease.ApartmentID))

	return c.Status(fiber.StatusCreated).JSON(lease)
}

func (lc *LeaseController) TerminateLeaseController(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "Invalid lease id",
			"details": err.Error(),
		})
	}

	lease, err := lc.LeaseService.TerminateLease(uint(id))
	if err != nil {
		return utils.RespondError(c, err)
	}

	lc.invalidateReports()
	config.Logger.Info("Lease terminated", zap.Uint("leaseID", lease.ID))
	return c.JSON(lease)
}

func (lc *LeaseController) GetFilteredLeasesController(c *fiber.Ctx) error {
	params := pagination.ParsePaginationParams(c)
	if err := pagination.ValidatePaginationParams(params); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "Invalid pagination parameters",
			"details": err.Error(),
		})
	}

	middleware.ApplyLocationScope(c, params.Filters)

	offset := (params.Page - 1) * params.PageSize
	leases, total, err := lc.LeaseRepo.GetFilteredLeases(params.PageSize, offset, params.Filters)
	if err != nil {
		config.Logger.Error("Failed to list leases", zap.Error(err))
		return utils.RespondError(c, err)
	}

	return c.JSON(pagination.NewPaginatedResponse(c, leases, total, params))
}

func (lc *LeaseController) GetLeaseController(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "Invalid lease id",
			"details": err.Error(),
		})
	}

	lease, err := lc.LeaseRepo.GetLeaseByID(uint(id))
	if err != nil {
		return utils.RespondError(c, err)
	}
	if lease.Apartment != nil {
		if err := middleware.AuthorizeLocation(c, lease.Apartment.LocationID); err != nil {
			return utils.RespondError(c, err)
		}
	}
	return c.JSON(lease)
}

func (lc *LeaseController) UpdateLeaseController(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "Invalid lease id",
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

	// Occupancy-affecting state changes go through the terminate endpoint,
	// so "active" is deliberately not updatable here.
	fields := utils.PickFields(body, "start_date", "end_date", "monthly_rent")
	if len(fields) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "Validation failed",
			"details": "No updatable fields supplied",
		})
	}

	if err := lc.LeaseRepo.UpdateLease(uint(id), fields); err != nil {
		return utils.RespondError(c, err)
	}

	lc.invalidateReports()
	lease, err := lc.LeaseRepo.GetLeaseByID(uint(id))
	if err != nil {
		return utils.RespondError(c, err)
	}
	return c.JSON(lease)
}

func (lc *LeaseController) DeleteLeaseController(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "Invalid lease id",
			"details": err.Error(),
		})
	}

	if err := lc.LeaseRepo.DeleteLease(uint(id)); err != nil {
		return utils.RespondError(c, err)
	}
	lc.invalidateReports()
	return c.JSON(fiber.Map{"message": "Lease deleted"})
}

func (lc *LeaseController) invalidateReports() {
	if lc.AppCtx != nil {
		utils.InvalidateReportCache(lc.AppCtx.Ctx, lc.AppCtx.RedisClient)
	}
}
