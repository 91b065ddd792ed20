package controllers

import (
	"property-management-backend/apartments/repositories"
	"property-management-backend/apperrors"
	"property-management-backend/config"
	"property-management-backend/db/models"
	"property-management-backend/middleware"
	searchServices "property-management-backend/search/services"
	"property-management-backend/utils"
	"property-management-backend/utils/pagination"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type ApartmentController struct {
	ApartmentRepo repositories.ApartmentRepository
	Indexer       searchServices.Indexer
	AppCtx        *middleware.AppContext
}

// CreateApartmentRequest represents the request body for adding an apartment
type CreateApartmentRequest struct {
	LocationID  uint            `json:"location_id"`
	Address     string          `json:"address"`
	Beds        int             `json:"beds"`
	MonthlyRent decimal.Decimal `json:"monthly_rent"`
}

func (ac *ApartmentController) CreateApartmentController(c *fiber.Ctx) error {
	var req CreateApartmentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
	}

	fields := map[string]string{}
	if req.LocationID == 0 {
		fields["location_id"] = "Location is required"
	}
	if req.Address == "" {
		fields["address"] = "Address is required"
	}
	if req.Beds < 1 {
		fields["beds"] = "Beds must be at least 1"
	}
	if req.MonthlyRent.LessThanOrEqual(decimal.Zero) {
		fields["monthly_rent"] = "Monthly rent must be positive"
	}
	if len(fields) > 0 {
		return utils.RespondError(c, apperrors.NewValidationError(fields))
	}

	apartment, err := ac.ApartmentRepo.CreateApartment(&models.Apartment{
		LocationID:  req.LocationID,
		Address:     req.Address,
		Beds:        req.Beds,
		MonthlyRent: req.MonthlyRent,
	})
	if err != nil {
		config.Logger.Error("Failed to create apartment", zap.Error(err))
		return utils.RespondError(c, err)
	}

	if ac.Indexer != nil {
		ac.Indexer.IndexDocument(searchServices.ApartmentDocID(apartment.ID), searchServices.ApartmentDocument(apartment))
	}
	ac.invalidateReports()
	config.Logger.Info("Apartment created",
		zap.Uint("apartmentID", apartment.ID),
		zap.Uint("locationID", apartment.LocationID))

	return c.Status(fiber.StatusCreated).JSON(apartment)
}

func (ac *ApartmentController) GetFilteredApartmentsController(c *fiber.Ctx) error {
	params := pagination.ParsePaginationParams(c)
	if err := pagination.ValidatePaginationParams(params); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "Invalid pagination parameters",
			"details": err.Error(),
		})
	}

	middleware.ApplyLocationScope(c, params.Filters)

	offset := (params.Page - 1) * params.PageSize
	apartments, total, err := ac.ApartmentRepo.GetFilteredApartments(params.PageSize, offset, params.Filters)
	if err != nil {
		config.Logger.Error("Failed to list apartments", zap.Error(err))
		return utils.RespondError(c, err)
	}

	return c.JSON(pagination.NewPaginatedResponse(c, apartments, total, params))
}

func (ac *ApartmentController) GetApartmentController(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "Invalid apartment id",
			"details": err.Error(),
		})
	}

	apartment, err := ac.ApartmentRepo.GetApartmentByID(uint(id))
	if err != nil {
		return utils.RespondError(c, err)
	}
	if err := middleware.AuthorizeLocation(c, apartment.LocationID); err != nil {
		return utils.RespondError(c, err)
	}
	return c.JSON(apartment)
}

func (ac *ApartmentController) UpdateApartmentController(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "Invalid apartment id",
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

	fields := utils.PickFields(body, "address", "beds", "monthly_rent", "occupied")
	if len(fields) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "Validation failed",
			"details": "No updatable fields supplied",
		})
	}

	if err := ac.ApartmentRepo.UpdateApartment(uint(id), fields); err != nil {
		return utils.RespondError(c, err)
	}

	ac.invalidateReports()
	apartment, err := ac.ApartmentRepo.GetApartmentByID(uint(id))
	if err != nil {
		return utils.RespondError(c, err)
	}
	if ac.Indexer != nil {
		ac.Indexer.IndexDocument(searchServices.ApartmentDocID(apartment.ID), searchServices.ApartmentDocument(apartment))
	}
	return c.JSON(apartment)
}

func (ac *ApartmentController) DeleteApartmentController(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "Invalid apartment id",
			"details": err.Error(),
		})
	}

	if err := ac.ApartmentRepo.DeleteApartment(uint(id)); err != nil {
		return utils.RespondError(c, err)
	}
	if ac.Indexer != nil {
		ac.Indexer.DeleteDocument(searchServices.ApartmentDocID(uint(id)))
	}
	ac.invalidateReports()
	return c.JSON(fiber.Map{"message": "Apartment deleted"})
}

func (ac *ApartmentController) invalidateReports() {
	if ac.AppCtx != nil {
		utils.InvalidateReportCache(ac.AppCtx.Ctx, ac.AppCtx.RedisClient)
	}
}
