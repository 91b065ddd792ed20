package controllers

import (
	"strings"

	"property-management-backend/apperrors"
	"property-management-backend/config"
	"property-management-backend/db/models"
	"property-management-backend/locations/repositories"
	"property-management-backend/middleware"
	"property-management-backend/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type LocationController struct {
	LocationRepo repositories.LocationRepository
	AppCtx       *middleware.AppContext
}

// CreateLocationRequest represents the request body for adding a location
type CreateLocationRequest struct {
	City    string `json:"city"`
	Address string `json:"address"`
}

func (lc *LocationController) CreateLocationController(c *fiber.Ctx) error {
	var req CreateLocationRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
	}

	fields := map[string]string{}
	if strings.TrimSpace(req.City) == "" {
		fields["city"] = "City is required"
	}
	if strings.TrimSpace(req.Address) == "" {
		fields["address"] = "Address is required"
	}
	if len(fields) > 0 {
		return utils.RespondError(c, apperrors.NewValidationError(fields))
	}

	location, err := lc.LocationRepo.CreateLocation(&models.Location{
		City:    req.City,
		Address: req.Address,
	})
	if err != nil {
		config.Logger.Error("Failed to create location", zap.Error(err))
		return utils.RespondError(c, err)
	}

	lc.invalidateReports()
	config.Logger.Info("Location created",
		zap.Uint("locationID", location.ID),
		zap.String("city", location.City))

	return c.Status(fiber.StatusCreated).JSON(location)
}

func (lc *LocationController) GetAllLocationsController(c *fiber.Ctx) error {
	locations, err := lc.LocationRepo.GetAllLocations()
	if err != nil {
		config.Logger.Error("Failed to list locations", zap.Error(err))
		return utils.RespondError(c, err)
	}
	return c.JSON(locations)
}

func (lc *LocationController) GetLocationController(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "Invalid location id",
			"details": err.Error(),
		})
	}

	location, err := lc.LocationRepo.GetLocationByID(uint(id))
	if err != nil {
		return utils.RespondError(c, err)
	}
	return c.JSON(location)
}

func (lc *LocationController) UpdateLocationController(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "Invalid location id",
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

	fields := utils.PickFields(body, "city", "address")
	if len(fields) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "Validation failed",
			"details": "No updatable fields supplied",
		})
	}

	if err := lc.LocationRepo.UpdateLocation(uint(id), fields); err != nil {
		return utils.RespondError(c, err)
	}

	lc.invalidateReports()
	location, err := lc.LocationRepo.GetLocationByID(uint(id))
	if err != nil {
		return utils.RespondError(c, err)
	}
	return c.JSON(location)
}

func (lc *LocationController) DeleteLocationController(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "Invalid location id",
			"details": err.Error(),
		})
	}

	if err := lc.LocationRepo.DeleteLocation(uint(id)); err != nil {
		return utils.RespondError(c, err)
	}
	lc.invalidateReports()
	return c.JSON(fiber.Map{"message": "Location deleted"})
}

func (lc *LocationController) invalidateReports() {
	if lc.AppCtx != nil {
		utils.InvalidateReportCache(lc.AppCtx.Ctx, lc.AppCtx.RedisClient)
	}
}
