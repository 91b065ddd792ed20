package controllers

import (
	"property-management-backend/config"
	"property-management-backend/search/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type SearchController struct {
	IndexingService *services.IndexingService
}

func NewSearchController(indexingService *services.IndexingService) *SearchController {
	return &SearchController{IndexingService: indexingService}
}

func (sc *SearchController) SearchController(c *fiber.Ctx) error {
	q := c.Query("q")
	if q == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "Validation failed",
			"details": "q query parameter is required",
		})
	}

	size := c.QueryInt("size", 20)
	hits, err := sc.IndexingService.Search(q, size)
	if err != nil {
		config.Logger.Error("Search query failed", zap.String("query", q), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "Internal server error",
			"details": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"query":   q,
		"count":   len(hits),
		"results": hits,
	})
}
