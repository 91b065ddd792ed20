package controllers

import (
	"encoding/json"
	"time"

	"property-management-backend/config"
	"property-management-backend/middleware"
	"property-management-backend/reports/repositories"
	"property-management-backend/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const reportCacheTTL = 10 * time.Minute

type ReportController struct {
	ReportRepo repositories.ReportRepository
	AppCtx     *middleware.AppContext
}

// cached serves the handler's result through Redis. Cache failures are
// logged and the report is computed fresh, so Redis being down degrades
// latency, not correctness.
func (rc *ReportController) cached(c *fiber.Ctx, name string, compute func() (interface{}, error)) error {
	params := map[string]string{}
	c.Context().QueryArgs().VisitAll(func(key, value []byte) {
		params[string(key)] = string(value)
	})
	params["_report"] = name
	cacheKey := utils.GenerateQueryHash(utils.ReportCacheResource, params)

	if cachedBody, err := rc.AppCtx.RedisClient.Get(rc.AppCtx.Ctx, cacheKey).Result(); err == nil {
		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		return c.SendString(cachedBody)
	} else if err != redis.Nil {
		config.Logger.Warn("Report cache read failed", zap.String("key", cacheKey), zap.Error(err))
	}

	result, err := compute()
	if err != nil {
		config.Logger.Error("Report query failed", zap.String("report", name), zap.Error(err))
		return utils.RespondError(c, err)
	}

	body, err := json.Marshal(result)
	if err != nil {
		return utils.RespondError(c, err)
	}
	if err := rc.AppCtx.RedisClient.Set(rc.AppCtx.Ctx, cacheKey, body, reportCacheTTL).Err(); err != nil {
		config.Logger.Warn("Report cache write failed", zap.String("key", cacheKey), zap.Error(err))
	}

	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Send(body)
}

func (rc *ReportController) OccupancySummaryController(c *fiber.Ctx) error {
	return rc.cached(c, "occupancy", func() (interface{}, error) {
		return rc.ReportRepo.OccupancySummary(c.Query("city"))
	})
}

func (rc *ReportController) RevenueSummaryController(c *fiber.Ctx) error {
	return rc.cached(c, "revenue", func() (interface{}, error) {
		return rc.ReportRepo.RevenueSummary(c.Query("city"))
	})
}

func (rc *ReportController) FinancialSummaryController(c *fiber.Ctx) error {
	return rc.cached(c, "financial", func() (interface{}, error) {
		return rc.ReportRepo.FinancialSummary(c.Query("city"))
	})
}

func (rc *ReportController) LateInvoicesController(c *fiber.Ctx) error {
	asOf := utils.Today()
	if raw := c.Query("as_of"); raw != "" {
		parsed, err := utils.ParseFlexibleDate(raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error":   "Invalid as_of date",
				"details": err.Error(),
			})
		}
		asOf = parsed
	}

	return rc.cached(c, "late-invoices", func() (interface{}, error) {
		return rc.ReportRepo.LateInvoices(asOf)
	})
}

func (rc *ReportController) RevenueTrendController(c *fiber.Ctx) error {
	from, to, err := parseTrendRange(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "Invalid date range",
			"details": err.Error(),
		})
	}

	return rc.cached(c, "revenue-trend", func() (interface{}, error) {
		return rc.ReportRepo.RevenueTrend(c.Query("granularity"), from, to)
	})
}

func (rc *ReportController) OccupancyTrendController(c *fiber.Ctx) error {
	from, to, err := parseTrendRange(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "Invalid date range",
			"details": err.Error(),
		})
	}

	return rc.cached(c, "occupancy-trend", func() (interface{}, error) {
		return rc.ReportRepo.OccupancyTrend(c.Query("granularity"), from, to)
	})
}

// ExportFinancialSummaryController writes the financial summary to an Excel
// workbook and returns it as a download.
func (rc *ReportController) ExportFinancialSummaryController(c *fiber.Ctx) error {
	summary, err := rc.ReportRepo.FinancialSummary(c.Query("city"))
	if err != nil {
		config.Logger.Error("Financial summary export failed", zap.Error(err))
		return utils.RespondError(c, err)
	}

	headers := []string{"Total Invoiced", "Total Collected", "Outstanding", "Paid Invoices", "Unpaid Invoices"}
	rows := [][]interface{}{{
		summary.TotalInvoiced.StringFixed(2),
		summary.TotalCollected.StringFixed(2),
		summary.Outstanding.StringFixed(2),
		summary.PaidInvoices,
		summary.UnpaidInvoices,
	}}

	filePath, err := utils.GenerateExcel(rows, "financial_summary", headers)
	if err != nil {
		config.Logger.Error("Could not generate excel export", zap.Error(err))
		return utils.RespondError(c, err)
	}

	return c.Download(filePath)
}

func parseTrendRange(c *fiber.Ctx) (*utils.DateOnly, *utils.DateOnly, error) {
	var from, to *utils.DateOnly
	if raw := c.Query("from"); raw != "" {
		parsed, err := utils.ParseFlexibleDate(raw)
		if err != nil {
			return nil, nil, err
		}
		from = &parsed
	}
	if raw := c.Query("to"); raw != "" {
		parsed, err := utils.ParseFlexibleDate(raw)
		if err != nil {
			return nil, nil, err
		}
		to = &parsed
	}
	return from, to, nil
}
