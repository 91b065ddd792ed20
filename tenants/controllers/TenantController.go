package controllers

import (
	"property-management-backend/apperrors"
	"property-management-backend/config"
	"property-management-backend/db/models"
	"property-management-backend/middleware"
	searchServices "property-management-backend/search/services"
	"property-management-backend/tenants/repositories"
	"property-management-backend/tenants/services"
	"property-management-backend/utils"
	"property-management-backend/utils/pagination"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type TenantController struct {
	TenantRepo repositories.TenantRepository
	Indexer    searchServices.Indexer
}

// CreateTenantRequest represents the request body for registering a tenant
type CreateTenantRequest struct {
	FirstName         string                   `json:"first_name"`
	LastName          string                   `json:"last_name"`
	DateOfBirth       utils.DateOnly           `json:"date_of_birth"`
	NINumber          string                   `json:"ni_number"`
	Email             string                   `json:"email"`
	Phone             string                   `json:"phone"`
	Occupation        string                   `json:"occupation"`
	AnnualSalary      decimal.Decimal          `json:"annual_salary"`
	HasPets           bool                     `json:"has_pets"`
	RightToRent       bool                     `json:"right_to_rent"`
	CreditCheckStatus models.CreditCheckStatus `json:"credit_check_status"`
}

func (tc *TenantController) CreateTenantController(c *fiber.Ctx) error {
	var req CreateTenantRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
	}

	tenant := &models.Tenant{
		FirstName:         req.FirstName,
		LastName:          req.LastName,
		DateOfBirth:       req.DateOfBirth,
		NINumber:          req.NINumber,
		Email:             req.Email,
		Phone:             req.Phone,
		Occupation:        req.Occupation,
		AnnualSalary:      req.AnnualSalary,
		HasPets:           req.HasPets,
		RightToRent:       req.RightToRent,
		CreditCheckStatus: req.CreditCheckStatus,
	}
	if tenant.CreditCheckStatus == "" {
		tenant.CreditCheckStatus = models.CreditCheckPending
	}

	if fields := services.ValidateTenant(tenant); len(fields) > 0 {
		return utils.RespondError(c, apperrors.NewValidationError(fields))
	}

	created, err := tc.TenantRepo.CreateTenant(tenant)
	if err != nil {
		config.Logger.Error("Failed to create tenant", zap.Error(err))
		return utils.RespondError(c, err)
	}

	if tc.Indexer != nil {
		tc.Indexer.IndexDocument(searchServices.TenantDocID(created.ID), searchServices.TenantDocument(created))
	}

	config.Logger.Info("Tenant created",
		zap.Uint("tenantID", created.ID),
		zap.String("email", created.Email))

	return c.Status(fiber.StatusCreated).JSON(created)
}

func (tc *TenantController) GetFilteredTenantsController(c *fiber.Ctx) error {
	params := pagination.ParsePaginationParams(c)
	if err := pagination.ValidatePaginationParams(params); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "Invalid pagination parameters",
			"details": err.Error(),
		})
	}

	middleware.ApplyLocationScope(c, params.Filters)

	offset := (params.Page - 1) * params.PageSize
	tenants, total, err := tc.TenantRepo.GetFilteredTenants(params.PageSize, offset, params.Filters)
	if err != nil {
		config.Logger.Error("Failed to list tenants", zap.Error(err))
		return utils.RespondError(c, err)
	}

	return c.JSON(pagination.NewPaginatedResponse(c, tenants, total, params))
}

func (tc *TenantController) GetTenantController(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "Invalid tenant id",
			"details": err.Error(),
		})
	}

	if err := tc.authorizeTenantLocation(c, uint(id)); err != nil {
		return utils.RespondError(c, err)
	}

	tenant, err := tc.TenantRepo.GetTenantByID(uint(id))
	if err != nil {
		return utils.RespondError(c, err)
	}
	return c.JSON(tenant)
}

// authorizeTenantLocation confines scoped accounts to tenants housed at
// their location. Tenants with no active lease are open to every location,
// so front desk staff anywhere can onboard them.
func (tc *TenantController) authorizeTenantLocation(c *fiber.Ctx, id uint) error {
	if _, scoped := middleware.LocationScope(c); !scoped {
		return nil
	}
	locationID, err := tc.TenantRepo.ActiveLeaseLocationID(id)
	if err != nil {
		return err
	}
	if locationID == nil {
		return nil
	}
	return middleware.AuthorizeLocation(c, *locationID)
}

func (tc *TenantController) UpdateTenantController(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "Invalid tenant id",
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

	fields := utils.PickFields(body,
		"first_name", "last_name", "date_of_birth", "email", "phone",
		"occupation", "annual_salary", "has_pets", "right_to_rent",
		"credit_check_status")
	if len(fields) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "Validation failed",
			"details": "No updatable fields supplied",
		})
	}

	if err := tc.authorizeTenantLocation(c, uint(id)); err != nil {
		return utils.RespondError(c, err)
	}

	if err := tc.TenantRepo.UpdateTenant(uint(id), fields); err != nil {
		return utils.RespondError(c, err)
	}

	tenant, err := tc.TenantRepo.GetTenantByID(uint(id))
	if err != nil {
		return utils.RespondError(c, err)
	}

	if tc.Indexer != nil {
		tc.Indexer.IndexDocument(searchServices.TenantDocID(tenant.ID), searchServices.TenantDocument(tenant))
	}

	return c.JSON(tenant)
}

func (tc *TenantController) DeleteTenantController(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "Invalid tenant id",
			"details": err.Error(),
		})
	}

	if err := tc.authorizeTenantLocation(c, uint(id)); err != nil {
		return utils.RespondError(c, err)
	}

	if err := tc.TenantRepo.DeleteTenant(uint(id)); err != nil {
		return utils.RespondError(c, err)
	}

	if tc.Indexer != nil {
		tc.Indexer.DeleteDocument(searchServices.TenantDocID(uint(id)))
	}

	return c.JSON(fiber.Map{"message": "Tenant deleted"})
}
