package controllers

import (
	"strings"

	"property-management-backend/apperrors"
	"property-management-backend/complaints/repositories"
	"property-management-backend/config"
	"property-management-backend/db/models"
	"property-management-backend/middleware"
	"property-management-backend/utils"
	"property-management-backend/utils/pagination"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type ComplaintController struct {
	ComplaintRepo repositories.ComplaintRepository
}

// CreateComplaintRequest represents the request body for filing a complaint
type CreateComplaintRequest struct {
	TenantID      uint           `json:"tenant_id"`
	Description   string         `json:"description"`
	SubmittedDate utils.DateOnly `json:"submitted_date"`
}

func (cc *ComplaintController) CreateComplaintController(c *fiber.Ctx) error {
	var req CreateComplaintRequest
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
	if strings.TrimSpace(req.Description) == "" {
		fields["description"] = "Description is required"
	}
	if len(fields) > 0 {
		return utils.RespondError(c, apperrors.NewValidationError(fields))
	}

	if req.SubmittedDate.IsZero() {
		req.SubmittedDate = utils.Today()
	}

	if err := cc.authorizeComplainantLocation(c, req.TenantID); err != nil {
		return utils.RespondError(c, err)
	}

	complaint, err := cc.ComplaintRepo.CreateComplaint(&models.Complaint{
		TenantID:      req.TenantID,
		Description:   req.Description,
		SubmittedDate: req.SubmittedDate,
	})
	if err != nil {
		config.Logger.Error("Failed to create complaint", zap.Error(err))
		return utils.RespondError(c, err)
	}

	config.Logger.Info("Complaint filed",
		zap.Uint("complaintID", complaint.ID),
		zap.Uint("tenantID", complaint.TenantID))

	return c.Status(fiber.StatusCreated).JSON(complaint)
}

func (cc *ComplaintController) GetFilteredComplaintsController(c *fiber.Ctx) error {
	params := pagination.ParsePaginationParams(c)
	if err := pagination.ValidatePaginationParams(params); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "Invalid pagination parameters",
			"details": err.Error(),
		})
	}

	middleware.ApplyLocationScope(c, params.Filters)

	offset := (params.Page - 1) * params.PageSize
	complaints, total, err := cc.ComplaintRepo.GetFilteredComplaints(params.PageSize, offset, params.Filters)
	if err != nil {
		config.Logger.Error("Failed to list complaints", zap.Error(err))
		return utils.RespondError(c, err)
	}

	return c.JSON(pagination.NewPaginatedResponse(c, complaints, total, params))
}

func (cc *ComplaintController) GetComplaintController(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "Invalid complaint id",
			"details": err.Error(),
		})
	}

	complaint, err := cc.ComplaintRepo.GetComplaintByID(uint(id))
	if err != nil {
		return utils.RespondError(c, err)
	}
	if err := cc.authorizeComplainantLocation(c, complaint.TenantID); err != nil {
		return utils.RespondError(c, err)
	}
	return c.JSON(complaint)
}

// authorizeComplainantLocation confines scoped accounts to complaints from
// tenants housed at their location. Complaints from tenants with no active
// lease stay open to every location.
func (cc *ComplaintController) authorizeComplainantLocation(c *fiber.Ctx, tenantID uint) error {
	if _, scoped := middleware.LocationScope(c); !scoped {
		return nil
	}
	locationID, err := cc.ComplaintRepo.TenantLocationID(tenantID)
	if err != nil {
		return err
	}
	if locationID == nil {
		return nil
	}
	return middleware.AuthorizeLocation(c, *locationID)
}

func (cc *ComplaintController) UpdateComplaintController(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "Invalid complaint id",
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

	fields := utils.PickFields(body, "description", "resolved")
	if len(fields) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "Validation failed",
			"details": "No updatable fields supplied",
		})
	}

	complaint, err := cc.ComplaintRepo.GetComplaintByID(uint(id))
	if err != nil {
		return utils.RespondError(c, err)
	}
	if err := cc.authorizeComplainantLocation(c, complaint.TenantID); err != nil {
		return utils.RespondError(c, err)
	}

	if err := cc.ComplaintRepo.UpdateComplaint(uint(id), fields); err != nil {
		return utils.RespondError(c, err)
	}

	complaint, err = cc.ComplaintRepo.GetComplaintByID(uint(id))
	if err != nil {
		return utils.RespondError(c, err)
	}
	return c.JSON(complaint)
}

func (cc *ComplaintController) DeleteComplaintController(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "Invalid complaint id",
			"details": err.Error(),
		})
	}

	if _, scoped := middleware.LocationScope(c); scoped {
		complaint, err := cc.ComplaintRepo.GetComplaintByID(uint(id))
		if err != nil {
			return utils.RespondError(c, err)
		}
		if err := cc.authorizeComplainantLocation(c, complaint.TenantID); err != nil {
			return utils.RespondError(c, err)
		}
	}

	if err := cc.ComplaintRepo.DeleteComplaint(uint(id)); err != nil {
		return utils.RespondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Complaint deleted"})
}
