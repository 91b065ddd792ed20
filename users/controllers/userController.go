package controllers

import (
	"property-management-backend/apperrors"
	"property-management-backend/config"
	"property-management-backend/db/models"
	"property-management-backend/users/repositories"
	"property-management-backend/users/services"
	"property-management-backend/utils"
	"property-management-backend/utils/pagination"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type UserController struct {
	UserRepo repositories.UserRepository
}

// CreateUserRequest represents the request body for provisioning an account
type CreateUserRequest struct {
	Username   string      `json:"username"`
	Email      string      `json:"email"`
	Password   string      `json:"password"`
	Role       models.Role `json:"role"`
	LocationID *uint       `json:"location_id"`
}

func (uc *UserController) CreateUserController(c *fiber.Ctx) error {
	var req CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
	}

	user := &models.User{
		Username:   req.Username,
		Email:      req.Email,
		Password:   req.Password,
		Role:       req.Role,
		LocationID: req.LocationID,
		Active:     true,
	}

	if fields := services.ValidateUser(user); len(fields) > 0 {
		return utils.RespondError(c, apperrors.NewValidationError(fields))
	}

	created, err := uc.UserRepo.CreateUser(user)
	if err != nil {
		config.Logger.Error("Failed to create user", zap.Error(err))
		return utils.RespondError(c, err)
	}

	config.Logger.Info("User created",
		zap.Uint("userID", created.ID),
		zap.String("username", created.Username),
		zap.String("role", string(created.Role)))

	return c.Status(fiber.StatusCreated).JSON(created)
}

func (uc *UserController) GetFilteredUsersController(c *fiber.Ctx) error {
	params := pagination.ParsePaginationParams(c)
	if err := pagination.ValidatePaginationParams(params); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "Invalid pagination parameters",
			"details": err.Error(),
		})
	}

	offset := (params.Page - 1) * params.PageSize
	users, total, err := uc.UserRepo.GetFilteredUsers(params.PageSize, offset, params.Filters)
	if err != nil {
		config.Logger.Error("Failed to list users", zap.Error(err))
		return utils.RespondError(c, err)
	}

	return c.JSON(pagination.NewPaginatedResponse(c, users, total, params))
}

func (uc *UserController) GetUserController(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "Invalid user id",
			"details": err.Error(),
		})
	}

	user, err := uc.UserRepo.GetUserByID(uint(id))
	if err != nil {
		return utils.RespondError(c, err)
	}
	return c.JSON(user)
}

func (uc *UserController) UpdateUserController(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "Invalid user id",
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

	fields := utils.PickFields(body, "email", "password", "role", "location_id", "active")
	if len(fields) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "Validation failed",
			"details": "No updatable fields supplied",
		})
	}

	if err := uc.UserRepo.UpdateUser(uint(id), fields); err != nil {
		return utils.RespondError(c, err)
	}

	user, err := uc.UserRepo.GetUserByID(uint(id))
	if err != nil {
		return utils.RespondError(c, err)
	}
	return c.JSON(user)
}

func (uc *UserController) DeleteUserController(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "Invalid user id",
			"details": err.Error(),
		})
	}

	if err := uc.UserRepo.DeleteUser(uint(id)); err != nil {
		return utils.RespondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "User deleted"})
}
