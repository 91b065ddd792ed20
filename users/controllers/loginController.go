package controllers

import (
	"time"

	"property-management-backend/config"
	"property-management-backend/middleware"
	"property-management-backend/users/repositories"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const (
	accessTokenDuration  = 15 * time.Minute
	refreshTokenDuration = 7 * 24 * time.Hour
)

type AuthController struct {
	UserRepo repositories.UserRepository
	AppCtx   *middleware.AppContext
}

// LoginRequest represents the credentials posted to /auth/login
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (ac *AuthController) LoginController(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
	}

	user, err := ac.UserRepo.GetUserByUsername(req.Username)
	if err != nil || !repositories.CheckPasswordHash(req.Password, user.Password) {
		// Same response for unknown user and wrong password.
		config.Logger.Warn("Failed login attempt", zap.String("username", req.Username))
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error":   "Unauthorized",
			"details": "Invalid username or password",
		})
	}

	if !user.Active {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error":   "Forbidden",
			"details": "Account is disabled",
		})
	}

	accessToken, err := ac.AppCtx.PasetoMaker.CreateToken(user.Username, accessTokenDuration)
	if err != nil {
		config.Logger.Error("Could not generate access token", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "Internal server error",
			"details": "Could not create session",
		})
	}

	refreshToken, err := ac.AppCtx.PasetoMaker.CreateToken(user.Username, refreshTokenDuration)
	if err != nil {
		config.Logger.Error("Could not generate refresh token", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "Internal server error",
			"details": "Could not create session",
		})
	}

	err = ac.AppCtx.RedisClient.Set(ac.AppCtx.Ctx, "refresh_token:"+refreshToken, user.Username, refreshTokenDuration).Err()
	if err != nil {
		config.Logger.Error("Error storing refresh token in Redis", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "Internal server error",
			"details": "Could not create session",
		})
	}

	if err := ac.UserRepo.TouchLastLogin(user.ID); err != nil {
		config.Logger.Warn("Could not update last login timestamp", zap.Error(err))
	}

	middleware.SetAuthCookies(c, accessToken, refreshToken)

	config.Logger.Info("User logged in",
		zap.String("username", user.Username),
		zap.String("role", string(user.Role)))

	return c.JSON(fiber.Map{
		"message": "Login successful",
		"user":    user,
	})
}

func (ac *AuthController) LogoutController(c *fiber.Ctx) error {
	refreshToken := c.Cookies("refresh_token")
	if refreshToken != "" {
		if err := ac.AppCtx.RedisClient.Del(ac.AppCtx.Ctx, "refresh_token:"+refreshToken).Err(); err != nil {
			config.Logger.Warn("Error deleting refresh token on logout", zap.Error(err))
		}
	}

	c.ClearCookie("access_token", "refresh_token")
	return c.JSON(fiber.Map{"message": "Logged out"})
}
