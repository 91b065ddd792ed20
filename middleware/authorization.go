package middleware

import (
	"time"

	"property-management-backend/config"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	accessTokenDuration  = 15 * time.Minute
	refreshTokenDuration = 7 * 24 * time.Hour
)

// ProtectedRoute authenticates the request from the access-token cookie,
// falling back to a single-use refresh token held in Redis. A consumed
// refresh token is rotated: the old one is deleted and a new pair issued.
func ProtectedRoute(ctx *AppContext) fiber.Handler {
	return func(c *fiber.Ctx) error {
		accessToken := c.Cookies("access_token")
		refreshToken := c.Cookies("refresh_token")

		if accessToken != "" {
			payload, err := ctx.PasetoMaker.VerifyToken(accessToken)
			if err == nil {
				c.Locals("user", payload)
				return c.Next()
			}
			config.Logger.Debug("Invalid access token encountered", zap.Error(err))
		}

		if refreshToken == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Unauthorized",
				"error":   "Authentication required",
			})
		}

		refreshPayload, err := ctx.PasetoMaker.VerifyToken(refreshToken)
		if err != nil {
			config.Logger.Error("Invalid refresh token verification failed", zap.Error(err))
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Unauthorized",
				"error":   "Session expired or invalid. Please log in again.",
			})
		}

		// The raw refresh token string is the Redis key, so invalidation is a
		// direct delete.
		username, err := ctx.RedisClient.Get(ctx.Ctx, "refresh_token:"+refreshToken).Result()
		if err == redis.Nil {
			config.Logger.Warn("Refresh token not found in Redis",
				zap.String("payload_id", refreshPayload.ID.String()),
				zap.String("username", refreshPayload.Username),
			)
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Unauthorized",
				"error":   "Session invalid. Please log in again.",
			})
		} else if err != nil {
			config.Logger.Error("Error accessing Redis for refresh token validation",
				zap.String("username", refreshPayload.Username),
				zap.Error(err),
			)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": "Something went wrong",
				"error":   "An internal server error occurred.",
			})
		}

		// Single-use refresh tokens: invalidate before reissuing.
		if err := ctx.RedisClient.Del(ctx.Ctx, "refresh_token:"+refreshToken).Err(); err != nil {
			config.Logger.Warn("Error deleting old refresh token from Redis",
				zap.String("username", username),
				zap.Error(err),
			)
		}

		newAccessToken, err := ctx.PasetoMaker.CreateToken(refreshPayload.Username, accessTokenDuration)
		if err != nil {
			config.Logger.Error("Could not generate new access token",
				zap.String("username", username),
				zap.Error(err),
			)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": "Something went wrong",
				"error":   "An internal server error occurred.",
			})
		}

		newRefreshToken, err := ctx.PasetoMaker.CreateToken(refreshPayload.Username, refreshTokenDuration)
		if err != nil {
			config.Logger.Error("Could not generate new refresh token",
				zap.String("username", username),
				zap.Error(err),
			)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": "Something went wrong",
				"error":   "An internal server error occurred.",
			})
		}

		err = ctx.RedisClient.Set(ctx.Ctx, "refresh_token:"+newRefreshToken, username, refreshTokenDuration).Err()
		if err != nil {
			config.Logger.Error("Error storing new refresh token in Redis",
				zap.String("username", username),
				zap.Error(err),
			)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": "Something went wrong",
				"error":   "An internal server error occurred.",
			})
		}

		SetAuthCookies(c, newAccessToken, newRefreshToken)

		c.Locals("user", refreshPayload)
		return c.Next()
	}
}

// SetAuthCookies writes the access/refresh token pair as HTTP-only cookies.
func SetAuthCookies(c *fiber.Ctx, accessToken, refreshToken string) {
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    accessToken,
		Expires:  time.Now().Add(accessTokenDuration),
		HTTPOnly: true,
		Secure:   false, // TODO: set to true once served over HTTPS
		SameSite: "Lax",
		Path:     "/",
	})
	c.Cookie(&fiber.Cookie{
		Name:     "refresh_token",
		Value:    refreshToken,
		Expires:  time.Now().Add(refreshTokenDuration),
		HTTPOnly: true,
		Secure:   false, // TODO: set to true once served over HTTPS
		SameSite: "Lax",
		Path:     "/",
	})
}
