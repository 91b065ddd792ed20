package middleware

import (
	"context"

	"property-management-backend/db/models"
	"property-management-backend/token"

	"github.com/redis/go-redis/v9"
)

// AppContext bundles all dependencies the middleware stack needs.
// FetchUser resolves the authenticated username to a full account so the
// permission check can see the role without importing the users package.
type AppContext struct {
	PasetoMaker token.Maker
	Ctx         context.Context
	RedisClient *redis.Client
	FetchUser   func(username string) (*models.User, error)
}
