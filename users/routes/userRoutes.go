package routes

import (
	"property-management-backend/middleware"
	"property-management-backend/permissions"
	"property-management-backend/users/controllers"
	"property-management-backend/users/repositories"

	"github.com/gofiber/fiber/v2"
)

func UserRouterInit(
	app *fiber.App,
	appCtx *middleware.AppContext,
	userRepository repositories.UserRepository,
) {
	authController := &controllers.AuthController{
		UserRepo: userRepository,
		AppCtx:   appCtx,
	}
	userController := &controllers.UserController{
		UserRepo: userRepository,
	}

	auth := app.Group("/auth")
	auth.Post("/login", authController.LoginController)
	auth.Post("/logout", authController.LogoutController)

	userRoutes := app.Group("/users", middleware.ProtectedRoute(appCtx))
	userRoutes.Post("/",
		middleware.RequirePermission(appCtx, permissions.ResourceUsers, permissions.ActionCreate),
		userController.CreateUserController)
	userRoutes.Get("/",
		middleware.RequirePermission(appCtx, permissions.ResourceUsers, permissions.ActionRead),
		userController.GetFilteredUsersController)
	userRoutes.Get("/:id",
		middleware.RequirePermission(appCtx, permissions.ResourceUsers, permissions.ActionRead),
		userController.GetUserController)
	userRoutes.Put("/:id",
		middleware.RequirePermission(appCtx, permissions.ResourceUsers, permissions.ActionUpdate),
		userController.UpdateUserController)
	userRoutes.Delete("/:id",
		middleware.RequirePermission(appCtx, permissions.ResourceUsers, permissions.ActionDelete),
		userController.DeleteUserController)
}
