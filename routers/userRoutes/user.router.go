package userRoutes

import (
	userControllers "codelearn/controllers/userControllers"
	"codelearn/middleware"
	userValidators "codelearn/validators/userValidator"

	"github.com/gofiber/fiber/v2"
)

func SetupUserRoutes(app *fiber.App) {
	userGroup := app.Group("/api/users")

	userGroup.Get("/profile", middleware.JWTMiddleware, userControllers.GetProfile)
	userGroup.Put("/profile", middleware.JWTMiddleware, userValidators.UpdateProfile(), userControllers.UpdateProfile)

	userGroup.Get("/progress", middleware.JWTMiddleware, userControllers.GetProgress)
	userGroup.Put("/progress", middleware.JWTMiddleware, userValidators.UpdateProgress(), userControllers.UpdateProgress)
}
