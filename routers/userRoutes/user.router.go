package userRoutes

import (
	userControllers "lnf/controllers/userControllers"
	"lnf/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupUserRoutes(app *fiber.App) {
	userGroup := app.Group("/user")

	userGroup.Get("/dashboard", middleware.JWTMiddleware, userControllers.Dashboard)
	userGroup.Get("/profile", middleware.JWTMiddleware, userControllers.GetProfile)
	userGroup.Put("/profile", middleware.JWTMiddleware, userControllers.UpdateProfile)
	userGroup.Get("/reviews", middleware.JWTMiddleware, userControllers.GetReviews)
}
