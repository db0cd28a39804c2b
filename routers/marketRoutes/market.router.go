package marketRoutes

import (
	marketControllers "lnf/controllers/market"
	"lnf/middleware"
	marketValidators "lnf/validators/market"

	"github.com/gofiber/fiber/v2"
)

func SetupMarketRoutes(app *fiber.App) {
	marketGroup := app.Group("/marketplace")

	marketGroup.Get("/", marketControllers.Browse)
	marketGroup.Post("/sell", middleware.JWTMiddleware, marketValidators.Sell(), marketControllers.Sell)
	marketGroup.Get("/item/:id", marketControllers.ItemDetail)
	marketGroup.Post("/buy/:id", middleware.JWTMiddleware, marketControllers.Buy)
	marketGroup.Get("/orders", middleware.JWTMiddleware, marketControllers.ListOrders)
	marketGroup.Post("/orders/:id/review", middleware.JWTMiddleware, marketValidators.Review(), marketControllers.SubmitReview)
}
