package walletRoutes

import (
	walletController "lnf/controllers/wallet"
	"lnf/middleware"
	walletValidator "lnf/validators/wallet"

	"github.com/gofiber/fiber/v2"
)

func SetupWalletRoutes(app *fiber.App) {
	walletGroup := app.Group("/wallet")

	walletGroup.Get("/balance", middleware.JWTMiddleware, walletController.GetWalletBalance)
	walletGroup.Post("/deposit", walletValidator.Deposit(), middleware.JWTMiddleware, walletController.Deposit)
	walletGroup.Get("/history", middleware.JWTMiddleware, walletController.GetWalletHistory)
}
