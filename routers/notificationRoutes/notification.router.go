package notificationRoutes

import (
	notificationControllers "lnf/controllers/notifications"
	"lnf/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupNotificationRoutes(app *fiber.App) {
	notificationGroup := app.Group("/notifications")

	notificationGroup.Get("/", middleware.JWTMiddleware, notificationControllers.ListNotifications)
	notificationGroup.Get("/unread/count", middleware.JWTMiddleware, notificationControllers.UnreadCount)
	notificationGroup.Patch("/:id/read", middleware.JWTMiddleware, notificationControllers.MarkRead)
}
