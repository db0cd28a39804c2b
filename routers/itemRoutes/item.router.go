package itemRoutes

import (
	itemControllers "lnf/controllers/items"
	"lnf/middleware"
	itemValidators "lnf/validators/items"

	"github.com/gofiber/fiber/v2"
)

func SetupItemRoutes(app *fiber.App) {
	// Public surface
	app.Get("/", itemControllers.Home)
	app.Get("/search", itemControllers.Search)
	app.Get("/health", itemControllers.Health)

	itemGroup := app.Group("/items")

	itemGroup.Get("/browse/:type", itemControllers.BrowseItems)
	itemGroup.Post("/:type", middleware.JWTMiddleware, itemValidators.Item(), itemControllers.PostItem)
	itemGroup.Get("/:id", itemControllers.ItemDetail)
	itemGroup.Put("/:id", middleware.JWTMiddleware, itemValidators.Item(), itemControllers.EditItem)
	itemGroup.Delete("/:id", middleware.JWTMiddleware, itemControllers.DeleteItem)
	itemGroup.Patch("/:id/resolve", middleware.JWTMiddleware, itemValidators.Resolve(), itemControllers.ResolveItem)

	// JSON api variants
	apiGroup := app.Group("/api")
	apiGroup.Get("/items", itemControllers.ListItemsAPI)
	apiGroup.Post("/items", middleware.JWTMiddleware, itemValidators.ItemJSON(), itemControllers.CreateItemAPI)
}
