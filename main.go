package main

import (
	"log"

	"lnf/config"
	"lnf/database"
	authRoutes "lnf/routers/authRoutes"
	itemRoutes "lnf/routers/itemRoutes"
	marketRoutes "lnf/routers/marketRoutes"
	notificationRoutes "lnf/routers/notificationRoutes"
	userRoutes "lnf/routers/userRoutes"
	walletRoutes "lnf/routers/walletRoutes"
	"lnf/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	app := fiber.New(fiber.Config{
		BodyLimit: config.AppConfig.MaxUploadMB * 1024 * 1024,
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,PATCH,DELETE",
		AllowHeaders: "Content-Type,Authorization",
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	// Serve uploaded images
	app.Static("/uploads", config.AppConfig.UploadDir)

	authRoutes.SetupAuthRoutes(app)
	itemRoutes.SetupItemRoutes(app)
	notificationRoutes.SetupNotificationRoutes(app)
	marketRoutes.SetupMarketRoutes(app)
	walletRoutes.SetupWalletRoutes(app)
	userRoutes.SetupUserRoutes(app)

	// Hourly sweep that expires stale posts
	utils.StartItemScheduler()

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
