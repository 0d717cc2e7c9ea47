package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"studenthub/config"
	"studenthub/middleware"
	"studenthub/routes"
	"studenthub/store"
	"studenthub/utils"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	logger := utils.InitLogger()

	db, err := store.Open(cfg)
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	// Table failures are logged inside, not fatal.
	store.EnsureSchema(db, logger)

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
	app.Use(middleware.LoggingMiddleware(logger))

	routes.SetupRoutes(app, db)

	log.Fatal(app.Listen(":" + cfg.ServerPort))
}
