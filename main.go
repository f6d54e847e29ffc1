// @title Posting App API
// @version 1.0
// @description REST backend for a small social posting application.
// @host localhost:3000
// @BasePath /

package main

import (
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"

	_ "posting-app/docs"

	"posting-app/bootstrap"
	"posting-app/config"
	"posting-app/database"
	"posting-app/internal/routes"
	"posting-app/internal/token"
)

func main() {
	cfg := config.LoadConfig()
	if cfg.JWTSecret == "" {
		panic("JWT_SECRET is required")
	}

	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		log.Fatalf("create upload dir: %v", err)
	}

	client := database.ConnectMongo(cfg.MongoURI, cfg.MongoDB)
	defer database.DisconnectMongo(client)

	db := client.Database(cfg.MongoDB)
	if err := bootstrap.EnsureUserIndexes(db); err != nil {
		log.Fatalf("ensure user indexes failed: %v", err)
	}
	if err := bootstrap.EnsurePostIndexes(db); err != nil {
		log.Fatalf("ensure post indexes failed: %v", err)
	}

	app := fiber.New()
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     "http://localhost:5173, http://localhost:5174",
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept",
		AllowCredentials: true,
	}))

	// uploaded profile pictures are served by reference
	app.Static("/", "./public")

	app.Get("/docs/*", swagger.HandlerDefault)
	app.Get("/healthz", func(c *fiber.Ctx) error { return c.SendString("ok") })

	routes.Register(app, routes.Deps{
		DB:        db,
		Signer:    token.NewSigner(cfg.JWTSecret),
		UploadDir: cfg.UploadDir,
	})

	log.Printf("listening at http://localhost:%s", cfg.Port)
	log.Fatal(app.Listen(":" + cfg.Port))
}
