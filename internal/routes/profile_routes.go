package routes

import (
	"github.com/gofiber/fiber/v2"

	"posting-app/internal/handlers"
)

func ProfileRoutes(api fiber.Router, deps Deps) {
	api.Get("/check-auth", handlers.CheckAuthHandler(deps.DB))
	api.Get("/profile", handlers.ProfileHandler(deps.DB))
	api.Post("/upload", handlers.UploadHandler(deps.DB, deps.UploadDir))
}
