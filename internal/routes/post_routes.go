package routes

import (
	"github.com/gofiber/fiber/v2"

	"posting-app/internal/handlers"
)

func PostRoutes(api fiber.Router, deps Deps) {
	api.Post("/post", handlers.CreatePostHandler(deps.DB))
	api.Get("/post/:id", handlers.GetPostHandler(deps.DB))
	api.Put("/post/:id", handlers.UpdatePostHandler(deps.DB))
	api.Delete("/post/:id", handlers.DeletePostHandler(deps.DB))

	api.Post("/like/:id", handlers.LikeHandler(deps.DB))
}
