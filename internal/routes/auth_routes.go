package routes

import (
	"github.com/gofiber/fiber/v2"

	"posting-app/internal/handlers"
)

func AuthRoutes(api fiber.Router, deps Deps) {
	api.Post("/register", handlers.RegisterHandler(deps.DB, deps.Signer))
	api.Post("/login", handlers.LoginHandler(deps.DB, deps.Signer))
	api.Post("/logout", handlers.LogoutHandler())
}
