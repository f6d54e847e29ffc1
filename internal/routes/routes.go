package routes

import (
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"posting-app/internal/middleware"
	"posting-app/internal/token"
)

type Deps struct {
	DB        *mongo.Database
	Signer    *token.Signer
	UploadDir string
}

// Register wires every /api route. The auth routes are registered before
// the session guard, so everything after it requires a valid token.
func Register(app *fiber.App, deps Deps) {
	api := app.Group("/api")

	AuthRoutes(api, deps)

	api.Use(middleware.AuthRequired(deps.Signer))

	ProfileRoutes(api, deps)
	PostRoutes(api, deps)
}
