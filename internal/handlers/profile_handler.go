package handlers

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"posting-app/dto"
	"posting-app/internal/middleware"
	"posting-app/internal/services"
)

// ProfileHandler godoc
// @Summary      Get own profile
// @Description  Return the authenticated user with posts expanded in creation order
// @Tags         profile
// @Produce      json
// @Success      200  {object}  dto.ProfileResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/profile [get]
func ProfileHandler(db *mongo.Database) fiber.Handler {
	return func(c *fiber.Ctx) error {
		email, err := middleware.EmailFromLocals(c)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).
				JSON(dto.ErrorResponse{Message: "Unauthorized"})
		}

		ctx, cancel := context.WithTimeout(c.Context(), opTimeout)
		defer cancel()

		user, posts, err := services.GetProfile(ctx, db, email)
		if err != nil {
			if errors.Is(err, services.ErrUserNotFound) {
				return c.Status(fiber.StatusNotFound).
					JSON(dto.ErrorResponse{Message: "User not found"})
			}
			return c.Status(fiber.StatusInternalServerError).
				JSON(dto.ErrorResponse{Message: err.Error()})
		}

		return c.JSON(dto.ProfileResponse{
			Success: true,
			User: dto.ProfileUser{
				ID:         user.ID.Hex(),
				Username:   user.Username,
				Email:      user.Email,
				Name:       user.Name,
				Age:        user.Age,
				ProfilePic: user.ProfilePic,
				Posts:      posts,
			},
		})
	}
}
