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

// LikeHandler godoc
// @Summary      Toggle a like
// @Description  Flip the caller's membership in the post's liker set
// @Tags         likes
// @Produce      json
// @Param        id   path      string  true  "Post ID (hex)"
// @Success      200  {object}  dto.LikeResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/like/{id} [post]
func LikeHandler(db *mongo.Database) fiber.Handler {
	return func(c *fiber.Ctx) error {
		uid, err := middleware.UIDObjectID(c)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).
				JSON(dto.ErrorResponse{Message: "Unauthorized"})
		}

		postID, err := parsePostID(c)
		if err != nil {
			return c.Status(fiber.StatusNotFound).
				JSON(dto.ErrorResponse{Message: "Post not found"})
		}

		ctx, cancel := context.WithTimeout(c.Context(), opTimeout)
		defer cancel()

		likes, isLiked, err := services.ToggleLike(ctx, db, postID, uid)
		if err != nil {
			if errors.Is(err, services.ErrPostNotFound) {
				return c.Status(fiber.StatusNotFound).
					JSON(dto.ErrorResponse{Message: "Post not found"})
			}
			return c.Status(fiber.StatusInternalServerError).
				JSON(dto.ErrorResponse{Message: err.Error()})
		}

		return c.JSON(dto.LikeResponse{Success: true, Likes: likes, IsLiked: isLiked})
	}
}
