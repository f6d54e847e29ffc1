package handlers

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"posting-app/dto"
	"posting-app/internal/middleware"
	"posting-app/internal/services"
)

// parsePostID reads the :id route param. A malformed id gets the same
// not-found treatment as a missing post.
func parsePostID(c *fiber.Ctx) (bson.ObjectID, error) {
	return bson.ObjectIDFromHex(c.Params("id"))
}

// CreatePostHandler godoc
// @Summary      Create a post
// @Tags         posts
// @Accept       json
// @Produce      json
// @Param        body  body      dto.PostRequest  true  "Post content"
// @Success      200   {object}  dto.PostResponse
// @Failure      400   {object}  dto.ErrorResponse  "empty content"
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/post [post]
func CreatePostHandler(db *mongo.Database) fiber.Handler {
	return func(c *fiber.Ctx) error {
		uid, err := middleware.UIDObjectID(c)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).
				JSON(dto.ErrorResponse{Message: "Unauthorized"})
		}

		var body dto.PostRequest
		if err := c.BodyParser(&body); err != nil {
			return c.Status(fiber.StatusBadRequest).
				JSON(dto.ErrorResponse{Message: "invalid body"})
		}

		ctx, cancel := context.WithTimeout(c.Context(), opTimeout)
		defer cancel()

		post, err := services.CreatePost(ctx, db, uid, body.Content)
		if err != nil {
			if errors.Is(err, services.ErrEmptyContent) {
				return c.Status(fiber.StatusBadRequest).
					JSON(dto.ErrorResponse{Message: "Content is required"})
			}
			return c.Status(fiber.StatusInternalServerError).
				JSON(dto.ErrorResponse{Message: err.Error()})
		}

		return c.JSON(dto.PostResponse{Success: true, Post: *post})
	}
}

// GetPostHandler godoc
// @Summary      Get a post
// @Description  Return the post with its owner expanded to public fields
// @Tags         posts
// @Produce      json
// @Param        id   path      string  true  "Post ID (hex)"
// @Success      200  {object}  dto.PostDetailResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/post/{id} [get]
func GetPostHandler(db *mongo.Database) fiber.Handler {
	return func(c *fiber.Ctx) error {
		postID, err := parsePostID(c)
		if err != nil {
			return c.Status(fiber.StatusNotFound).
				JSON(dto.ErrorResponse{Message: "Post not found"})
		}

		ctx, cancel := context.WithTimeout(c.Context(), opTimeout)
		defer cancel()

		post, owner, err := services.GetPost(ctx, db, postID)
		if err != nil {
			if errors.Is(err, services.ErrPostNotFound) {
				return c.Status(fiber.StatusNotFound).
					JSON(dto.ErrorResponse{Message: "Post not found"})
			}
			return c.Status(fiber.StatusInternalServerError).
				JSON(dto.ErrorResponse{Message: err.Error()})
		}

		detail := dto.PostDetail{
			ID:        post.ID.Hex(),
			Content:   post.Content,
			Likes:     make([]string, 0, len(post.Likes)),
			CreatedAt: post.CreatedAt,
		}
		for _, id := range post.Likes {
			detail.Likes = append(detail.Likes, id.Hex())
		}
		if owner != nil {
			detail.User = publicUser(owner, true)
		}

		return c.JSON(dto.PostDetailResponse{Success: true, Post: detail})
	}
}

// UpdatePostHandler godoc
// @Summary      Update a post
// @Description  Owner only; a non-owner gets the same 404 as a missing post
// @Tags         posts
// @Accept       json
// @Produce      json
// @Param        id    path      string           true  "Post ID (hex)"
// @Param        body  body      dto.PostRequest  true  "New content"
// @Success      200   {object}  dto.PostResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/post/{id} [put]
func UpdatePostHandler(db *mongo.Database) fiber.Handler {
	return func(c *fiber.Ctx) error {
		uid, err := middleware.UIDObjectID(c)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).
				JSON(dto.ErrorResponse{Message: "Unauthorized"})
		}

		postID, err := parsePostID(c)
		if err != nil {
			return c.Status(fiber.StatusNotFound).
				JSON(dto.ErrorResponse{Message: "Post not found or unauthorized"})
		}

		var body dto.PostRequest
		if err := c.BodyParser(&body); err != nil {
			return c.Status(fiber.StatusBadRequest).
				JSON(dto.ErrorResponse{Message: "invalid body"})
		}

		ctx, cancel := context.WithTimeout(c.Context(), opTimeout)
		defer cancel()

		post, err := services.UpdatePost(ctx, db, postID, uid, body.Content)
		if err != nil {
			if errors.Is(err, services.ErrPostNotFound) {
				return c.Status(fiber.StatusNotFound).
					JSON(dto.ErrorResponse{Message: "Post not found or unauthorized"})
			}
			return c.Status(fiber.StatusInternalServerError).
				JSON(dto.ErrorResponse{Message: err.Error()})
		}

		return c.JSON(dto.PostResponse{Success: true, Post: *post})
	}
}

// DeletePostHandler godoc
// @Summary      Delete a post
// @Description  Owner only; removes the post and its reference on the owner
// @Tags         posts
// @Produce      json
// @Param        id   path      string  true  "Post ID (hex)"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/post/{id} [delete]
func DeletePostHandler(db *mongo.Database) fiber.Handler {
	return func(c *fiber.Ctx) error {
		uid, err := middleware.UIDObjectID(c)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).
				JSON(dto.ErrorResponse{Message: "Unauthorized"})
		}

		postID, err := parsePostID(c)
		if err != nil {
			return c.Status(fiber.StatusNotFound).
				JSON(dto.ErrorResponse{Message: "Post not found or unauthorized"})
		}

		ctx, cancel := context.WithTimeout(c.Context(), opTimeout)
		defer cancel()

		if err := services.DeletePost(ctx, db, postID, uid); err != nil {
			if errors.Is(err, services.ErrPostNotFound) {
				return c.Status(fiber.StatusNotFound).
					JSON(dto.ErrorResponse{Message: "Post not found or unauthorized"})
			}
			return c.Status(fiber.StatusInternalServerError).
				JSON(dto.ErrorResponse{Message: err.Error()})
		}

		return c.JSON(dto.MessageResponse{Success: true, Message: "Post deleted"})
	}
}
