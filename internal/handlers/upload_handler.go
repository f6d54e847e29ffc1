package handlers

import (
	"context"
	"path/filepath"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"posting-app/dto"
	"posting-app/internal/middleware"
	"posting-app/internal/repository"
	"posting-app/internal/utils"
)

// UploadHandler godoc
// @Summary      Upload a profile picture
// @Description  Store the image and save its reference on the user
// @Tags         profile
// @Accept       multipart/form-data
// @Produce      json
// @Param        image  formData  file  true  "Profile image"
// @Success      200    {object}  dto.UploadResponse
// @Failure      400    {object}  dto.ErrorResponse
// @Failure      500    {object}  dto.ErrorResponse
// @Router       /api/upload [post]
func UploadHandler(db *mongo.Database, uploadDir string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		uid, err := middleware.UIDObjectID(c)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).
				JSON(dto.ErrorResponse{Message: "Unauthorized"})
		}

		file, err := c.FormFile("image")
		if err != nil {
			return c.Status(fiber.StatusBadRequest).
				JSON(dto.ErrorResponse{Message: "image file is required"})
		}

		filename, err := utils.RandomFileName(filepath.Ext(file.Filename))
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).
				JSON(dto.ErrorResponse{Message: err.Error()})
		}

		if err := c.SaveFile(file, filepath.Join(uploadDir, filename)); err != nil {
			return c.Status(fiber.StatusInternalServerError).
				JSON(dto.ErrorResponse{Message: err.Error()})
		}

		ctx, cancel := context.WithTimeout(c.Context(), opTimeout)
		defer cancel()

		if err := repository.SetProfilePic(ctx, db, uid, filename); err != nil {
			return c.Status(fiber.StatusInternalServerError).
				JSON(dto.ErrorResponse{Message: err.Error()})
		}

		return c.JSON(dto.UploadResponse{
			Success:    true,
			Message:    "Profile picture updated",
			ProfilePic: filename,
		})
	}
}
