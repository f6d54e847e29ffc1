package handlers

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"posting-app/dto"
	"posting-app/internal/middleware"
	"posting-app/internal/models"
	"posting-app/internal/repository"
	"posting-app/internal/services"
	"posting-app/internal/token"
)

const opTimeout = 5 * time.Second

func setSessionCookie(c *fiber.Ctx, tok string) {
	c.Cookie(&fiber.Cookie{
		Name:     middleware.CookieName,
		Value:    tok,
		HTTPOnly: true,
		SameSite: "Lax",
		Path:     "/",
	})
}

func clearSessionCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     middleware.CookieName,
		Value:    "",
		HTTPOnly: true,
		SameSite: "Lax",
		Expires:  time.Unix(0, 0),
		Path:     "/",
	})
}

func publicUser(u *models.User, withPic bool) dto.PublicUser {
	pu := dto.PublicUser{
		ID:       u.ID.Hex(),
		Username: u.Username,
		Email:    u.Email,
		Name:     u.Name,
	}
	if withPic {
		pu.ProfilePic = u.ProfilePic
	}
	return pu
}

// RegisterHandler godoc
// @Summary      Register a new user
// @Description  Create a user, hash the password, and start a session
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      dto.RegisterRequest  true  "Registration fields"
// @Success      200   {object}  dto.AuthResponse
// @Failure      400   {object}  dto.ErrorResponse  "invalid body, missing fields, or email already registered"
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/register [post]
func RegisterHandler(db *mongo.Database, signer *token.Signer) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body dto.RegisterRequest
		if err := c.BodyParser(&body); err != nil {
			return c.Status(fiber.StatusBadRequest).
				JSON(dto.ErrorResponse{Message: "invalid body"})
		}
		if body.Email == "" || body.Password == "" || body.Username == "" {
			return c.Status(fiber.StatusBadRequest).
				JSON(dto.ErrorResponse{Message: "username, email and password are required"})
		}

		ctx, cancel := context.WithTimeout(c.Context(), opTimeout)
		defer cancel()

		user, err := services.Register(ctx, db, body)
		if err != nil {
			if errors.Is(err, services.ErrEmailTaken) {
				return c.Status(fiber.StatusBadRequest).
					JSON(dto.ErrorResponse{Message: "User already registered"})
			}
			return c.Status(fiber.StatusInternalServerError).
				JSON(dto.ErrorResponse{Message: err.Error()})
		}

		tok, err := signer.Sign(user.Email, user.ID.Hex())
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).
				JSON(dto.ErrorResponse{Message: err.Error()})
		}
		setSessionCookie(c, tok)

		return c.JSON(dto.AuthResponse{
			Success: true,
			Message: "User registered successfully",
			User:    publicUser(user, false),
		})
	}
}

// LoginHandler godoc
// @Summary      Log in
// @Description  Verify credentials and start a session
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      dto.LoginRequest  true  "Credentials"
// @Success      200   {object}  dto.AuthResponse
// @Failure      401   {object}  dto.ErrorResponse  "invalid email or password"
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/login [post]
func LoginHandler(db *mongo.Database, signer *token.Signer) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body dto.LoginRequest
		if err := c.BodyParser(&body); err != nil {
			return c.Status(fiber.StatusBadRequest).
				JSON(dto.ErrorResponse{Message: "invalid body"})
		}

		ctx, cancel := context.WithTimeout(c.Context(), opTimeout)
		defer cancel()

		user, err := services.Login(ctx, db, body.Email, body.Password)
		if err != nil {
			if errors.Is(err, services.ErrBadCredentials) {
				return c.Status(fiber.StatusUnauthorized).
					JSON(dto.ErrorResponse{Message: "Invalid email or password"})
			}
			return c.Status(fiber.StatusInternalServerError).
				JSON(dto.ErrorResponse{Message: err.Error()})
		}

		tok, err := signer.Sign(user.Email, user.ID.Hex())
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).
				JSON(dto.ErrorResponse{Message: err.Error()})
		}
		setSessionCookie(c, tok)

		return c.JSON(dto.AuthResponse{
			Success: true,
			Message: "Login successful",
			User:    publicUser(user, true),
		})
	}
}

// LogoutHandler godoc
// @Summary      Log out
// @Description  The token is stateless, so logout just tells the client to drop it
// @Tags         auth
// @Produce      json
// @Success      200  {object}  dto.MessageResponse
// @Router       /api/logout [post]
func LogoutHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		clearSessionCookie(c)
		return c.JSON(dto.MessageResponse{
			Success: true,
			Message: "Logged out successfully",
		})
	}
}

// CheckAuthHandler godoc
// @Summary      Check session
// @Description  Return the current user for a valid session cookie
// @Tags         auth
// @Produce      json
// @Success      200  {object}  dto.CheckAuthResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/check-auth [get]
func CheckAuthHandler(db *mongo.Database) fiber.Handler {
	return func(c *fiber.Ctx) error {
		email, err := middleware.EmailFromLocals(c)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).
				JSON(fiber.Map{"success": false, "isAuthenticated": false})
		}

		ctx, cancel := context.WithTimeout(c.Context(), opTimeout)
		defer cancel()

		user, err := repository.FindUserByEmail(ctx, db, email)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).
				JSON(fiber.Map{"success": false, "isAuthenticated": false})
		}

		return c.JSON(dto.CheckAuthResponse{
			Success:         true,
			IsAuthenticated: true,
			User:            publicUser(user, true),
		})
	}
}
