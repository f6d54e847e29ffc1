package middleware

import (
	"github.com/gofiber/fiber/v2"

	"posting-app/dto"
	"posting-app/internal/token"
)

// CookieName is the cookie that carries the session token.
const CookieName = "token"

// AuthRequired rejects the request before any handler runs unless the
// session cookie holds a token the signer accepts. On success the decoded
// identity is attached to Locals for the handlers below.
func AuthRequired(signer *token.Signer) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tok := c.Cookies(CookieName)
		if tok == "" {
			return c.Status(fiber.StatusUnauthorized).
				JSON(dto.ErrorResponse{Message: "Unauthorized"})
		}

		claims, err := signer.Parse(tok)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).
				JSON(dto.ErrorResponse{Message: "Invalid token"})
		}

		c.Locals("email", claims.Email)
		c.Locals("user_id", claims.UserID)
		return c.Next()
	}
}
