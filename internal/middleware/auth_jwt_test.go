package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"

	"posting-app/internal/token"
)

func guardedApp(signer *token.Signer) *fiber.App {
	app := fiber.New()
	app.Use(AuthRequired(signer))
	app.Get("/whoami", func(c *fiber.Ctx) error {
		uid, err := UIDFromLocals(c)
		if err != nil {
			return err
		}
		email, err := EmailFromLocals(c)
		if err != nil {
			return err
		}
		return c.JSON(fiber.Map{"user_id": uid, "email": email})
	})
	return app
}

func TestAuthRequiredNoCookie(t *testing.T) {
	app := guardedApp(token.NewSigner("test-secret"))

	req := httptest.NewRequest("GET", "/whoami", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", resp.StatusCode)
	}
}

func TestAuthRequiredBadToken(t *testing.T) {
	app := guardedApp(token.NewSigner("test-secret"))

	req := httptest.NewRequest("GET", "/whoami", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: "garbage"})
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", resp.StatusCode)
	}
}

func TestAuthRequiredValidToken(t *testing.T) {
	signer := token.NewSigner("test-secret")
	app := guardedApp(signer)

	tok, err := signer.Sign("a@x.com", "68bd6ff6f80438824239b8a9")
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	req := httptest.NewRequest("GET", "/whoami", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: tok})
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
}

func TestAuthRequiredWrongSecret(t *testing.T) {
	app := guardedApp(token.NewSigner("server-secret"))

	tok, err := token.NewSigner("other-secret").Sign("a@x.com", "68bd6ff6f80438824239b8a9")
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	req := httptest.NewRequest("GET", "/whoami", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: tok})
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", resp.StatusCode)
	}
}
