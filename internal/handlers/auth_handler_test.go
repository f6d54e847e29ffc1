package handlers

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/bson"

	"posting-app/internal/middleware"
	"posting-app/internal/models"
)

func TestLogoutClearsCookie(t *testing.T) {
	app := fiber.New()
	app.Post("/api/logout", LogoutHandler())

	req := httptest.NewRequest("POST", "/api/logout", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var cleared bool
	for _, c := range resp.Cookies() {
		if c.Name == middleware.CookieName {
			if c.Value != "" {
				t.Fatalf("cookie value not cleared: %q", c.Value)
			}
			if c.Expires.Unix() > 0 {
				t.Fatalf("cookie not expired: %v", c.Expires)
			}
			cleared = true
		}
	}
	if !cleared {
		t.Fatal("no session cookie in logout response")
	}
}

func TestPublicUserHidesHash(t *testing.T) {
	u := &models.User{
		ID:         bson.NewObjectID(),
		Username:   "tester",
		Email:      "a@x.com",
		Name:       "Tester",
		Password:   "$2a$10$hash",
		ProfilePic: models.DefaultProfilePic,
	}

	pu := publicUser(u, false)
	if pu.ProfilePic != "" {
		t.Fatalf("register shape must not carry profilepic, got %q", pu.ProfilePic)
	}

	pu = publicUser(u, true)
	if pu.ProfilePic != models.DefaultProfilePic {
		t.Fatalf("profilepic = %q", pu.ProfilePic)
	}
	if pu.ID != u.ID.Hex() || pu.Username != "tester" || pu.Email != "a@x.com" {
		t.Fatalf("unexpected shape: %+v", pu)
	}
}
