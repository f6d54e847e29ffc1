package config

import "testing"

func TestGetEnv(t *testing.T) {
	t.Setenv("POSTING_APP_TEST_KEY", "set")

	if v := getEnv("POSTING_APP_TEST_KEY", "fallback"); v != "set" {
		t.Fatalf("expected env value, got %q", v)
	}
	if v := getEnv("POSTING_APP_MISSING_KEY", "fallback"); v != "fallback" {
		t.Fatalf("expected fallback, got %q", v)
	}
}

func TestLoadConfigNoSecretFallback(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	cfg := LoadConfig()
	if cfg.JWTSecret != "" {
		t.Fatalf("JWT_SECRET must not have a default, got %q", cfg.JWTSecret)
	}
	if cfg.Port == "" {
		t.Fatal("expected default port")
	}
}
