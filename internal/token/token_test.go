package token

import (
	"strings"
	"testing"

	"github.com/golang-jwt/jwt/v5"
)

func TestSignParseRoundtrip(t *testing.T) {
	s := NewSigner("test-secret")

	tok, err := s.Sign("a@x.com", "68bd6ff6f80438824239b8a9")
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	claims, err := s.Parse(tok)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if claims.Email != "a@x.com" {
		t.Fatalf("email = %q", claims.Email)
	}
	if claims.UserID != "68bd6ff6f80438824239b8a9" {
		t.Fatalf("userid = %q", claims.UserID)
	}
}

func TestParseRejectsTampered(t *testing.T) {
	s := NewSigner("test-secret")
	tok, err := s.Sign("a@x.com", "68bd6ff6f80438824239b8a9")
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	parts := strings.Split(tok, ".")
	parts[1] = strings.Repeat("A", len(parts[1]))
	if _, err := s.Parse(strings.Join(parts, ".")); err == nil {
		t.Fatal("expected tampered token to fail")
	}
}

func TestParseRejectsWrongSecret(t *testing.T) {
	tok, err := NewSigner("one").Sign("a@x.com", "68bd6ff6f80438824239b8a9")
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if _, err := NewSigner("two").Parse(tok); err == nil {
		t.Fatal("expected verification failure under a different secret")
	}
}

func TestParseRejectsNonHS256(t *testing.T) {
	// alg "none" must never verify, whatever the payload says.
	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{
		Email:  "a@x.com",
		UserID: "68bd6ff6f80438824239b8a9",
	})
	tok, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if _, err := NewSigner("test-secret").Parse(tok); err == nil {
		t.Fatal("expected non-HS256 token to fail")
	}
}

func TestParseRejectsGarbage(t *testing.T) {
	s := NewSigner("test-secret")
	for _, tok := range []string{"", "not-a-token", "a.b.c"} {
		if _, err := s.Parse(tok); err == nil {
			t.Fatalf("expected %q to fail", tok)
		}
	}
}
