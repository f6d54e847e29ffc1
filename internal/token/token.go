package token

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid token")

// Claims bind a session to a user. There is deliberately no expiry: the
// original design issues tokens that live until the client discards them,
// and adding one would be a behavior change. Known gap, see DESIGN.md.
type Claims struct {
	Email  string `json:"email"`
	UserID string `json:"userid"`
	jwt.RegisteredClaims
}

// Signer signs and verifies session tokens with a process-scoped HS256
// secret. It is handed to the auth handlers and the auth middleware, which
// never see the secret itself.
type Signer struct {
	secret []byte
}

func NewSigner(secret string) *Signer {
	return &Signer{secret: []byte(secret)}
}

func (s *Signer) Sign(email, userID string) (string, error) {
	claims := Claims{
		Email:  email,
		UserID: userID,
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}

func (s *Signer) Parse(tokenStr string) (*Claims, error) {
	var claims Claims
	t, err := jwt.ParseWithClaims(
		tokenStr,
		&claims,
		func(t *jwt.Token) (any, error) {
			if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
				return nil, ErrInvalidToken
			}
			return s.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil || !t.Valid {
		return nil, ErrInvalidToken
	}
	if claims.Email == "" || claims.UserID == "" {
		return nil, ErrInvalidToken
	}
	return &claims, nil
}
