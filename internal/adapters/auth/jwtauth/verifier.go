// Package jwtauth verifica tokens HS256 emitidos con un secreto compartido.
package jwtauth

import (
	"context"
	"errors"
	"strings"
	"time"

	"pet-explorer/internal/ports/auth"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrSecretRequired = errors.New("jwt secret required")
	ErrTokenEmpty     = errors.New("token is empty")
	ErrMissingSubject = errors.New("token missing sub")
)

// Claims del token. Sub es el user id (y la sesión).
type Claims struct {
	Email string `json:"email,omitempty"`
	Role  string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

type Verifier struct {
	secret []byte
	issuer string
}

var _ auth.AuthVerifier = (*Verifier)(nil)

// NewVerifier exige secreto no vacío. issuer vacío => no se valida iss.
func NewVerifier(secret, issuer string) (*Verifier, error) {
	if strings.TrimSpace(secret) == "" {
		return nil, ErrSecretRequired
	}
	return &Verifier{secret: []byte(secret), issuer: strings.TrimSpace(issuer)}, nil
}

func (v *Verifier) Verify(_ context.Context, token string) (auth.Claims, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return auth.Claims{}, ErrTokenEmpty
	}

	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})}
	if v.issuer != "" {
		opts = append(opts, jwt.WithIssuer(v.issuer))
	}

	t, err := jwt.ParseWithClaims(token, &Claims{}, func(t *jwt.Token) (any, error) {
		return v.secret, nil
	}, opts...)
	if err != nil {
		return auth.Claims{}, err
	}
	c, ok := t.Claims.(*Claims)
	if !ok || !t.Valid {
		return auth.Claims{}, jwt.ErrTokenInvalidClaims
	}

	sub := strings.TrimSpace(c.Subject)
	if sub == "" {
		return auth.Claims{}, ErrMissingSubject
	}
	return auth.Claims{UserID: sub, Email: c.Email, Role: c.Role}, nil
}

// Issue firma un token para userID; lo usan los tests y herramientas locales.
func Issue(secret, issuer, userID string, ttl time.Duration) (string, error) {
	now := time.Now()
	c := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			Issuer:    issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString([]byte(secret))
}
