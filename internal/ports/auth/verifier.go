package auth

import "context"

// AuthVerifier verifica un token y devuelve claims o error.
// Implementaciones: adapters/auth/jwtauth (HS256 local) y adapters/auth/odin (IAM remoto).
type AuthVerifier interface {
	Verify(ctx context.Context, token string) (Claims, error)
}
