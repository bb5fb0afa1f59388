package adoptions

import "context"

// Repository guarda membresía (sessionID, petID). Add debe ser idempotente:
// si ya existe, devuelve created=false sin error.
type Repository interface {
	Add(ctx context.Context, a Adoption) (created bool, err error)
	Has(ctx context.Context, sessionID, petID string) (bool, error)
	// ListBySession devuelve en orden de adopción (más antigua primero).
	ListBySession(ctx context.Context, sessionID string) ([]Adoption, error)
}
