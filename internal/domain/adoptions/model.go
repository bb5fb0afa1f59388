package adoptions

import "time"

// Adoption marca un pet del catálogo como adoptado dentro de una sesión.
type Adoption struct {
	ID        string
	SessionID string
	PetID     string
	AdoptedAt time.Time
}
