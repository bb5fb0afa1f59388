package adoptions

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"pet-explorer/internal/domain/catalog"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput  = errors.New("invalid input")
	ErrUnknownRecord = errors.New("unknown record")
)

// Catalog es lo único que el registry necesita del catálogo (integridad referencial + orden).
type Catalog interface {
	Get(id string) (catalog.Pet, error)
	All() []catalog.Pet
}

// Registry es el set de pets adoptados de UNA sesión, ligado a un catálogo.
// Adopt es el único mutador; no existe un-adopt (la adopción es permanente en la sesión).
type Registry struct {
	mu sync.Mutex

	sessionID string
	catalog   Catalog
	repo      Repository
	now       func() time.Time

	onAdopt func(ctx context.Context, a Adoption, p catalog.Pet)
}

func NewRegistry(sessionID string, cat Catalog, repo Repository) (*Registry, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" || cat == nil || repo == nil {
		return nil, ErrInvalidInput
	}
	return &Registry{
		sessionID: sessionID,
		catalog:   cat,
		repo:      repo,
		now:       time.Now,
	}, nil
}

func (r *Registry) SessionID() string { return r.sessionID }

// Adopt es idempotente. Falla con ErrUnknownRecord (sin mutar nada) si el id no está en el catálogo.
func (r *Registry) Adopt(ctx context.Context, petID string) error {
	petID = strings.TrimSpace(petID)
	p, err := r.catalog.Get(petID)
	if err != nil {
		return ErrUnknownRecord
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	a := Adoption{
		ID:        uuid.NewString(),
		SessionID: r.sessionID,
		PetID:     p.ID,
		AdoptedAt: r.now(),
	}
	created, err := r.repo.Add(ctx, a)
	if err != nil {
		return err
	}
	if created && r.onAdopt != nil {
		r.onAdopt(ctx, a, p)
	}
	return nil
}

// IsAdopted es una consulta pura: false para ids nunca vistos (incluso fuera del catálogo).
func (r *Registry) IsAdopted(ctx context.Context, petID string) (bool, error) {
	petID = strings.TrimSpace(petID)
	if petID == "" {
		return false, nil
	}
	return r.repo.Has(ctx, r.sessionID, petID)
}

// AdoptedIdentities es un snapshot del set. Se devuelve en orden de catálogo
// para que sea determinista; el orden no tiene significado.
func (r *Registry) AdoptedIdentities(ctx context.Context) ([]string, error) {
	items, err := r.repo.ListBySession(ctx, r.sessionID)
	if err != nil {
		return nil, err
	}

	set := make(map[string]struct{}, len(items))
	for _, a := range items {
		set[a.PetID] = struct{}{}
	}

	out := make([]string, 0, len(set))
	for _, p := range r.catalog.All() {
		if _, ok := set[p.ID]; ok {
			out = append(out, p.ID)
		}
	}
	return out, nil
}

// Adoptions devuelve las entradas en orden de adopción (lo usa la vista de "adoptados").
func (r *Registry) Adoptions(ctx context.Context) ([]Adoption, error) {
	return r.repo.ListBySession(ctx, r.sessionID)
}
