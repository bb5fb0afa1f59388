package memory

import (
	"context"
	"errors"
	"strings"
	"sync"

	"pet-explorer/internal/domain/adoptions"
)

type adoptionKey struct {
	sessionID string
	petID     string
}

type adoptionRepo struct {
	mu        sync.RWMutex
	byKey     map[adoptionKey]struct{}
	bySession map[string][]adoptions.Adoption // orden de inserción
}

func NewAdoptionRepo() adoptions.Repository {
	return &adoptionRepo{
		byKey:     make(map[adoptionKey]struct{}),
		bySession: make(map[string][]adoptions.Adoption),
	}
}

func (r *adoptionRepo) Add(ctx context.Context, a adoptions.Adoption) (bool, error) {
	if strings.TrimSpace(a.SessionID) == "" || strings.TrimSpace(a.PetID) == "" {
		return false, errors.New("session id and pet id required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	k := adoptionKey{sessionID: a.SessionID, petID: a.PetID}
	if _, exists := r.byKey[k]; exists {
		return false, nil
	}
	r.byKey[k] = struct{}{}
	r.bySession[a.SessionID] = append(r.bySession[a.SessionID], a)
	return true, nil
}

func (r *adoptionRepo) Has(ctx context.Context, sessionID, petID string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.byKey[adoptionKey{sessionID: sessionID, petID: petID}]
	return ok, nil
}

func (r *adoptionRepo) ListBySession(ctx context.Context, sessionID string) ([]adoptions.Adoption, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	list := r.bySession[sessionID]
	out := make([]adoptions.Adoption, len(list))
	copy(out, list)
	return out, nil
}
