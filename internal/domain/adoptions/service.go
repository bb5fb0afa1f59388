package adoptions

import (
	"context"
	"strings"
	"sync"
	"time"

	"pet-explorer/internal/domain/catalog"
	"pet-explorer/internal/platform/logger"
)

// Recorder recibe cada adopción nueva (métricas). Opcional.
type Recorder interface {
	AdoptionRecorded(category string)
}

type Options struct {
	Logger   logger.Logger    // puede ser nil
	Recorder Recorder         // puede ser nil
	Now      func() time.Time // nil => time.Now
}

// Service mantiene un Registry por sesión, así dos sesiones no comparten estado.
type Service struct {
	catalog Catalog
	repo    Repository
	log     logger.Logger
	rec     Recorder
	now     func() time.Time

	mu         sync.Mutex
	registries map[string]*Registry
}

func NewService(cat Catalog, repo Repository, opts Options) *Service {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &Service{
		catalog:    cat,
		repo:       repo,
		log:        opts.Logger,
		rec:        opts.Recorder,
		now:        now,
		registries: map[string]*Registry{},
	}
}

// Registry devuelve (o crea y guarda) el registry de la sesión. Solo lo usa el
// camino de escritura; las lecturas pasan por Reader.
func (s *Service) Registry(sessionID string) (*Registry, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return nil, ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if r, ok := s.registries[sessionID]; ok {
		return r, nil
	}

	r, err := NewRegistry(sessionID, s.catalog, s.repo)
	if err != nil {
		return nil, err
	}
	r.now = s.now
	r.onAdopt = s.adopted
	s.registries[sessionID] = r
	return r, nil
}

// Reader devuelve el registry de la sesión para consultas. Si la sesión nunca
// adoptó nada se arma uno efímero que no se guarda: leer no hace crecer el mapa.
func (s *Service) Reader(sessionID string) (*Registry, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return nil, ErrInvalidInput
	}

	s.mu.Lock()
	r, ok := s.registries[sessionID]
	s.mu.Unlock()
	if ok {
		return r, nil
	}
	r, err := NewRegistry(sessionID, s.catalog, s.repo)
	if err != nil {
		return nil, err
	}
	r.now = s.now
	r.onAdopt = s.adopted
	return r, nil
}

func (s *Service) Adopt(ctx context.Context, sessionID, petID string) error {
	r, err := s.Registry(sessionID)
	if err != nil {
		return err
	}
	return r.Adopt(ctx, petID)
}

func (s *Service) IsAdopted(ctx context.Context, sessionID, petID string) (bool, error) {
	r, err := s.Reader(sessionID)
	if err != nil {
		return false, err
	}
	return r.IsAdopted(ctx, petID)
}

func (s *Service) adopted(_ context.Context, a Adoption, p catalog.Pet) {
	if s.log != nil {
		s.log.Info("pet adopted", map[string]any{
			"session_id": a.SessionID,
			"pet_id":     a.PetID,
			"category":   string(p.Category),
		})
	}
	if s.rec != nil {
		s.rec.AdoptionRecorded(string(p.Category))
	}
}
