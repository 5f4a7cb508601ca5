package store

import (
	"fmt"
	"sync"

	"github.com/clinicore/scheduling-api/internal/models"
)

// ProviderStore mirrors PatientStore for providers.
type ProviderStore struct {
	mu        sync.RWMutex
	providers []models.Provider
	lastID    int
}

func NewProviderStore() *ProviderStore {
	return &ProviderStore{providers: make([]models.Provider, 0)}
}

// List returns a copy of all providers in insertion order.
func (s *ProviderStore) List() []models.Provider {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Provider, len(s.providers))
	copy(out, s.providers)
	return out
}

func (s *ProviderStore) Get(id string) (models.Provider, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.providers {
		if p.ID == id {
			return p, true
		}
	}
	return models.Provider{}, false
}

func (s *ProviderStore) Exists(id string) bool {
	_, ok := s.Get(id)
	return ok
}

func (s *ProviderStore) Create(p models.Provider) models.Provider {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastID++
	p.ID = fmt.Sprintf("prov%d", s.lastID)
	s.providers = append(s.providers, p)
	return p
}

func (s *ProviderStore) Update(id string, apply func(*models.Provider)) (models.Provider, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.providers {
		if s.providers[i].ID == id {
			apply(&s.providers[i])
			return s.providers[i], true
		}
	}
	return models.Provider{}, false
}

func (s *ProviderStore) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.providers {
		if s.providers[i].ID == id {
			s.providers = append(s.providers[:i], s.providers[i+1:]...)
			return true
		}
	}
	return false
}
