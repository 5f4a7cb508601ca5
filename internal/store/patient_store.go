package store

import (
	"fmt"
	"sync"

	"github.com/clinicore/scheduling-api/internal/models"
)

// PatientStore keeps every patient in insertion order for the lifetime of
// the process. A single RWMutex guards the whole store; handlers never hold
// two store locks at once.
type PatientStore struct {
	mu       sync.RWMutex
	patients []models.Patient
	lastID   int
}

func NewPatientStore() *PatientStore {
	return &PatientStore{patients: make([]models.Patient, 0)}
}

// List returns a copy of all patients in insertion order.
func (s *PatientStore) List() []models.Patient {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Patient, len(s.patients))
	copy(out, s.patients)
	return out
}

func (s *PatientStore) Get(id string) (models.Patient, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.patients {
		if p.ID == id {
			return p, true
		}
	}
	return models.Patient{}, false
}

func (s *PatientStore) Exists(id string) bool {
	_, ok := s.Get(id)
	return ok
}

// Create assigns the next identifier and appends. The counter never resets,
// so identifiers stay unique even after deletions.
func (s *PatientStore) Create(p models.Patient) models.Patient {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastID++
	p.ID = fmt.Sprintf("pat%d", s.lastID)
	s.patients = append(s.patients, p)
	return p
}

// Update runs apply against the stored record while the lock is held, so a
// partial update can never interleave with another write to the same store.
func (s *PatientStore) Update(id string, apply func(*models.Patient)) (models.Patient, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.patients {
		if s.patients[i].ID == id {
			apply(&s.patients[i])
			return s.patients[i], true
		}
	}
	return models.Patient{}, false
}

func (s *PatientStore) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.patients {
		if s.patients[i].ID == id {
			s.patients = append(s.patients[:i], s.patients[i+1:]...)
			return true
		}
	}
	return false
}
