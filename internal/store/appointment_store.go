package store

import (
	"fmt"
	"sync"

	"github.com/clinicore/scheduling-api/internal/models"
)

// AppointmentStore keeps appointments in insertion order. It stores patient
// and provider identifiers as plain values; resolving them against the other
// stores is the handlers' job, done before any lock on this store is taken.
type AppointmentStore struct {
	mu           sync.RWMutex
	appointments []models.Appointment
	lastID       int
}

func NewAppointmentStore() *AppointmentStore {
	return &AppointmentStore{appointments: make([]models.Appointment, 0)}
}

// List returns a copy of all appointments in insertion order.
func (s *AppointmentStore) List() []models.Appointment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Appointment, len(s.appointments))
	copy(out, s.appointments)
	return out
}

func (s *AppointmentStore) Get(id string) (models.Appointment, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, a := range s.appointments {
		if a.ID == id {
			return a, true
		}
	}
	return models.Appointment{}, false
}

func (s *AppointmentStore) Exists(id string) bool {
	_, ok := s.Get(id)
	return ok
}

func (s *AppointmentStore) Create(a models.Appointment) models.Appointment {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastID++
	a.ID = fmt.Sprintf("app%d", s.lastID)
	s.appointments = append(s.appointments, a)
	return a
}

func (s *AppointmentStore) Update(id string, apply func(*models.Appointment)) (models.Appointment, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.appointments {
		if s.appointments[i].ID == id {
			apply(&s.appointments[i])
			return s.appointments[i], true
		}
	}
	return models.Appointment{}, false
}

func (s *AppointmentStore) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.appointments {
		if s.appointments[i].ID == id {
			s.appointments = append(s.appointments[:i], s.appointments[i+1:]...)
			return true
		}
	}
	return false
}
