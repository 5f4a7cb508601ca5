package store

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clinicore/scheduling-api/internal/models"
)

func TestPatientStoreListKeepsInsertionOrder(t *testing.T) {
	s := NewPatientStore()
	for i := 0; i < 5; i++ {
		s.Create(models.Patient{FirstName: fmt.Sprintf("p%d", i)})
	}

	list := s.List()
	require.Len(t, list, 5)
	for i, p := range list {
		assert.Equal(t, fmt.Sprintf("p%d", i), p.FirstName)
		assert.Equal(t, fmt.Sprintf("pat%d", i+1), p.ID)
	}
}

func TestPatientStoreIDsStayUniqueAfterDelete(t *testing.T) {
	s := NewPatientStore()
	first := s.Create(models.Patient{FirstName: "a"})
	require.Equal(t, "pat1", first.ID)

	require.True(t, s.Delete(first.ID))

	// The counter does not reset, so the next id must not reuse pat1.
	second := s.Create(models.Patient{FirstName: "b"})
	assert.Equal(t, "pat2", second.ID)
}

func TestPatientStoreGetMissing(t *testing.T) {
	s := NewPatientStore()
	_, ok := s.Get("pat1")
	assert.False(t, ok)
	assert.False(t, s.Exists("pat1"))
}

func TestPatientStoreUpdateAppliesInPlace(t *testing.T) {
	s := NewPatientStore()
	p := s.Create(models.Patient{FirstName: "Alice", LastName: "Smith"})

	updated, ok := s.Update(p.ID, func(p *models.Patient) {
		p.LastName = "Jones"
	})
	require.True(t, ok)
	assert.Equal(t, "Alice", updated.FirstName)
	assert.Equal(t, "Jones", updated.LastName)

	stored, ok := s.Get(p.ID)
	require.True(t, ok)
	assert.Equal(t, "Jones", stored.LastName)
}

func TestPatientStoreUpdateMissing(t *testing.T) {
	s := NewPatientStore()
	_, ok := s.Update("pat9", func(p *models.Patient) { p.FirstName = "x" })
	assert.False(t, ok)
}

func TestPatientStoreDeleteTwice(t *testing.T) {
	s := NewPatientStore()
	p := s.Create(models.Patient{FirstName: "a"})
	assert.True(t, s.Delete(p.ID))
	assert.False(t, s.Delete(p.ID))
}

func TestPatientStoreListReturnsCopy(t *testing.T) {
	s := NewPatientStore()
	s.Create(models.Patient{FirstName: "Alice"})

	list := s.List()
	list[0].FirstName = "mutated"

	stored, ok := s.Get("pat1")
	require.True(t, ok)
	assert.Equal(t, "Alice", stored.FirstName)
}

func TestProviderStorePrefix(t *testing.T) {
	s := NewProviderStore()
	p := s.Create(models.Provider{FirstName: "James", Specialty: "Cardiology"})
	assert.Equal(t, "prov1", p.ID)

	got, ok := s.Get("prov1")
	require.True(t, ok)
	assert.Equal(t, "Cardiology", got.Specialty)
}

func TestAppointmentStorePrefixAndDelete(t *testing.T) {
	s := NewAppointmentStore()
	a := s.Create(models.Appointment{PatientID: "pat1", ProviderID: "prov1", Status: "scheduled"})
	assert.Equal(t, "app1", a.ID)

	require.True(t, s.Delete("app1"))
	_, ok := s.Get("app1")
	assert.False(t, ok)

	next := s.Create(models.Appointment{PatientID: "pat1", ProviderID: "prov1"})
	assert.Equal(t, "app2", next.ID)
}

func TestStoresStartEmpty(t *testing.T) {
	assert.Empty(t, NewPatientStore().List())
	assert.Empty(t, NewProviderStore().List())
	assert.Empty(t, NewAppointmentStore().List())
}
