package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clinicore/scheduling-api/internal/store"
)

func TestSeedDemoDataOnFreshStores(t *testing.T) {
	patients := store.NewPatientStore()
	providers := store.NewProviderStore()
	appointments := store.NewAppointmentStore()

	SeedDemoData(patients, providers, appointments)

	patient, ok := patients.Get("pat1")
	require.True(t, ok)
	assert.Equal(t, "Alice", patient.FirstName)

	provider, ok := providers.Get("prov1")
	require.True(t, ok)
	assert.Equal(t, "General Practice", provider.Specialty)

	apt, ok := appointments.Get("app1")
	require.True(t, ok)
	assert.Equal(t, "pat1", apt.PatientID)
	assert.Equal(t, "prov1", apt.ProviderID)
	assert.Equal(t, "scheduled", apt.Status)
}
