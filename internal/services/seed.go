package services

import (
	"log"

	"github.com/clinicore/scheduling-api/internal/models"
	"github.com/clinicore/scheduling-api/internal/store"
)

// SeedDemoData loads a small fixture set so the API is explorable right
// after boot: one patient, one provider and one scheduled appointment
// between them. On fresh stores the records come out as pat1, prov1, app1.
func SeedDemoData(patients *store.PatientStore, providers *store.ProviderStore, appointments *store.AppointmentStore) {
	patient := patients.Create(models.Patient{
		FirstName:     "Alice",
		LastName:      "Smith",
		DateOfBirth:   "1990-01-01",
		ContactNumber: strPtr("+1-555-0134"),
		Email:         strPtr("alice.smith@example.com"),
	})

	provider := providers.Create(models.Provider{
		FirstName: "James",
		LastName:  "Okafor",
		Specialty: "General Practice",
		Email:     strPtr("j.okafor@clinic.example.com"),
	})

	apt := appointments.Create(models.Appointment{
		PatientID:  patient.ID,
		ProviderID: provider.ID,
		Date:       "2025-06-15T10:00:00Z",
		Type:       "Check-up",
		Status:     "scheduled",
	})

	log.Printf("Seeded demo data: patient %s, provider %s, appointment %s", patient.ID, provider.ID, apt.ID)
}

func strPtr(s string) *string { return &s }
