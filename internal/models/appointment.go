package models

// Appointment links a patient and a provider at a point in time. PatientID
// and ProviderID are references by value: they must resolve when the
// appointment is created or retargeted, but deleting the referenced record
// later does not touch the appointment.
type Appointment struct {
	ID         string `json:"id"`
	PatientID  string `json:"patientId"`
	ProviderID string `json:"providerId"`
	Date       string `json:"date"` // ISO 8601, stored as given
	Type       string `json:"type"`
	Status     string `json:"status"` // "scheduled" on creation, any string afterwards
}
