package models

// Provider is a clinician patients book appointments with.
type Provider struct {
	ID            string  `json:"id"`
	FirstName     string  `json:"firstName"`
	LastName      string  `json:"lastName"`
	Specialty     string  `json:"specialty"`
	ContactNumber *string `json:"contactNumber"` // Optional, null when never supplied
	Email         *string `json:"email"`         // Optional, null when never supplied
}
