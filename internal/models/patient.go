package models

// Patient is a person receiving care.
type Patient struct {
	ID            string  `json:"id"`
	FirstName     string  `json:"firstName"`
	LastName      string  `json:"lastName"`
	DateOfBirth   string  `json:"dateOfBirth"`
	ContactNumber *string `json:"contactNumber"` // Optional, null when never supplied
	Email         *string `json:"email"`         // Optional, null when never supplied
}
