package handlers

import "github.com/gin-gonic/gin"

// Error codes carried in every 4xx body. Reference failures on appointments
// reuse the *_NOT_FOUND code of the referenced resource but are returned as
// 400, since the fault is in the caller-supplied foreign key rather than in
// the addressed resource.
const (
	CodeInvalidInput        = "INVALID_INPUT"
	CodePatientNotFound     = "PATIENT_NOT_FOUND"
	CodeProviderNotFound    = "PROVIDER_NOT_FOUND"
	CodeAppointmentNotFound = "APPOINTMENT_NOT_FOUND"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Message string `json:"message"`
	Code    string `json:"code"`
}

func respondError(c *gin.Context, status int, code, message string) {
	c.JSON(status, ErrorResponse{Message: message, Code: code})
}
