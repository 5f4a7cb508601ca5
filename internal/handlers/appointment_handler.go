package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/clinicore/scheduling-api/internal/models"
)

// DefaultStatus is assigned to every new appointment. After creation the
// field is an open string: callers may overwrite it with any value.
const DefaultStatus = "scheduled"

type CreateAppointmentRequest struct {
	PatientID  string `json:"patientId" binding:"required"`
	ProviderID string `json:"providerId" binding:"required"`
	Date       string `json:"date" binding:"required"`
	Type       string `json:"type" binding:"required"`
}

type UpdateAppointmentRequest struct {
	PatientID  *string `json:"patientId,omitempty"`
	ProviderID *string `json:"providerId,omitempty"`
	Date       *string `json:"date,omitempty"`
	Type       *string `json:"type,omitempty"`
	Status     *string `json:"status,omitempty"`
}

// ListAppointments godoc
// @Summary      List appointments
// @Description  Returns every appointment in insertion order.
// @Tags         appointments
// @Produce      json
// @Success      200 {array} models.Appointment
// @Router       /appointments [get]
func (h *Handler) ListAppointments(c *gin.Context) {
	c.JSON(http.StatusOK, h.Appointments.List())
}

// GetAppointment godoc
// @Summary      Get an appointment
// @Tags         appointments
// @Produce      json
// @Param        id path string true "Appointment ID"
// @Success      200 {object} models.Appointment
// @Failure      404 {object} handlers.ErrorResponse
// @Router       /appointments/{id} [get]
func (h *Handler) GetAppointment(c *gin.Context) {
	apt, ok := h.Appointments.Get(c.Param("id"))
	if !ok {
		respondError(c, http.StatusNotFound, CodeAppointmentNotFound, "Appointment not found")
		return
	}
	c.JSON(http.StatusOK, apt)
}

// CreateAppointment godoc
// @Summary      Book an appointment
// @Description  patientId and providerId must reference existing records. A bad reference is a 400 with the referenced resource's not-found code, since the fault is in the request body. New appointments start with status "scheduled".
// @Tags         appointments
// @Accept       json
// @Produce      json
// @Param        appointment body handlers.CreateAppointmentRequest true "Appointment to book"
// @Success      201 {object} models.Appointment
// @Failure      400 {object} handlers.ErrorResponse
// @Router       /appointments [post]
func (h *Handler) CreateAppointment(c *gin.Context) {
	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, CodeInvalidInput, "patientId, providerId, date and type are required")
		return
	}

	// Patient is checked first, so an unknown patient wins even when the
	// provider reference is bad too. Each existence check takes only the
	// referenced store's lock, never this store's.
	if !h.Patients.Exists(req.PatientID) {
		respondError(c, http.StatusBadRequest, CodePatientNotFound, "Referenced patient does not exist")
		return
	}
	if !h.Providers.Exists(req.ProviderID) {
		respondError(c, http.StatusBadRequest, CodeProviderNotFound, "Referenced provider does not exist")
		return
	}

	apt := h.Appointments.Create(models.Appointment{
		PatientID:  req.PatientID,
		ProviderID: req.ProviderID,
		Date:       req.Date,
		Type:       req.Type,
		Status:     DefaultStatus,
	})

	c.JSON(http.StatusCreated, apt)
}

// UpdateAppointment godoc
// @Summary      Update an appointment
// @Description  Shallow merge. patientId and providerId are re-validated when supplied; date, type and status are accepted as given. Omitted fields are untouched.
// @Tags         appointments
// @Accept       json
// @Produce      json
// @Param        id path string true "Appointment ID"
// @Param        appointment body handlers.UpdateAppointmentRequest true "Fields to overwrite"
// @Success      200 {object} models.Appointment
// @Failure      400 {object} handlers.ErrorResponse
// @Failure      404 {object} handlers.ErrorResponse
// @Router       /appointments/{id} [put]
func (h *Handler) UpdateAppointment(c *gin.Context) {
	var req UpdateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, CodeInvalidInput, "Invalid request body")
		return
	}

	// Missing appointment takes precedence over bad references.
	if !h.Appointments.Exists(c.Param("id")) {
		respondError(c, http.StatusNotFound, CodeAppointmentNotFound, "Appointment not found")
		return
	}

	// References are validated before anything is written, so a rejected
	// update leaves the record exactly as it was.
	if req.PatientID != nil && !h.Patients.Exists(*req.PatientID) {
		respondError(c, http.StatusBadRequest, CodePatientNotFound, "Referenced patient does not exist")
		return
	}
	if req.ProviderID != nil && !h.Providers.Exists(*req.ProviderID) {
		respondError(c, http.StatusBadRequest, CodeProviderNotFound, "Referenced provider does not exist")
		return
	}

	apt, ok := h.Appointments.Update(c.Param("id"), func(a *models.Appointment) {
		if req.PatientID != nil {
			a.PatientID = *req.PatientID
		}
		if req.ProviderID != nil {
			a.ProviderID = *req.ProviderID
		}
		if req.Date != nil {
			a.Date = *req.Date
		}
		if req.Type != nil {
			a.Type = *req.Type
		}
		if req.Status != nil {
			a.Status = *req.Status
		}
	})
	if !ok {
		respondError(c, http.StatusNotFound, CodeAppointmentNotFound, "Appointment not found")
		return
	}

	c.JSON(http.StatusOK, apt)
}

// DeleteAppointment godoc
// @Summary      Cancel an appointment
// @Tags         appointments
// @Param        id path string true "Appointment ID"
// @Success      204 "No Content"
// @Failure      404 {object} handlers.ErrorResponse
// @Router       /appointments/{id} [delete]
func (h *Handler) DeleteAppointment(c *gin.Context) {
	if !h.Appointments.Delete(c.Param("id")) {
		respondError(c, http.StatusNotFound, CodeAppointmentNotFound, "Appointment not found")
		return
	}
	c.Status(http.StatusNoContent)
}
