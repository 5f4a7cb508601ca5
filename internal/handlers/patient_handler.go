package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/clinicore/scheduling-api/internal/models"
)

type CreatePatientRequest struct {
	FirstName     string  `json:"firstName" binding:"required"`
	LastName      string  `json:"lastName" binding:"required"`
	DateOfBirth   string  `json:"dateOfBirth" binding:"required"`
	ContactNumber *string `json:"contactNumber"`
	Email         *string `json:"email"`
}

// UpdatePatientRequest uses pointers so absent fields can be told apart from
// fields deliberately set to an empty value. Only non-nil fields are applied.
type UpdatePatientRequest struct {
	FirstName     *string `json:"firstName,omitempty"`
	LastName      *string `json:"lastName,omitempty"`
	DateOfBirth   *string `json:"dateOfBirth,omitempty"`
	ContactNumber *string `json:"contactNumber,omitempty"`
	Email         *string `json:"email,omitempty"`
}

// ListPatients godoc
// @Summary      List patients
// @Description  Returns every patient in insertion order.
// @Tags         patients
// @Produce      json
// @Success      200 {array} models.Patient
// @Router       /patients [get]
func (h *Handler) ListPatients(c *gin.Context) {
	c.JSON(http.StatusOK, h.Patients.List())
}

// GetPatient godoc
// @Summary      Get a patient
// @Tags         patients
// @Produce      json
// @Param        id path string true "Patient ID"
// @Success      200 {object} models.Patient
// @Failure      404 {object} handlers.ErrorResponse
// @Router       /patients/{id} [get]
func (h *Handler) GetPatient(c *gin.Context) {
	patient, ok := h.Patients.Get(c.Param("id"))
	if !ok {
		respondError(c, http.StatusNotFound, CodePatientNotFound, "Patient not found")
		return
	}
	c.JSON(http.StatusOK, patient)
}

// CreatePatient godoc
// @Summary      Create a patient
// @Description  firstName, lastName and dateOfBirth are required. Contact details are optional and stored as null when absent.
// @Tags         patients
// @Accept       json
// @Produce      json
// @Param        patient body handlers.CreatePatientRequest true "Patient to create"
// @Success      201 {object} models.Patient
// @Failure      400 {object} handlers.ErrorResponse
// @Router       /patients [post]
func (h *Handler) CreatePatient(c *gin.Context) {
	var req CreatePatientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, CodeInvalidInput, "firstName, lastName and dateOfBirth are required")
		return
	}

	patient := h.Patients.Create(models.Patient{
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		DateOfBirth:   req.DateOfBirth,
		ContactNumber: req.ContactNumber,
		Email:         req.Email,
	})

	c.JSON(http.StatusCreated, patient)
}

// UpdatePatient godoc
// @Summary      Update a patient
// @Description  Shallow merge: only fields present in the payload are overwritten. An empty payload is a no-op.
// @Tags         patients
// @Accept       json
// @Produce      json
// @Param        id path string true "Patient ID"
// @Param        patient body handlers.UpdatePatientRequest true "Fields to overwrite"
// @Success      200 {object} models.Patient
// @Failure      400 {object} handlers.ErrorResponse
// @Failure      404 {object} handlers.ErrorResponse
// @Router       /patients/{id} [put]
func (h *Handler) UpdatePatient(c *gin.Context) {
	var req UpdatePatientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, CodeInvalidInput, "Invalid request body")
		return
	}

	patient, ok := h.Patients.Update(c.Param("id"), func(p *models.Patient) {
		if req.FirstName != nil {
			p.FirstName = *req.FirstName
		}
		if req.LastName != nil {
			p.LastName = *req.LastName
		}
		if req.DateOfBirth != nil {
			p.DateOfBirth = *req.DateOfBirth
		}
		if req.ContactNumber != nil {
			p.ContactNumber = req.ContactNumber
		}
		if req.Email != nil {
			p.Email = req.Email
		}
	})
	if !ok {
		respondError(c, http.StatusNotFound, CodePatientNotFound, "Patient not found")
		return
	}

	c.JSON(http.StatusOK, patient)
}

// DeletePatient godoc
// @Summary      Delete a patient
// @Description  Removes the patient only. Appointments referencing it are left untouched.
// @Tags         patients
// @Param        id path string true "Patient ID"
// @Success      204 "No Content"
// @Failure      404 {object} handlers.ErrorResponse
// @Router       /patients/{id} [delete]
func (h *Handler) DeletePatient(c *gin.Context) {
	if !h.Patients.Delete(c.Param("id")) {
		respondError(c, http.StatusNotFound, CodePatientNotFound, "Patient not found")
		return
	}
	c.Status(http.StatusNoContent)
}
