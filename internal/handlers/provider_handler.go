package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/clinicore/scheduling-api/internal/models"
)

type CreateProviderRequest struct {
	FirstName     string  `json:"firstName" binding:"required"`
	LastName      string  `json:"lastName" binding:"required"`
	Specialty     string  `json:"specialty" binding:"required"`
	ContactNumber *string `json:"contactNumber"`
	Email         *string `json:"email"`
}

type UpdateProviderRequest struct {
	FirstName     *string `json:"firstName,omitempty"`
	LastName      *string `json:"lastName,omitempty"`
	Specialty     *string `json:"specialty,omitempty"`
	ContactNumber *string `json:"contactNumber,omitempty"`
	Email         *string `json:"email,omitempty"`
}

// ListProviders godoc
// @Summary      List providers
// @Description  Returns every provider in insertion order.
// @Tags         providers
// @Produce      json
// @Success      200 {array} models.Provider
// @Router       /providers [get]
func (h *Handler) ListProviders(c *gin.Context) {
	c.JSON(http.StatusOK, h.Providers.List())
}

// GetProvider godoc
// @Summary      Get a provider
// @Tags         providers
// @Produce      json
// @Param        id path string true "Provider ID"
// @Success      200 {object} models.Provider
// @Failure      404 {object} handlers.ErrorResponse
// @Router       /providers/{id} [get]
func (h *Handler) GetProvider(c *gin.Context) {
	provider, ok := h.Providers.Get(c.Param("id"))
	if !ok {
		respondError(c, http.StatusNotFound, CodeProviderNotFound, "Provider not found")
		return
	}
	c.JSON(http.StatusOK, provider)
}

// CreateProvider godoc
// @Summary      Create a provider
// @Description  firstName, lastName and specialty are required. Contact details are optional and stored as null when absent.
// @Tags         providers
// @Accept       json
// @Produce      json
// @Param        provider body handlers.CreateProviderRequest true "Provider to create"
// @Success      201 {object} models.Provider
// @Failure      400 {object} handlers.ErrorResponse
// @Router       /providers [post]
func (h *Handler) CreateProvider(c *gin.Context) {
	var req CreateProviderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, CodeInvalidInput, "firstName, lastName and specialty are required")
		return
	}

	provider := h.Providers.Create(models.Provider{
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		Specialty:     req.Specialty,
		ContactNumber: req.ContactNumber,
		Email:         req.Email,
	})

	c.JSON(http.StatusCreated, provider)
}

// UpdateProvider godoc
// @Summary      Update a provider
// @Description  Shallow merge: only fields present in the payload are overwritten.
// @Tags         providers
// @Accept       json
// @Produce      json
// @Param        id path string true "Provider ID"
// @Param        provider body handlers.UpdateProviderRequest true "Fields to overwrite"
// @Success      200 {object} models.Provider
// @Failure      400 {object} handlers.ErrorResponse
// @Failure      404 {object} handlers.ErrorResponse
// @Router       /providers/{id} [put]
func (h *Handler) UpdateProvider(c *gin.Context) {
	var req UpdateProviderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, CodeInvalidInput, "Invalid request body")
		return
	}

	provider, ok := h.Providers.Update(c.Param("id"), func(p *models.Provider) {
		if req.FirstName != nil {
			p.FirstName = *req.FirstName
		}
		if req.LastName != nil {
			p.LastName = *req.LastName
		}
		if req.Specialty != nil {
			p.Specialty = *req.Specialty
		}
		if req.ContactNumber != nil {
			p.ContactNumber = req.ContactNumber
		}
		if req.Email != nil {
			p.Email = req.Email
		}
	})
	if !ok {
		respondError(c, http.StatusNotFound, CodeProviderNotFound, "Provider not found")
		return
	}

	c.JSON(http.StatusOK, provider)
}

// DeleteProvider godoc
// @Summary      Delete a provider
// @Description  Removes the provider only. Appointments referencing it are left untouched.
// @Tags         providers
// @Param        id path string true "Provider ID"
// @Success      204 "No Content"
// @Failure      404 {object} handlers.ErrorResponse
// @Router       /providers/{id} [delete]
func (h *Handler) DeleteProvider(c *gin.Context) {
	if !h.Providers.Delete(c.Param("id")) {
		respondError(c, http.StatusNotFound, CodeProviderNotFound, "Provider not found")
		return
	}
	c.Status(http.StatusNoContent)
}
