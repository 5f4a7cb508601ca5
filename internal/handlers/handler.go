package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/clinicore/scheduling-api/internal/store"
)

// Handler carries the three resource stores. The stores are built once in
// main and passed in here; nothing in this package keeps global state, so
// tests can construct a fresh Handler per test.
type Handler struct {
	Patients     *store.PatientStore
	Providers    *store.ProviderStore
	Appointments *store.AppointmentStore
}

func NewHandler(patients *store.PatientStore, providers *store.ProviderStore, appointments *store.AppointmentStore) *Handler {
	return &Handler{
		Patients:     patients,
		Providers:    providers,
		Appointments: appointments,
	}
}

// RegisterRoutes mounts every resource route on the given engine.
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/health", h.Health)

	r.GET("/patients", h.ListPatients)
	r.POST("/patients", h.CreatePatient)
	r.GET("/patients/:id", h.GetPatient)
	r.PUT("/patients/:id", h.UpdatePatient)
	r.DELETE("/patients/:id", h.DeletePatient)

	r.GET("/providers", h.ListProviders)
	r.POST("/providers", h.CreateProvider)
	r.GET("/providers/:id", h.GetProvider)
	r.PUT("/providers/:id", h.UpdateProvider)
	r.DELETE("/providers/:id", h.DeleteProvider)

	r.GET("/appointments", h.ListAppointments)
	r.POST("/appointments", h.CreateAppointment)
	r.GET("/appointments/:id", h.GetAppointment)
	r.PUT("/appointments/:id", h.UpdateAppointment)
	r.DELETE("/appointments/:id", h.DeleteAppointment)
}

// Health godoc
// @Summary      Liveness check
// @Description  Confirms the server is up. No dependencies are probed; all state is in process memory.
// @Tags         health
// @Produce      json
// @Success      200 {object} map[string]string
// @Router       /health [get]
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
