package appointment

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/dmehra/clinicdesk/internal/model"
	"github.com/dmehra/clinicdesk/internal/service/booking"
	"github.com/dmehra/clinicdesk/pkg/errors"
	"github.com/dmehra/clinicdesk/pkg/httputil"
	"github.com/dmehra/clinicdesk/pkg/validator"
)

type Handler struct {
	service  *booking.Service
	validate *validator.Validator
}

func NewHandler(service *booking.Service, validate *validator.Validator) *Handler {
	return &Handler{service: service, validate: validate}
}

func (h *Handler) ListAppointments(c *gin.Context) {
	appointments := h.service.ListAppointments()

	// Optional filters used by the admin views.
	if status := c.Query("status"); status != "" {
		filtered := appointments[:0]
		for _, apt := range appointments {
			if apt.Status == model.AppointmentStatus(status) {
				filtered = append(filtered, apt)
			}
		}
		appointments = filtered
	}
	if kind := c.Query("kind"); kind != "" {
		filtered := appointments[:0]
		for _, apt := range appointments {
			if apt.Target.Kind == model.TargetKind(kind) {
				filtered = append(filtered, apt)
			}
		}
		appointments = filtered
	}

	httputil.RespondWithSuccess(c, appointments)
}

func (h *Handler) GetAppointment(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		httputil.RespondWithError(c, errors.BadRequest("invalid appointment ID", err))
		return
	}

	apt, ok := h.service.GetAppointment(id)
	if !ok {
		httputil.RespondWithError(c, errors.NotFound("appointment", nil))
		return
	}
	httputil.RespondWithSuccess(c, apt)
}

func (h *Handler) BookDoctor(c *gin.Context) {
	var req model.BookDoctorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondWithError(c, errors.BadRequest(err.Error(), err))
		return
	}
	if err := h.validate.Validate(&req); err != nil {
		httputil.RespondWithError(c, errors.BadRequest(err.Error(), err))
		return
	}

	apt, err := h.service.BookDoctor(c.Request.Context(), &req)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithCreated(c, apt)
}

func (h *Handler) BookService(c *gin.Context) {
	var req model.BookServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondWithError(c, errors.BadRequest(err.Error(), err))
		return
	}
	if err := h.validate.Validate(&req); err != nil {
		httputil.RespondWithError(c, errors.BadRequest(err.Error(), err))
		return
	}

	apt, err := h.service.BookService(c.Request.Context(), &req)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithCreated(c, apt)
}

// UpdateStatus sets the appointment's status. Updating an unknown id is a
// no-op that still succeeds, with null data.
func (h *Handler) UpdateStatus(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		httputil.RespondWithError(c, errors.BadRequest("invalid appointment ID", err))
		return
	}

	var req model.UpdateAppointmentStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondWithError(c, errors.BadRequest(err.Error(), err))
		return
	}
	if err := h.validate.Validate(&req); err != nil {
		httputil.RespondWithError(c, errors.BadRequest(err.Error(), err))
		return
	}

	apt, ok, err := h.service.UpdateStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	if !ok {
		httputil.RespondWithSuccess(c, nil)
		return
	}
	httputil.RespondWithSuccess(c, apt)
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	appointments := r.Group("/appointments")
	{
		appointments.GET("", h.ListAppointments)
		appointments.GET("/:id", h.GetAppointment)
		appointments.POST("/doctor", h.BookDoctor)
		appointments.POST("/service", h.BookService)
		appointments.PATCH("/:id/status", h.UpdateStatus)
	}
}

func parseID(s string) (model.AppointmentID, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, err
	}
	return model.AppointmentID(id), nil
}
