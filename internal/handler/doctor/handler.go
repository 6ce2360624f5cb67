package doctor

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/dmehra/clinicdesk/internal/model"
	"github.com/dmehra/clinicdesk/internal/service/directory"
	"github.com/dmehra/clinicdesk/pkg/errors"
	"github.com/dmehra/clinicdesk/pkg/httputil"
	"github.com/dmehra/clinicdesk/pkg/validator"
)

type Handler struct {
	service  *directory.Service
	validate *validator.Validator
}

func NewHandler(service *directory.Service, validate *validator.Validator) *Handler {
	return &Handler{service: service, validate: validate}
}

func (h *Handler) ListDoctors(c *gin.Context) {
	httputil.RespondWithSuccess(c, h.service.ListDoctors())
}

func (h *Handler) GetDoctor(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		httputil.RespondWithError(c, errors.BadRequest("invalid doctor ID", err))
		return
	}

	doc, ok := h.service.GetDoctor(id)
	if !ok {
		httputil.RespondWithError(c, errors.NotFound("doctor", nil))
		return
	}
	httputil.RespondWithSuccess(c, doc)
}

func (h *Handler) CreateDoctor(c *gin.Context) {
	var req model.CreateDoctorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondWithError(c, errors.BadRequest(err.Error(), err))
		return
	}
	if err := h.validate.Validate(&req); err != nil {
		httputil.RespondWithError(c, errors.BadRequest(err.Error(), err))
		return
	}

	doc, err := h.service.AddDoctor(c.Request.Context(), &req)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithCreated(c, doc)
}

// DeleteDoctor removes the doctor when present. Deleting an unknown id is
// not an error; the call is idempotent.
func (h *Handler) DeleteDoctor(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		httputil.RespondWithError(c, errors.BadRequest("invalid doctor ID", err))
		return
	}

	if err := h.service.DeleteDoctor(c.Request.Context(), id); err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, nil)
}

// ReplaceDoctors bulk-sets the roster, renumbering the id counter above the
// highest id supplied.
func (h *Handler) ReplaceDoctors(c *gin.Context) {
	var doctors []model.Doctor
	if err := c.ShouldBindJSON(&doctors); err != nil {
		httputil.RespondWithError(c, errors.BadRequest(err.Error(), err))
		return
	}

	if err := h.service.ReplaceDoctors(c.Request.Context(), doctors); err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, h.service.ListDoctors())
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	doctors := r.Group("/doctors")
	{
		doctors.GET("", h.ListDoctors)
		doctors.POST("", h.CreateDoctor)
		doctors.PUT("", h.ReplaceDoctors)
		doctors.GET("/:id", h.GetDoctor)
		doctors.DELETE("/:id", h.DeleteDoctor)
	}
}

func parseID(s string) (model.DoctorID, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, err
	}
	return model.DoctorID(id), nil
}
