package service

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/dmehra/clinicdesk/internal/model"
	"github.com/dmehra/clinicdesk/internal/service/catalog"
	"github.com/dmehra/clinicdesk/pkg/errors"
	"github.com/dmehra/clinicdesk/pkg/httputil"
	"github.com/dmehra/clinicdesk/pkg/validator"
)

type Handler struct {
	service  *catalog.Service
	validate *validator.Validator
}

func NewHandler(service *catalog.Service, validate *validator.Validator) *Handler {
	return &Handler{service: service, validate: validate}
}

func (h *Handler) ListServices(c *gin.Context) {
	httputil.RespondWithSuccess(c, h.service.ListServices())
}

func (h *Handler) GetService(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		httputil.RespondWithError(c, errors.BadRequest("invalid service ID", err))
		return
	}

	svc, ok := h.service.GetService(id)
	if !ok {
		httputil.RespondWithError(c, errors.NotFound("service", nil))
		return
	}
	httputil.RespondWithSuccess(c, svc)
}

func (h *Handler) CreateService(c *gin.Context) {
	var req model.CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondWithError(c, errors.BadRequest(err.Error(), err))
		return
	}
	if err := h.validate.Validate(&req); err != nil {
		httputil.RespondWithError(c, errors.BadRequest(err.Error(), err))
		return
	}

	svc, err := h.service.AddService(c.Request.Context(), &req)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithCreated(c, svc)
}

// UpdateService merges a partial update. Patching an unknown id changes
// nothing and still succeeds with null data.
func (h *Handler) UpdateService(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		httputil.RespondWithError(c, errors.BadRequest("invalid service ID", err))
		return
	}

	var patch model.ServicePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		httputil.RespondWithError(c, errors.BadRequest(err.Error(), err))
		return
	}
	if err := h.validate.Validate(&patch); err != nil {
		httputil.RespondWithError(c, errors.BadRequest(err.Error(), err))
		return
	}

	svc, ok, err := h.service.UpdateService(c.Request.Context(), id, patch)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	if !ok {
		httputil.RespondWithSuccess(c, nil)
		return
	}
	httputil.RespondWithSuccess(c, svc)
}

func (h *Handler) DeleteService(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		httputil.RespondWithError(c, errors.BadRequest("invalid service ID", err))
		return
	}

	if err := h.service.DeleteService(c.Request.Context(), id); err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, nil)
}

func (h *Handler) ReplaceServices(c *gin.Context) {
	var services []model.Service
	if err := c.ShouldBindJSON(&services); err != nil {
		httputil.RespondWithError(c, errors.BadRequest(err.Error(), err))
		return
	}

	if err := h.service.ReplaceServices(c.Request.Context(), services); err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, h.service.ListServices())
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	services := r.Group("/services")
	{
		services.GET("", h.ListServices)
		services.POST("", h.CreateService)
		services.PUT("", h.ReplaceServices)
		services.GET("/:id", h.GetService)
		services.PATCH("/:id", h.UpdateService)
		services.DELETE("/:id", h.DeleteService)
	}
}

func parseID(s string) (model.ServiceID, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, err
	}
	return model.ServiceID(id), nil
}
