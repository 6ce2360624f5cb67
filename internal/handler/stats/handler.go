package stats

import (
	"github.com/gin-gonic/gin"

	"github.com/dmehra/clinicdesk/internal/service/dashboard"
	"github.com/dmehra/clinicdesk/pkg/httputil"
)

type Handler struct {
	service *dashboard.Service
}

func NewHandler(service *dashboard.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Overview(c *gin.Context) {
	httputil.RespondWithSuccess(c, h.service.Overview())
}

func (h *Handler) DoctorStats(c *gin.Context) {
	httputil.RespondWithSuccess(c, h.service.DoctorStats())
}

func (h *Handler) ServiceStats(c *gin.Context) {
	httputil.RespondWithSuccess(c, h.service.ServiceStats())
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	stats := r.Group("/stats")
	{
		stats.GET("/overview", h.Overview)
		stats.GET("/doctors", h.DoctorStats)
		stats.GET("/services", h.ServiceStats)
	}
}
