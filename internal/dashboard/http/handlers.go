package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/GoSim-25-26J-441/siteproof-backend/internal/api/http/respond"
	"github.com/GoSim-25-26J-441/siteproof-backend/internal/dashboard/service"
	projectdomain "github.com/GoSim-25-26J-441/siteproof-backend/internal/projects/domain"
)

type Handler struct {
	svc *service.DashboardService
}

func New(svc *service.DashboardService) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.GET("/stats", h.stats)
	rg.GET("/projects/:id/progress", h.progress)
}

func (h *Handler) stats(c *gin.Context) {
	stats, err := h.svc.Stats(c.Request.Context())
	if err != nil {
		respond.Fault(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *Handler) progress(c *gin.Context) {
	id, ok := respond.ParamID(c, "id")
	if !ok {
		respond.NotFound(c, "Project not found")
		return
	}

	p, err := h.svc.Progress(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, projectdomain.ErrNotFound) {
			respond.NotFound(c, "Project not found")
			return
		}
		respond.Fault(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}
