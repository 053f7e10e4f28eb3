package http

import "github.com/gin-gonic/gin"

// Register attaches project routes to the /api group.
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.GET("/projects", h.list)
	rg.POST("/projects", h.create)
	rg.GET("/projects/:id", h.get)
	rg.PUT("/projects/:id", h.update)
	rg.DELETE("/projects/:id", h.delete)
}
