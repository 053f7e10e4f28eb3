package http

import "github.com/gin-gonic/gin"

// Register attaches proof routes to the /api group.
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.GET("/proofs", h.list)
	rg.GET("/projects/:id/proofs", h.listForProject)
	rg.POST("/proofs", h.create)
	rg.PUT("/proofs/:id", h.update)
	rg.DELETE("/proofs/:id", h.delete)
}
