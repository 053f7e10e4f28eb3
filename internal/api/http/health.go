package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const pingTimeout = time.Second

// Database states reported by the health routes.
const (
	dbUp       = "up"
	dbDown     = "down"
	dbDisabled = "disabled"
)

// HealthResponse is served by /health and /healthz. The process answers 200
// while it runs; DB carries the storage state separately.
type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Service   string    `json:"service"`
	Version   string    `json:"version"`
	DB        string    `json:"db,omitempty"`
}

// Pinger is satisfied by *sql.DB.
type Pinger interface {
	PingContext(ctx context.Context) error
}

type HealthHandler struct {
	service string
	version string
	store   Pinger
}

// NewHealthHandler reports on the Postgres store behind store. A nil store
// means the memory backend.
func NewHealthHandler(service, version string, store Pinger) *HealthHandler {
	return &HealthHandler{service: service, version: version, store: store}
}

func (h *HealthHandler) storeState(ctx context.Context) string {
	if h.store == nil {
		return dbDisabled
	}
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := h.store.PingContext(ctx); err != nil {
		return dbDown
	}
	return dbUp
}

func (h *HealthHandler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC(),
		Service:   h.service,
		Version:   h.version,
		DB:        h.storeState(c.Request.Context()),
	})
}

func (h *HealthHandler) RegisterRoutes(r gin.IRouter) {
	r.GET("/health", h.HealthCheck)
	r.GET("/healthz", h.HealthCheck)
}
