package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubPinger struct{ err error }

func (s stubPinger) PingContext(context.Context) error { return s.err }

func healthBody(t *testing.T, db Pinger, path string) HealthResponse {
	t.Helper()
	gin.SetMode(gin.TestMode)

	router := gin.New()
	NewHealthHandler("siteproof", "1.0.0", db).RegisterRoutes(router)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, path, nil))
	require.Equal(t, http.StatusOK, rr.Code)

	var resp HealthResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	return resp
}

func TestHealthCheck(t *testing.T) {
	resp := healthBody(t, nil, "/health")
	assert.Equal(t, "healthy", resp.Status)
	assert.Equal(t, "siteproof", resp.Service)
	assert.Equal(t, "1.0.0", resp.Version)
	assert.Equal(t, "disabled", resp.DB)
}

func TestHealthCheck_DBStatus(t *testing.T) {
	assert.Equal(t, "up", healthBody(t, stubPinger{}, "/healthz").DB)
	assert.Equal(t, "down", healthBody(t, stubPinger{err: errors.New("refused")}, "/health").DB)
}

func TestHealthCheckMethodNotAllowed(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.HandleMethodNotAllowed = true
	NewHealthHandler("siteproof", "1.0.0", nil).RegisterRoutes(router)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/health", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
}
