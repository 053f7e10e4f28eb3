package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/GoSim-25-26J-441/siteproof-backend/internal/api/http/middleware"
	"github.com/GoSim-25-26J-441/siteproof-backend/internal/logging"
	"github.com/GoSim-25-26J-441/siteproof-backend/internal/projects/domain"
	"github.com/GoSim-25-26J-441/siteproof-backend/internal/projects/service"
)

// brokenRepo fails every call as an unreachable database would.
type brokenRepo struct{ err error }

func (b brokenRepo) List(context.Context, string) ([]domain.Project, error) { return nil, b.err }
func (b brokenRepo) GetByID(context.Context, int64) (*domain.Project, error) { return nil, b.err }
func (b brokenRepo) Create(context.Context, domain.ProjectInput) (*domain.Project, error) {
	return nil, b.err
}
func (b brokenRepo) Update(context.Context, int64, domain.ProjectPatch) (*domain.Project, error) {
	return nil, b.err
}
func (b brokenRepo) Delete(context.Context, int64) error { return b.err }
func (b brokenRepo) CountByStatus(context.Context) (map[string]int, error) { return nil, b.err }

func TestHandler_StorageFaultIs500(t *testing.T) {
	gin.SetMode(gin.TestMode)
	log := logging.Discard()

	r := gin.New()
	r.Use(middleware.ErrorHandler(log))
	New(service.NewProjectService(brokenRepo{err: errors.New("dial tcp: connection refused")}, log)).
		Register(r.Group("/api"))

	tests := []struct {
		method, path, body string
	}{
		{http.MethodGet, "/api/projects", ""},
		{http.MethodGet, "/api/projects/1", ""},
		{http.MethodPost, "/api/projects", `{"name":"n","description":"d","location":"l"}`},
		{http.MethodPut, "/api/projects/1", `{"name":"n"}`},
		{http.MethodDelete, "/api/projects/1", ""},
	}
	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rr := httptest.NewRecorder()
			r.ServeHTTP(rr, httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body)))

			assert.Equal(t, http.StatusInternalServerError, rr.Code)
			assert.JSONEq(t, `{"message":"Internal Server Error"}`, rr.Body.String())
			assert.NotContains(t, rr.Body.String(), "connection refused")
		})
	}
}

func TestHandler_ValidationBeforeStorage(t *testing.T) {
	gin.SetMode(gin.TestMode)
	log := logging.Discard()

	r := gin.New()
	r.Use(middleware.ErrorHandler(log))
	New(service.NewProjectService(brokenRepo{err: errors.New("must not be called")}, log)).
		Register(r.Group("/api"))

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/api/projects", strings.NewReader(`{"description":"d"}`)))
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.JSONEq(t, `{"message":"name is required","field":"name"}`, rr.Body.String())
}
