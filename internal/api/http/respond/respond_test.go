package respond

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bodyRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/echo", func(c *gin.Context) {
		data, err := Body(c)
		if err != nil {
			Invalid(c, err)
			return
		}
		c.Data(http.StatusOK, "application/json", data)
	})
	return r
}

func TestBody(t *testing.T) {
	r := bodyRouter()

	t.Run("returns the payload", func(t *testing.T) {
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader(`{"name":"Tower"}`)))
		require.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, `{"name":"Tower"}`, rr.Body.String())
	})

	t.Run("rejects an oversized payload", func(t *testing.T) {
		big := `{"name":"` + strings.Repeat("a", MaxBodyBytes) + `"}`
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader(big)))
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.JSONEq(t, `{"message":"request body is too large","field":""}`, rr.Body.String())
	})
}

func TestParamID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/items/:id", func(c *gin.Context) {
		if _, ok := ParamID(c, "id"); !ok {
			NotFound(c, "Item not found")
			return
		}
		c.Status(http.StatusOK)
	})

	for path, want := range map[string]int{
		"/items/3":   http.StatusOK,
		"/items/0":   http.StatusNotFound,
		"/items/-1":  http.StatusNotFound,
		"/items/abc": http.StatusNotFound,
	} {
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, want, rr.Code, path)
	}
}
