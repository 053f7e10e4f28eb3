// Package respond holds the response helpers shared by the resource handlers.
package respond

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/GoSim-25-26J-441/siteproof-backend/internal/schema"
)

// ParamID parses a positive integer path parameter. ok is false for anything
// else, which callers treat as a missing resource.
func ParamID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id < 1 {
		return 0, false
	}
	return id, true
}

// MaxBodyBytes caps a request body.
const MaxBodyBytes = 1 << 20

// Body reads the raw request body. A body over MaxBodyBytes is a *FieldError.
func Body(c *gin.Context) ([]byte, error) {
	data, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, MaxBodyBytes))
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return nil, &schema.FieldError{Message: "request body is too large"}
	}
	return data, err
}

// Invalid writes a 400 for validation failures and hands anything else to the
// error middleware.
func Invalid(c *gin.Context, err error) {
	var fe *schema.FieldError
	if errors.As(err, &fe) {
		c.JSON(http.StatusBadRequest, fe)
		return
	}
	Fault(c, err)
}

func NotFound(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, gin.H{"message": message})
}

// Fault records a storage or internal error; ErrorHandler writes the 500.
func Fault(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}
