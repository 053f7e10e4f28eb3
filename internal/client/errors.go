package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// APIError is a non-2xx response.
type APIError struct {
	Status  int
	Message string
	Field   string
}

func (e *APIError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s (%s)", e.Message, e.Field)
	}
	return e.Message
}

// IsNotFound reports whether err is a 404 from the API.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound
}

// newAPIError keeps the server's message for 400 and 404 bodies; every other
// failure carries the operation's fallback message.
func newAPIError(status int, body []byte, fallback string) *APIError {
	e := &APIError{Status: status, Message: fallback}
	if status != http.StatusBadRequest && status != http.StatusNotFound {
		return e
	}

	var parsed struct {
		Message string `json:"message"`
		Field   string `json:"field"`
	}
	if err := json.Unmarshal(body, &parsed); err == nil && parsed.Message != "" {
		e.Message = parsed.Message
		e.Field = parsed.Field
	}
	return e
}
