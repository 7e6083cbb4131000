// Package response defines the wire shape of error responses. Successful
// responses carry their payload directly; every non-2xx response uses the one
// envelope defined here.
package response

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// Envelope is the uniform error response body.
type Envelope struct {
	Code     string    `json:"code"`     // Stable machine-readable code, e.g. "INVALID_TOKEN"
	Message  string    `json:"message"`  // Safe human-readable message
	URL      string    `json:"url"`      // The request URL that produced the error
	XTraceID uuid.UUID `json:"xTraceId"` // Fresh per error instance, never derived from the request
}

// NewEnvelope builds an error envelope for the given request with a freshly
// generated trace id.
func NewEnvelope(c echo.Context, code, message string) *Envelope {
	return &Envelope{
		Code:     code,
		Message:  message,
		URL:      c.Request().RequestURI,
		XTraceID: uuid.New(),
	}
}

// Error writes an error envelope with the given HTTP status.
func Error(c echo.Context, status int, code, message string) error {
	return c.JSON(status, NewEnvelope(c, code, message))
}
