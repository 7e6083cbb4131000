package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	deliverycontext "taskboard/internal/delivery/context"
	"taskboard/internal/delivery/http/response"
	domainerrors "taskboard/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrorMiddleware maps every error leaving a handler or middleware onto the
// uniform response envelope. Anything it cannot classify becomes a generic
// internal error: raw failure detail is logged here and never serialized into
// the body.
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		if appErr.HTTPCode() >= http.StatusInternalServerError {
			m.logger.Error("request failed",
				slog.String("code", appErr.ErrorCode()),
				slog.String("error", err.Error()),
				slog.String("details", appErr.Details()),
				slog.String("method", c.Request().Method),
				slog.String("path", c.Request().URL.Path),
				slog.String("request_id", deliverycontext.GetRequestID(c)),
			)
		}

		m.respond(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message())

		return
	}

	// Echo's own errors, most notably 404 for unregistered routes.
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		m.respond(c, httpErr.Code, codeForStatus(httpErr.Code), fmt.Sprintf("%v", httpErr.Message))

		return
	}

	// Unclassified failure: log the detail, answer with the generic envelope.
	m.logger.Error("unhandled error",
		slog.String("error", err.Error()),
		slog.String("method", c.Request().Method),
		slog.String("path", c.Request().URL.Path),
		slog.String("request_id", deliverycontext.GetRequestID(c)),
	)

	m.respond(c, http.StatusInternalServerError,
		domainerrors.ErrInternal.ErrorCode(), domainerrors.ErrInternal.Message())
}

func (m *ErrorMiddleware) respond(c echo.Context, status int, code, message string) {
	if err := response.Error(c, status, code, message); err != nil {
		m.logger.Error("failed to write error response", slog.String("error", err.Error()))
	}
}

// codeForStatus derives a stable machine code from an HTTP status,
// e.g. 404 -> NOT_FOUND.
func codeForStatus(status int) string {
	text := http.StatusText(status)
	if text == "" {
		return "UNKNOWN"
	}

	return strings.ReplaceAll(strings.ToUpper(text), " ", "_")
}
