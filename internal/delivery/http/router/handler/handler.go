// Package handler contains the HTTP request handlers.
package handler

import (
	"net/http"
	"strconv"

	domainerrors "taskboard/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// HealthCheck reports process liveness. It sits outside the authenticated
// route group.
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// parseIDParam reads the numeric :id path parameter.
func parseIDParam(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, domainerrors.ErrValidationFailed.WithDetails("id must be an integer")
	}

	return id, nil
}

// bindAndValidate decodes the JSON body into req and runs struct validation.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	if err := c.Validate(req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}
