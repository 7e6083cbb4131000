package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerrors "taskboard/internal/domain/errors"
	"taskboard/internal/errors"
)

func handleError(t *testing.T, err error) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/cards", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewErrorMiddleware(discardLogger()).HandleHTTPError(err, c)

	return rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body
}

func TestErrorMiddleware_HandleHTTPError(t *testing.T) {
	t.Parallel()

	t.Run("app error maps to its own status and code", func(t *testing.T) {
		t.Parallel()

		rec := handleError(t, domainerrors.ErrInvalidToken)

		require.Equal(t, http.StatusUnauthorized, rec.Code)
		body := decodeEnvelope(t, rec)
		assert.Equal(t, "INVALID_TOKEN", body["code"])
		assert.Equal(t, "invalid or expired Bearer token", body["message"])
		assert.Equal(t, "/api/cards", body["url"])
		assert.NotEmpty(t, body["xTraceId"])
	})

	t.Run("wrapped app error is still classified", func(t *testing.T) {
		t.Parallel()

		rec := handleError(t, errors.Wrap(domainerrors.ErrCardNotFound, "updating card 5"))

		require.Equal(t, http.StatusNotFound, rec.Code)
		body := decodeEnvelope(t, rec)
		assert.Equal(t, "NOT_FOUND", body["code"])
		assert.Equal(t, "card not found", body["message"])
	})

	t.Run("storage error never leaks its detail", func(t *testing.T) {
		t.Parallel()

		cause := errors.New("dial tcp 10.0.0.5:5432: connection refused")
		rec := handleError(t, domainerrors.NewStorageError(cause, "failed to list boards"))

		require.Equal(t, http.StatusInternalServerError, rec.Code)
		body := decodeEnvelope(t, rec)
		assert.Equal(t, "STORAGE_ERROR", body["code"])
		assert.Equal(t, "storage operation failed", body["message"])
		assert.NotContains(t, rec.Body.String(), "10.0.0.5")
		assert.NotContains(t, rec.Body.String(), "connection refused")
	})

	t.Run("echo http error keeps its status", func(t *testing.T) {
		t.Parallel()

		rec := handleError(t, echo.NewHTTPError(http.StatusNotFound, "Not Found"))

		require.Equal(t, http.StatusNotFound, rec.Code)
		body := decodeEnvelope(t, rec)
		assert.Equal(t, "NOT_FOUND", body["code"])
		assert.Equal(t, "Not Found", body["message"])
	})

	t.Run("unclassified error becomes the generic envelope", func(t *testing.T) {
		t.Parallel()

		rec := handleError(t, errors.New("something exploded"))

		require.Equal(t, http.StatusInternalServerError, rec.Code)
		body := decodeEnvelope(t, rec)
		assert.Equal(t, "INTERNAL_SERVER_ERROR", body["code"])
		assert.Equal(t, "internal error", body["message"])
		assert.NotContains(t, rec.Body.String(), "something exploded")
	})

	t.Run("trace id is fresh per error", func(t *testing.T) {
		t.Parallel()

		first := decodeEnvelope(t, handleError(t, domainerrors.ErrInvalidToken))
		second := decodeEnvelope(t, handleError(t, domainerrors.ErrInvalidToken))

		assert.NotEqual(t, first["xTraceId"], second["xTraceId"])
	})

	t.Run("committed response is left untouched", func(t *testing.T) {
		t.Parallel()

		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/api/cards", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		require.NoError(t, c.NoContent(http.StatusNoContent))

		NewErrorMiddleware(discardLogger()).HandleHTTPError(domainerrors.ErrInternal, c)

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Empty(t, rec.Body.String())
	})
}

func TestCodeForStatus(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "NOT_FOUND", codeForStatus(http.StatusNotFound))
	assert.Equal(t, "METHOD_NOT_ALLOWED", codeForStatus(http.StatusMethodNotAllowed))
	assert.Equal(t, "INTERNAL_SERVER_ERROR", codeForStatus(http.StatusInternalServerError))
	assert.Equal(t, "UNKNOWN", codeForStatus(599))
}
