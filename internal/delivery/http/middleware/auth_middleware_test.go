package middleware

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"taskboard/internal/domain/entity"
	domainerrors "taskboard/internal/domain/errors"
	"taskboard/internal/domain/repository"
	"taskboard/internal/errors"
	mockRepo "taskboard/internal/mocks/repository"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// runAuth sends one request through Authenticate and reports whether the
// wrapped handler ran.
func runAuth(t *testing.T, m *AuthMiddleware, authorization []string) (error, bool, echo.Context) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/boards", nil)
	for _, v := range authorization {
		req.Header.Add("Authorization", v)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	nextCalled := false
	handler := m.Authenticate(func(c echo.Context) error {
		nextCalled = true

		return c.NoContent(http.StatusOK)
	})

	return handler(c), nextCalled, c
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	t.Parallel()

	requireAppError := func(t *testing.T, err error, httpCode int, errorCode string) {
		t.Helper()

		var appErr domainerrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, httpCode, appErr.HTTPCode())
		assert.Equal(t, errorCode, appErr.ErrorCode())
	}

	t.Run("missing header fails before any lookup", func(t *testing.T) {
		t.Parallel()

		tokenRepo := mockRepo.NewMockTokenRepository(t)
		m := NewAuthMiddleware(tokenRepo, discardLogger())

		err, nextCalled, _ := runAuth(t, m, nil)

		requireAppError(t, err, http.StatusUnauthorized, "EMPTY_AUTH")
		assert.False(t, nextCalled)
		tokenRepo.AssertNotCalled(t, "FindValidToken")
	})

	t.Run("whitespace-only header is malformed", func(t *testing.T) {
		t.Parallel()

		tokenRepo := mockRepo.NewMockTokenRepository(t)
		m := NewAuthMiddleware(tokenRepo, discardLogger())

		err, nextCalled, _ := runAuth(t, m, []string{"   "})

		requireAppError(t, err, http.StatusBadRequest, "MALFORMED_AUTH")
		assert.False(t, nextCalled)
	})

	t.Run("non-bearer scheme is rejected", func(t *testing.T) {
		t.Parallel()

		tokenRepo := mockRepo.NewMockTokenRepository(t)
		m := NewAuthMiddleware(tokenRepo, discardLogger())

		err, nextCalled, _ := runAuth(t, m, []string{"Basic dXNlcjpwYXNz"})

		requireAppError(t, err, http.StatusUnauthorized, "INVALID_AUTH_TYPE")
		assert.False(t, nextCalled)
	})

	t.Run("lowercase bearer scheme is rejected", func(t *testing.T) {
		t.Parallel()

		tokenRepo := mockRepo.NewMockTokenRepository(t)
		m := NewAuthMiddleware(tokenRepo, discardLogger())

		err, _, _ := runAuth(t, m, []string{"bearer abc123"})

		requireAppError(t, err, http.StatusUnauthorized, "INVALID_AUTH_TYPE")
	})

	t.Run("bearer scheme without a token id", func(t *testing.T) {
		t.Parallel()

		tokenRepo := mockRepo.NewMockTokenRepository(t)
		m := NewAuthMiddleware(tokenRepo, discardLogger())

		err, nextCalled, _ := runAuth(t, m, []string{"Bearer"})

		requireAppError(t, err, http.StatusUnauthorized, "MISSING_BEARER_TOKEN")
		assert.False(t, nextCalled)
	})

	t.Run("unknown or expired token", func(t *testing.T) {
		t.Parallel()

		tokenRepo := mockRepo.NewMockTokenRepository(t)
		tokenRepo.EXPECT().FindValidToken(mock.Anything, "abc123").
			Return(nil, repository.ErrTokenNotFound)

		m := NewAuthMiddleware(tokenRepo, discardLogger())

		err, nextCalled, _ := runAuth(t, m, []string{"Bearer abc123"})

		requireAppError(t, err, http.StatusUnauthorized, "INVALID_TOKEN")
		assert.False(t, nextCalled)
	})

	t.Run("storage failure during lookup is an internal error", func(t *testing.T) {
		t.Parallel()

		tokenRepo := mockRepo.NewMockTokenRepository(t)
		tokenRepo.EXPECT().FindValidToken(mock.Anything, "abc123").
			Return(nil, errors.New("connection refused"))

		m := NewAuthMiddleware(tokenRepo, discardLogger())

		err, nextCalled, _ := runAuth(t, m, []string{"Bearer abc123"})

		requireAppError(t, err, http.StatusInternalServerError, "INTERNAL_SERVER_ERROR")
		assert.False(t, nextCalled)
	})

	t.Run("valid token admits the request", func(t *testing.T) {
		t.Parallel()

		token := &entity.Token{
			ID:        "abc123",
			ExpiredAt: time.Now().Add(time.Hour),
		}

		tokenRepo := mockRepo.NewMockTokenRepository(t)
		tokenRepo.EXPECT().FindValidToken(mock.Anything, "abc123").Return(token, nil)

		m := NewAuthMiddleware(tokenRepo, discardLogger())

		err, nextCalled, c := runAuth(t, m, []string{"Bearer abc123"})

		require.NoError(t, err)
		assert.True(t, nextCalled)

		got, ok := CurrentToken(c)
		require.True(t, ok)
		assert.Equal(t, token, got)

		fromCtx, ok := TokenFromContext(c.Request().Context())
		require.True(t, ok)
		assert.Equal(t, token, fromCtx)
	})

	t.Run("extra fields after the token id are ignored", func(t *testing.T) {
		t.Parallel()

		token := &entity.Token{ID: "abc123", ExpiredAt: time.Now().Add(time.Hour)}

		tokenRepo := mockRepo.NewMockTokenRepository(t)
		tokenRepo.EXPECT().FindValidToken(mock.Anything, "abc123").Return(token, nil)

		m := NewAuthMiddleware(tokenRepo, discardLogger())

		err, nextCalled, _ := runAuth(t, m, []string{"Bearer abc123 trailing"})

		require.NoError(t, err)
		assert.True(t, nextCalled)
	})
}

// The full group wiring: a failed gate must surface through the error handler
// as the envelope, with the handler chain never entered.
func TestAuthMiddleware_GroupIntegration(t *testing.T) {
	t.Parallel()

	tokenRepo := mockRepo.NewMockTokenRepository(t)
	tokenRepo.EXPECT().FindValidToken(mock.Anything, "nope").
		Return(nil, repository.ErrTokenNotFound)

	m := NewAuthMiddleware(tokenRepo, discardLogger())
	errMiddleware := NewErrorMiddleware(discardLogger())

	e := echo.New()
	e.HTTPErrorHandler = errMiddleware.HandleHTTPError

	api := e.Group("/api")
	api.Use(m.Authenticate)
	api.GET("/boards", func(c echo.Context) error {
		t.Fatal("handler must not run for a rejected token")

		return nil
	})

	req := httptest.NewRequest(http.MethodGet, "/api/boards", nil)
	req.Header.Set("Authorization", "Bearer nope")
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "INVALID_TOKEN", body["code"])
	assert.Equal(t, "invalid or expired Bearer token", body["message"])
	assert.Equal(t, "/api/boards", body["url"])
	assert.NotEmpty(t, body["xTraceId"])
}

func TestTokenFromContext_Absent(t *testing.T) {
	t.Parallel()

	token, ok := TokenFromContext(context.Background())
	assert.False(t, ok)
	assert.Nil(t, token)
}
