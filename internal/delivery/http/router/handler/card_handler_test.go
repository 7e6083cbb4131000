package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"taskboard/internal/domain/entity"
	domainerrors "taskboard/internal/domain/errors"
	mockUC "taskboard/internal/mocks/usecase"
	"taskboard/internal/usecase"
)

func newCardHandler(t *testing.T) (*CardHandler, *mockUC.MockCardUsecase) {
	t.Helper()

	cardUC := mockUC.NewMockCardUsecase(t)
	h := NewCardHandler(CardHandlerParams{
		CardUC: cardUC,
		Logger: slog.New(slog.DiscardHandler),
	})

	return h, cardUC
}

func TestCardHandler_ListCards(t *testing.T) {
	t.Parallel()

	h, cardUC := newCardHandler(t)

	cards := []*entity.Card{
		{ID: 1, BoardID: 4, Description: "write docs", Status: entity.StatusTodo},
	}
	cardUC.EXPECT().ListCards(mock.Anything, int64(4)).Return(cards, nil)

	c, rec := newTestContext(t, http.MethodGet, "/api/boards/4/cards", "")
	c.SetParamNames("id")
	c.SetParamValues("4")

	require.NoError(t, h.ListCards(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var got []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "write docs", got[0]["description"])
	assert.Equal(t, float64(4), got[0]["boardId"])
	assert.Equal(t, "todo", got[0]["status"])
}

func TestCardHandler_CreateCard(t *testing.T) {
	t.Parallel()

	t.Run("creates a card", func(t *testing.T) {
		t.Parallel()

		h, cardUC := newCardHandler(t)

		cardUC.EXPECT().CreateCard(mock.Anything, int64(4), "ship release").
			Return(&entity.Card{ID: 11, BoardID: 4, Description: "ship release", Status: entity.StatusTodo}, nil)

		c, rec := newTestContext(t, http.MethodPost, "/api/cards", `{"boardId":4,"description":"ship release"}`)

		require.NoError(t, h.CreateCard(c))
		require.Equal(t, http.StatusCreated, rec.Code)

		var got map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, float64(11), got["id"])
		assert.Equal(t, "todo", got["status"])
	})

	t.Run("missing board id fails validation", func(t *testing.T) {
		t.Parallel()

		h, _ := newCardHandler(t)

		c, _ := newTestContext(t, http.MethodPost, "/api/cards", `{"description":"orphan"}`)

		err := h.CreateCard(c)

		var appErr domainerrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode())
		assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
	})

	t.Run("malformed body fails validation", func(t *testing.T) {
		t.Parallel()

		h, _ := newCardHandler(t)

		c, _ := newTestContext(t, http.MethodPost, "/api/cards", `{"boardId":`)

		err := h.CreateCard(c)

		var appErr domainerrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
	})
}

func TestCardHandler_UpdateCard(t *testing.T) {
	t.Parallel()

	t.Run("updates description and status together", func(t *testing.T) {
		t.Parallel()

		h, cardUC := newCardHandler(t)

		cardUC.EXPECT().UpdateCard(mock.Anything, int64(5), usecase.CardUpdate{
			Description: "done now",
			Status:      entity.StatusDone,
		}).Return(&entity.Card{ID: 5, BoardID: 4, Description: "done now", Status: entity.StatusDone}, nil)

		c, rec := newTestContext(t, http.MethodPatch, "/api/cards/5", `{"description":"done now","status":"done"}`)
		c.SetParamNames("id")
		c.SetParamValues("5")

		require.NoError(t, h.UpdateCard(c))
		require.Equal(t, http.StatusOK, rec.Code)

		var got map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, "done", got["status"])
		assert.Equal(t, "done now", got["description"])
	})

	t.Run("status outside the closed set fails validation", func(t *testing.T) {
		t.Parallel()

		h, _ := newCardHandler(t)

		c, _ := newTestContext(t, http.MethodPatch, "/api/cards/5", `{"description":"x","status":"blocked"}`)
		c.SetParamNames("id")
		c.SetParamValues("5")

		err := h.UpdateCard(c)

		var appErr domainerrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
	})

	t.Run("absent card surfaces not found", func(t *testing.T) {
		t.Parallel()

		h, cardUC := newCardHandler(t)

		cardUC.EXPECT().UpdateCard(mock.Anything, int64(404), mock.Anything).
			Return(nil, domainerrors.ErrCardNotFound)

		c, _ := newTestContext(t, http.MethodPatch, "/api/cards/404", `{"description":"x","status":"doing"}`)
		c.SetParamNames("id")
		c.SetParamValues("404")

		err := h.UpdateCard(c)

		var appErr domainerrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, http.StatusNotFound, appErr.HTTPCode())
	})
}

func TestCardHandler_DeleteCard(t *testing.T) {
	t.Parallel()

	h, cardUC := newCardHandler(t)

	cardUC.EXPECT().DeleteCard(mock.Anything, int64(6)).Return(nil)

	c, rec := newTestContext(t, http.MethodDelete, "/api/cards/6", "")
	c.SetParamNames("id")
	c.SetParamValues("6")

	require.NoError(t, h.DeleteCard(c))
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}
