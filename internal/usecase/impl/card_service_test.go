package impl

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"taskboard/internal/domain/entity"
	domainerrors "taskboard/internal/domain/errors"
	"taskboard/internal/domain/repository"
	"taskboard/internal/errors"
	mockRepo "taskboard/internal/mocks/repository"
	"taskboard/internal/usecase"
)

func TestCardService_ListCards(t *testing.T) {
	t.Parallel()

	t.Run("returns cards of one board", func(t *testing.T) {
		t.Parallel()

		cardRepo := mockRepo.NewMockCardRepository(t)

		expected := []*entity.Card{
			{ID: 1, BoardID: 4, Description: "write docs", Status: entity.StatusTodo},
			{ID: 2, BoardID: 4, Description: "review PR", Status: entity.StatusDoing},
		}
		cardRepo.EXPECT().ListCards(mock.Anything, int64(4)).Return(expected, nil)

		svc := NewCardService(cardRepo)
		cards, err := svc.ListCards(context.Background(), 4)

		require.NoError(t, err)
		assert.Equal(t, expected, cards)
	})

	t.Run("wraps repository failure as storage error", func(t *testing.T) {
		t.Parallel()

		cardRepo := mockRepo.NewMockCardRepository(t)
		cardRepo.EXPECT().ListCards(mock.Anything, int64(4)).Return(nil, errors.New("query failed"))

		svc := NewCardService(cardRepo)
		cards, err := svc.ListCards(context.Background(), 4)

		require.Error(t, err)
		assert.Nil(t, cards)

		var appErr domainerrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "STORAGE_ERROR", appErr.ErrorCode())
	})
}

func TestCardService_CreateCard(t *testing.T) {
	t.Parallel()

	t.Run("new cards start in todo", func(t *testing.T) {
		t.Parallel()

		cardRepo := mockRepo.NewMockCardRepository(t)
		cardRepo.EXPECT().CreateCard(mock.Anything, mock.Anything).
			Run(func(_ context.Context, card *entity.Card) {
				card.ID = 11
			}).
			Return(nil)

		svc := NewCardService(cardRepo)
		card, err := svc.CreateCard(context.Background(), 4, "ship release")

		require.NoError(t, err)
		assert.Equal(t, int64(11), card.ID)
		assert.Equal(t, int64(4), card.BoardID)
		assert.Equal(t, "ship release", card.Description)
		assert.Equal(t, entity.StatusTodo, card.Status)
		assert.False(t, card.CreatedAt.IsZero())
	})

	t.Run("wraps repository failure as storage error", func(t *testing.T) {
		t.Parallel()

		cardRepo := mockRepo.NewMockCardRepository(t)
		cardRepo.EXPECT().CreateCard(mock.Anything, mock.Anything).Return(errors.New("board does not exist"))

		svc := NewCardService(cardRepo)
		card, err := svc.CreateCard(context.Background(), 99, "orphan")

		require.Error(t, err)
		assert.Nil(t, card)

		var appErr domainerrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "STORAGE_ERROR", appErr.ErrorCode())
		assert.Contains(t, appErr.Details(), "board does not exist")
	})
}

func TestCardService_UpdateCard(t *testing.T) {
	t.Parallel()

	t.Run("returns the updated row", func(t *testing.T) {
		t.Parallel()

		cardRepo := mockRepo.NewMockCardRepository(t)

		updated := &entity.Card{ID: 5, BoardID: 4, Description: "done now", Status: entity.StatusDone}
		cardRepo.EXPECT().UpdateCard(mock.Anything, int64(5), "done now", entity.StatusDone).
			Return(updated, nil)

		svc := NewCardService(cardRepo)
		card, err := svc.UpdateCard(context.Background(), 5, usecase.CardUpdate{
			Description: "done now",
			Status:      entity.StatusDone,
		})

		require.NoError(t, err)
		assert.Equal(t, updated, card)
	})

	t.Run("rejects a status outside the closed set before touching storage", func(t *testing.T) {
		t.Parallel()

		cardRepo := mockRepo.NewMockCardRepository(t)

		svc := NewCardService(cardRepo)
		card, err := svc.UpdateCard(context.Background(), 5, usecase.CardUpdate{
			Description: "whatever",
			Status:      entity.Status("blocked"),
		})

		require.Error(t, err)
		assert.Nil(t, card)

		var appErr domainerrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode())
		assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
	})

	t.Run("maps an absent card to not found", func(t *testing.T) {
		t.Parallel()

		cardRepo := mockRepo.NewMockCardRepository(t)
		cardRepo.EXPECT().UpdateCard(mock.Anything, int64(404), "x", entity.StatusDoing).
			Return(nil, repository.ErrCardNotFound)

		svc := NewCardService(cardRepo)
		card, err := svc.UpdateCard(context.Background(), 404, usecase.CardUpdate{
			Description: "x",
			Status:      entity.StatusDoing,
		})

		require.Error(t, err)
		assert.Nil(t, card)

		var appErr domainerrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, http.StatusNotFound, appErr.HTTPCode())
		assert.Equal(t, "NOT_FOUND", appErr.ErrorCode())
	})

	t.Run("wraps other repository failures as storage error", func(t *testing.T) {
		t.Parallel()

		cardRepo := mockRepo.NewMockCardRepository(t)
		cardRepo.EXPECT().UpdateCard(mock.Anything, int64(5), "x", entity.StatusDoing).
			Return(nil, errors.New("update failed"))

		svc := NewCardService(cardRepo)
		card, err := svc.UpdateCard(context.Background(), 5, usecase.CardUpdate{
			Description: "x",
			Status:      entity.StatusDoing,
		})

		require.Error(t, err)
		assert.Nil(t, card)

		var appErr domainerrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "STORAGE_ERROR", appErr.ErrorCode())
	})
}

func TestCardService_DeleteCard(t *testing.T) {
	t.Parallel()

	t.Run("delegates to repository", func(t *testing.T) {
		t.Parallel()

		cardRepo := mockRepo.NewMockCardRepository(t)
		cardRepo.EXPECT().DeleteCard(mock.Anything, int64(6)).Return(nil)

		svc := NewCardService(cardRepo)
		require.NoError(t, svc.DeleteCard(context.Background(), 6))
	})

	t.Run("wraps repository failure as storage error", func(t *testing.T) {
		t.Parallel()

		cardRepo := mockRepo.NewMockCardRepository(t)
		cardRepo.EXPECT().DeleteCard(mock.Anything, int64(6)).Return(errors.New("delete failed"))

		svc := NewCardService(cardRepo)
		err := svc.DeleteCard(context.Background(), 6)

		var appErr domainerrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "STORAGE_ERROR", appErr.ErrorCode())
	})
}
