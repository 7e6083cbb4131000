package impl

import (
	"context"
	"time"

	"taskboard/internal/domain/entity"
	domainerrors "taskboard/internal/domain/errors"
	"taskboard/internal/domain/repository"
	"taskboard/internal/errors"
	"taskboard/internal/usecase"
)

type cardService struct {
	cardRepo repository.CardRepository
}

// NewCardService creates a new card service instance
func NewCardService(cardRepo repository.CardRepository) usecase.CardUsecase {
	return &cardService{
		cardRepo: cardRepo,
	}
}

// ListCards returns all cards of one board.
func (s *cardService) ListCards(ctx context.Context, boardID int64) ([]*entity.Card, error) {
	cards, err := s.cardRepo.ListCards(ctx, boardID)
	if err != nil {
		return nil, domainerrors.NewStorageError(err, "failed to list cards")
	}

	return cards, nil
}

// CreateCard creates a card on the given board. New cards always start in
// todo.
func (s *cardService) CreateCard(ctx context.Context, boardID int64, description string) (*entity.Card, error) {
	card := &entity.Card{
		BoardID:     boardID,
		Description: description,
		Status:      entity.StatusTodo,
		CreatedAt:   time.Now(),
	}

	if err := s.cardRepo.CreateCard(ctx, card); err != nil {
		return nil, domainerrors.NewStorageError(err, "failed to create card")
	}

	return card, nil
}

// UpdateCard sets description and status together and returns the updated
// row.
func (s *cardService) UpdateCard(ctx context.Context, id int64, update usecase.CardUpdate) (*entity.Card, error) {
	if !update.Status.Valid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("status must be one of todo, doing, done")
	}

	card, err := s.cardRepo.UpdateCard(ctx, id, update.Description, update.Status)
	if err != nil {
		if errors.Is(err, repository.ErrCardNotFound) {
			return nil, domainerrors.ErrCardNotFound
		}

		return nil, domainerrors.NewStorageError(err, "failed to update card")
	}

	return card, nil
}

// DeleteCard removes a card. The operation is idempotent.
func (s *cardService) DeleteCard(ctx context.Context, id int64) error {
	if err := s.cardRepo.DeleteCard(ctx, id); err != nil {
		return domainerrors.NewStorageError(err, "failed to delete card")
	}

	return nil
}
