package usecase

import (
	"context"

	"taskboard/internal/domain/entity"
)

// CardUpdate carries the two card fields that change together, atomically,
// in a single storage statement.
type CardUpdate struct {
	Description string
	Status      entity.Status
}

// CardUsecase defines the card-level operations.
type CardUsecase interface {
	// ListCards returns all cards of one board, in no guaranteed order.
	ListCards(ctx context.Context, boardID int64) ([]*entity.Card, error)

	// CreateCard creates a card on the given board with status todo and
	// returns the stored row.
	CreateCard(ctx context.Context, boardID int64, description string) (*entity.Card, error)

	// UpdateCard applies a CardUpdate to one card and returns the updated
	// row. Updating an absent card is an error, not a silent no-op.
	UpdateCard(ctx context.Context, id int64, update CardUpdate) (*entity.Card, error)

	// DeleteCard removes a card. Deleting an absent card succeeds.
	DeleteCard(ctx context.Context, id int64) error
}
