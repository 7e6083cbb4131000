package repository

import (
	"context"

	"taskboard/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrCardNotFound is returned when a card targeted by an update is absent.
var ErrCardNotFound = errors.New("card not found")

// StatusCount is one row of a per-status card count aggregation.
type StatusCount struct {
	Status entity.Status
	Count  int64
}

// CardRepository defines the interface for card-related database operations.
type CardRepository interface {
	// ListCards retrieves all cards of one board. No ordering is guaranteed.
	ListCards(ctx context.Context, boardID int64) ([]*entity.Card, error)

	// CreateCard persists a new card and fills in its generated id and
	// creation timestamp. Fails if the referenced board does not exist.
	CreateCard(ctx context.Context, card *entity.Card) error

	// UpdateCard sets description and status of one card in a single
	// statement and returns the updated row. Returns ErrCardNotFound when the
	// id does not exist.
	UpdateCard(ctx context.Context, id int64, description string, status entity.Status) (*entity.Card, error)

	// DeleteCard removes a card by id. Deleting an absent id is not an error.
	DeleteCard(ctx context.Context, id int64) error

	// CountByStatus groups one board's cards by status. Statuses with no
	// cards yield no row.
	CountByStatus(ctx context.Context, boardID int64) ([]StatusCount, error)
}
