package repository

import (
	"context"

	"taskboard/internal/domain/entity"
)

// BoardRepository defines the interface for board-related database operations.
type BoardRepository interface {
	// ListBoards retrieves all boards. No ordering is guaranteed.
	ListBoards(ctx context.Context) ([]*entity.Board, error)

	// CreateBoard persists a new board and fills in its generated id and
	// creation timestamp.
	CreateBoard(ctx context.Context, board *entity.Board) error

	// DeleteBoard removes a board by id. Deleting an absent id is not an
	// error; owned cards are removed by the storage layer's cascade.
	DeleteBoard(ctx context.Context, id int64) error
}
