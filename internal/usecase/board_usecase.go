// Package usecase defines the application service interfaces and their
// input types.
package usecase

import (
	"context"

	"taskboard/internal/domain/entity"
)

// BoardUsecase defines the board-level operations. Every call assumes the
// request already passed the authentication gate; no operation re-validates
// identity.
type BoardUsecase interface {
	// ListBoards returns all boards, in no guaranteed order.
	ListBoards(ctx context.Context) ([]*entity.Board, error)

	// CreateBoard creates a board with the given name and returns the stored
	// row including its generated id and creation timestamp.
	CreateBoard(ctx context.Context, name string) (*entity.Board, error)

	// DeleteBoard removes a board and, via the storage cascade, its cards.
	// Deleting an absent board succeeds.
	DeleteBoard(ctx context.Context, id int64) error

	// BoardSummary recomputes the per-status card counts of one board.
	BoardSummary(ctx context.Context, boardID int64) (*entity.BoardSummary, error)
}
