// Package impl contains the concrete application services behind the usecase
// interfaces.
package impl

import (
	"context"
	"fmt"
	"time"

	"taskboard/internal/domain/entity"
	domainerrors "taskboard/internal/domain/errors"
	"taskboard/internal/domain/repository"
	"taskboard/internal/usecase"
)

type boardService struct {
	boardRepo repository.BoardRepository
	cardRepo  repository.CardRepository
}

// NewBoardService creates a new board service instance
func NewBoardService(boardRepo repository.BoardRepository, cardRepo repository.CardRepository) usecase.BoardUsecase {
	return &boardService{
		boardRepo: boardRepo,
		cardRepo:  cardRepo,
	}
}

// ListBoards returns all boards.
func (s *boardService) ListBoards(ctx context.Context) ([]*entity.Board, error) {
	boards, err := s.boardRepo.ListBoards(ctx)
	if err != nil {
		return nil, domainerrors.NewStorageError(err, "failed to list boards")
	}

	return boards, nil
}

// CreateBoard creates a board and returns the stored row.
func (s *boardService) CreateBoard(ctx context.Context, name string) (*entity.Board, error) {
	board := &entity.Board{
		Name:      name,
		CreatedAt: time.Now(),
	}

	if err := s.boardRepo.CreateBoard(ctx, board); err != nil {
		return nil, domainerrors.NewStorageError(err, "failed to create board")
	}

	return board, nil
}

// DeleteBoard removes a board. The operation is idempotent.
func (s *boardService) DeleteBoard(ctx context.Context, id int64) error {
	if err := s.boardRepo.DeleteBoard(ctx, id); err != nil {
		return domainerrors.NewStorageError(err, "failed to delete board")
	}

	return nil
}

// BoardSummary folds the grouped per-status counts into the three fixed
// buckets. A status outside the closed set means the stored data no longer
// matches the domain model, which must fail loudly instead of dropping the
// count.
func (s *boardService) BoardSummary(ctx context.Context, boardID int64) (*entity.BoardSummary, error) {
	counts, err := s.cardRepo.CountByStatus(ctx, boardID)
	if err != nil {
		return nil, domainerrors.NewStorageError(err, "failed to summarize board")
	}

	summary := &entity.BoardSummary{}
	for _, sc := range counts {
		switch sc.Status {
		case entity.StatusTodo:
			summary.Todo += sc.Count
		case entity.StatusDoing:
			summary.Doing += sc.Count
		case entity.StatusDone:
			summary.Done += sc.Count
		default:
			return nil, domainerrors.NewInvariantViolation(
				fmt.Sprintf("board %d has cards with unknown status %q", boardID, sc.Status))
		}
	}

	return summary, nil
}
