package postgres

import (
	"context"

	"taskboard/internal/domain/entity"
	domainerrors "taskboard/internal/domain/errors"
	"taskboard/internal/domain/repository"
	"taskboard/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// boardRepository implements the repository.BoardRepository interface.
type boardRepository struct {
	db *gorm.DB
}

// NewBoardRepository is the constructor for boardRepository.
func NewBoardRepository(db *gorm.DB) repository.BoardRepository {
	return &boardRepository{
		db: db,
	}
}

// ListBoards retrieves all boards.
func (repo *boardRepository) ListBoards(ctx context.Context) ([]*entity.Board, error) {
	var boardModels []*model.BoardModel

	if err := repo.db.WithContext(ctx).
		Find(&boardModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list boards")
	}

	boards := make([]*entity.Board, 0, len(boardModels))
	for _, boardM := range boardModels {
		boards = append(boards, toBoardDomain(boardM))
	}

	return boards, nil
}

// CreateBoard persists a new board.
func (repo *boardRepository) CreateBoard(ctx context.Context, board *entity.Board) error {
	boardM := fromBoardDomain(board)

	if err := repo.db.WithContext(ctx).Create(boardM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrStorage.WrapMessage("missing required board information")
		}

		return errors.Wrap(err, "failed to create board")
	}

	// Update the entity with generated values
	board.ID = boardM.ID
	board.CreatedAt = boardM.CreatedAt

	return nil
}

// DeleteBoard removes a board by its ID. Zero affected rows is not an error:
// the delete is idempotent, and owned cards go with the board via the foreign
// key cascade.
func (repo *boardRepository) DeleteBoard(ctx context.Context, id int64) error {
	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.BoardModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete board")
	}

	return nil
}

// --- Mapper Functions ---

// toBoardDomain converts a GORM BoardModel to a domain Board entity.
func toBoardDomain(data *model.BoardModel) *entity.Board {
	if data == nil {
		return nil
	}

	return &entity.Board{
		ID:        data.ID,
		Name:      data.Name,
		CreatedAt: data.CreatedAt,
	}
}

// fromBoardDomain converts a domain Board entity to a GORM BoardModel.
func fromBoardDomain(data *entity.Board) *model.BoardModel {
	if data == nil {
		return nil
	}

	return &model.BoardModel{
		ID:        data.ID,
		Name:      data.Name,
		CreatedAt: data.CreatedAt,
	}
}
