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

// cardRepository implements the repository.CardRepository interface.
type cardRepository struct {
	db *gorm.DB
}

// NewCardRepository is the constructor for cardRepository.
func NewCardRepository(db *gorm.DB) repository.CardRepository {
	return &cardRepository{
		db: db,
	}
}

// ListCards retrieves all cards of a board.
func (repo *cardRepository) ListCards(ctx context.Context, boardID int64) ([]*entity.Card, error) {
	var cardModels []*model.CardModel

	if err := repo.db.WithContext(ctx).
		Where("board_id = ?", boardID).
		Find(&cardModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list cards")
	}

	cards := make([]*entity.Card, 0, len(cardModels))
	for _, cardM := range cardModels {
		cards = append(cards, toCardDomain(cardM))
	}

	return cards, nil
}

// CreateCard persists a new card.
func (repo *cardRepository) CreateCard(ctx context.Context, card *entity.Card) error {
	cardM := fromCardDomain(card)

	if err := repo.db.WithContext(ctx).Create(cardM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrStorage.WrapMessage("board does not exist")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrStorage.WrapMessage("missing required card information")
		}

		return errors.Wrap(err, "failed to create card")
	}

	// Update the entity with generated values
	card.ID = cardM.ID
	card.CreatedAt = cardM.CreatedAt

	return nil
}

// UpdateCard sets description and status together in one UPDATE statement.
// The caller expects the updated row back, so zero affected rows is surfaced
// as ErrCardNotFound rather than a silent no-op.
func (repo *cardRepository) UpdateCard(ctx context.Context, id int64, description string, status entity.Status) (*entity.Card, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.CardModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"description": description,
			"status":      string(status),
		})

	if result.Error != nil {
		return nil, errors.Wrap(result.Error, "failed to update card")
	}

	if result.RowsAffected == 0 {
		return nil, repository.ErrCardNotFound
	}

	var cardM model.CardModel
	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&cardM).Error; err != nil {
		return nil, errors.Wrap(err, "failed to reload updated card")
	}

	return toCardDomain(&cardM), nil
}

// DeleteCard removes a card by its ID. Zero affected rows is not an error.
func (repo *cardRepository) DeleteCard(ctx context.Context, id int64) error {
	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.CardModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete card")
	}

	return nil
}

// statusCountRow is the scan target for the grouped count query.
type statusCountRow struct {
	Status string
	Count  int64
}

// CountByStatus groups a board's cards by status.
func (repo *cardRepository) CountByStatus(ctx context.Context, boardID int64) ([]repository.StatusCount, error) {
	var rows []statusCountRow

	if err := repo.db.WithContext(ctx).
		Model(&model.CardModel{}).
		Select("status, count(*) as count").
		Where("board_id = ?", boardID).
		Group("status").
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to count cards by status")
	}

	counts := make([]repository.StatusCount, 0, len(rows))
	for _, row := range rows {
		counts = append(counts, repository.StatusCount{
			Status: entity.Status(row.Status),
			Count:  row.Count,
		})
	}

	return counts, nil
}

// --- Mapper Functions ---

// toCardDomain converts a GORM CardModel to a domain Card entity.
func toCardDomain(data *model.CardModel) *entity.Card {
	if data == nil {
		return nil
	}

	return &entity.Card{
		ID:          data.ID,
		BoardID:     data.BoardID,
		Description: data.Description,
		Status:      entity.Status(data.Status),
		CreatedAt:   data.CreatedAt,
	}
}

// fromCardDomain converts a domain Card entity to a GORM CardModel.
func fromCardDomain(data *entity.Card) *model.CardModel {
	if data == nil {
		return nil
	}

	return &model.CardModel{
		ID:          data.ID,
		BoardID:     data.BoardID,
		Description: data.Description,
		Status:      string(data.Status),
		CreatedAt:   data.CreatedAt,
	}
}
