package postgres

import (
	"context"
	"time"

	"taskboard/internal/domain/entity"
	"taskboard/internal/domain/repository"
	"taskboard/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// tokenRepository implements the repository.TokenRepository interface.
type tokenRepository struct {
	db *gorm.DB
}

// NewTokenRepository is the constructor for tokenRepository.
func NewTokenRepository(db *gorm.DB) repository.TokenRepository {
	return &tokenRepository{
		db: db,
	}
}

// FindValidToken retrieves a token by id, restricted to rows that have not yet
// expired. The expiry filter is part of the query itself, so validity is
// re-evaluated by the database on every call.
func (repo *tokenRepository) FindValidToken(ctx context.Context, id string) (*entity.Token, error) {
	var tokenM model.TokenModel

	if err := repo.db.WithContext(ctx).
		Where("id = ? AND expired_at > ?", id, time.Now()).
		First(&tokenM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Missing and expired tokens share one sentinel on purpose.
			return nil, repository.ErrTokenNotFound
		}

		return nil, errors.Wrap(err, "failed to find valid token")
	}

	return toTokenDomain(&tokenM), nil
}

// toTokenDomain converts a GORM TokenModel to a domain Token entity.
func toTokenDomain(data *model.TokenModel) *entity.Token {
	if data == nil {
		return nil
	}

	return &entity.Token{
		ID:        data.ID,
		ExpiredAt: data.ExpiredAt,
	}
}
