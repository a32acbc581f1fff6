// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"wayfare/internal/domain/entity"
	domainerrors "wayfare/internal/domain/errors"
	"wayfare/internal/domain/repository"
	"wayfare/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// favoriteRepository implements the repository.FavoriteRepository interface.
type favoriteRepository struct {
	db *gorm.DB
}

// NewFavoriteRepository is the constructor for favoriteRepository.
func NewFavoriteRepository(db *gorm.DB) repository.FavoriteRepository {
	return &favoriteRepository{
		db: db,
	}
}

// CreateFavorite persists a new favorite. The composite unique index on
// (user_id, poi_id) arbitrates concurrent inserts: the first insert wins
// and every later one comes back as ErrDuplicateFavorite.
func (repo *favoriteRepository) CreateFavorite(ctx context.Context, favorite *entity.FavoriteEntry) error {
	favoriteM := model.FromFavoriteDomain(favorite)

	if err := repo.db.WithContext(ctx).Create(favoriteM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateFavorite
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "missing required favorite information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create favorite")
	}

	// Update the entity with generated values
	favorite.ID = favoriteM.ID
	favorite.FavoritedAt = favoriteM.FavoritedAt

	return nil
}

// DeleteFavorite removes one (user, poi) row and reports whether a row
// was actually removed.
func (repo *favoriteRepository) DeleteFavorite(ctx context.Context, userID uuid.UUID, poiID int32) (bool, error) {
	result := repo.db.WithContext(ctx).
		Where("user_id = ? AND poi_id = ?", userID, poiID).
		Delete(&model.FavoriteModel{})
	if result.Error != nil {
		return false, domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete favorite")
	}

	return result.RowsAffected > 0, nil
}

// ListByUser retrieves all favorites of one user, most recent first.
func (repo *favoriteRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.FavoriteEntry, error) {
	var favoriteModels []*model.FavoriteModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("favorited_at DESC").
		Find(&favoriteModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list favorites by user")
	}

	favorites := make([]*entity.FavoriteEntry, 0, len(favoriteModels))
	for _, favoriteM := range favoriteModels {
		favorites = append(favorites, model.ToFavoriteDomain(favoriteM))
	}

	return favorites, nil
}

// DeleteAllByUser removes every favorite of one user and returns the
// number of rows removed.
func (repo *favoriteRepository) DeleteAllByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	result := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&model.FavoriteModel{})
	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete user favorites")
	}

	return result.RowsAffected, nil
}

// Exists probes whether the (user, poi) pair is already favorited.
func (repo *favoriteRepository) Exists(ctx context.Context, userID uuid.UUID, poiID int32) (bool, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.FavoriteModel{}).
		Where("user_id = ? AND poi_id = ?", userID, poiID).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to probe favorite existence")
	}

	return count > 0, nil
}

// UpdateNotes replaces the notes of an existing favorite.
func (repo *favoriteRepository) UpdateNotes(ctx context.Context, userID uuid.UUID, poiID int32, notes string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.FavoriteModel{}).
		Where("user_id = ? AND poi_id = ?", userID, poiID).
		Update("notes", notes)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update favorite notes")
	}
	if result.RowsAffected == 0 {
		return repository.ErrFavoriteNotFound
	}

	return nil
}
