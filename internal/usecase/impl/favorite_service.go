package impl

import (
	"context"
	"strings"
	"time"

	"wayfare/internal/domain/entity"
	domainerrors "wayfare/internal/domain/errors"
	"wayfare/internal/domain/identity"
	"wayfare/internal/domain/repository"
	"wayfare/internal/errors"
	"wayfare/internal/usecase"

	"github.com/google/uuid"
)

type favoriteService struct {
	favoriteRepo repository.FavoriteRepository
}

// NewFavoriteService creates a new favorite service instance
func NewFavoriteService(favoriteRepo repository.FavoriteRepository) usecase.FavoriteUsecase {
	return &favoriteService{
		favoriteRepo: favoriteRepo,
	}
}

// AddFavorite bookmarks a place. The stable place identifier is derived
// from the snapshot here; the store's unique constraint arbitrates
// concurrent adds of the same place. Adding an already-favorited place is
// a no-op, the first insert wins.
func (s *favoriteService) AddFavorite(ctx context.Context, userID uuid.UUID, input *usecase.AddFavoriteInput) (*entity.FavoriteEntry, bool, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, false, domainerrors.ErrValidationFailed.WithDetails("place name is required")
	}

	favorite := &entity.FavoriteEntry{
		UserID:      userID,
		PoiID:       identity.StablePlaceID(name, input.Longitude, input.Latitude),
		Name:        name,
		District:    input.District,
		Address:     input.Address,
		Latitude:    input.Latitude,
		Longitude:   input.Longitude,
		Rating:      input.Rating,
		OpenHours:   input.OpenHours,
		PhotoRef:    input.PhotoRef,
		Notes:       input.Notes,
		FavoritedAt: time.Now(),
	}

	if err := s.favoriteRepo.CreateFavorite(ctx, favorite); err != nil {
		if errors.Is(err, repository.ErrDuplicateFavorite) {
			return favorite, false, nil
		}

		return nil, false, errors.Wrap(err, "failed to create favorite")
	}

	return favorite, true, nil
}

// RemoveFavorite deletes one bookmark by its stable place identifier.
func (s *favoriteService) RemoveFavorite(ctx context.Context, userID uuid.UUID, poiID int32) error {
	removed, err := s.favoriteRepo.DeleteFavorite(ctx, userID, poiID)
	if err != nil {
		return errors.Wrap(err, "failed to delete favorite")
	}
	if !removed {
		return domainerrors.ErrFavoriteNotFound
	}

	return nil
}

// ListFavorites returns the user's bookmarks, most recent first.
func (s *favoriteService) ListFavorites(ctx context.Context, userID uuid.UUID) ([]*entity.FavoriteEntry, error) {
	favorites, err := s.favoriteRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list favorites")
	}

	return favorites, nil
}

// ClearFavorites deletes every bookmark of the user.
func (s *favoriteService) ClearFavorites(ctx context.Context, userID uuid.UUID) (int64, error) {
	removed, err := s.favoriteRepo.DeleteAllByUser(ctx, userID)
	if err != nil {
		return 0, errors.Wrap(err, "failed to clear favorites")
	}

	return removed, nil
}

// IsFavorited probes whether the user has bookmarked the place.
func (s *favoriteService) IsFavorited(ctx context.Context, userID uuid.UUID, poiID int32) (bool, error) {
	exists, err := s.favoriteRepo.Exists(ctx, userID, poiID)
	if err != nil {
		return false, errors.Wrap(err, "failed to probe favorite")
	}

	return exists, nil
}

// UpdateNotes replaces the free-text notes on an existing bookmark.
func (s *favoriteService) UpdateNotes(ctx context.Context, userID uuid.UUID, poiID int32, notes string) error {
	if err := s.favoriteRepo.UpdateNotes(ctx, userID, poiID, notes); err != nil {
		if errors.Is(err, repository.ErrFavoriteNotFound) {
			return domainerrors.ErrFavoriteNotFound
		}

		return errors.Wrap(err, "failed to update favorite notes")
	}

	return nil
}
