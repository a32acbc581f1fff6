package usecase

import (
	"context"

	"wayfare/internal/domain/entity"

	"github.com/google/uuid"
)

// AddFavoriteInput represents the input for bookmarking a place. It
// carries the full place snapshot; the stable place identifier is derived
// from Name and the coordinate, never supplied by the caller.
type AddFavoriteInput struct {
	Name      string  `json:"name" validate:"required"`
	District  string  `json:"district"`
	Address   string  `json:"address"`
	Latitude  float64 `json:"latitude" validate:"required"`
	Longitude float64 `json:"longitude" validate:"required"`
	Rating    string  `json:"rating"`
	OpenHours string  `json:"open_hours"`
	PhotoRef  string  `json:"photo_ref"`
	Notes     string  `json:"notes"`
}

// FavoriteUsecase defines the interface for favorites management use cases
type FavoriteUsecase interface {
	// AddFavorite bookmarks a place for the user. Adding the same place
	// twice is a no-op; created reports whether a new row was inserted.
	AddFavorite(ctx context.Context, userID uuid.UUID, input *AddFavoriteInput) (favorite *entity.FavoriteEntry, created bool, err error)

	// RemoveFavorite deletes one bookmark by its stable place identifier.
	RemoveFavorite(ctx context.Context, userID uuid.UUID, poiID int32) error

	// ListFavorites returns the user's bookmarks, most recent first.
	ListFavorites(ctx context.Context, userID uuid.UUID) ([]*entity.FavoriteEntry, error)

	// ClearFavorites deletes every bookmark of the user and returns the
	// number removed.
	ClearFavorites(ctx context.Context, userID uuid.UUID) (int64, error)

	// IsFavorited probes whether the user has bookmarked the place.
	IsFavorited(ctx context.Context, userID uuid.UUID, poiID int32) (bool, error)

	// UpdateNotes replaces the free-text notes on an existing bookmark.
	UpdateNotes(ctx context.Context, userID uuid.UUID, poiID int32, notes string) error
}
