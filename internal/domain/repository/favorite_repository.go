// Package repository defines the persistence interfaces of the domain.
package repository

import (
	"context"

	"wayfare/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrDuplicateFavorite is returned when a favorite for the same
// (user, poi) pair already exists. The unique constraint in the store is
// the authoritative dedup guard; first successful insert wins.
var ErrDuplicateFavorite = errors.New("favorite already exists")

// ErrFavoriteNotFound is returned when no favorite matches the given
// (user, poi) pair.
var ErrFavoriteNotFound = errors.New("favorite not found")

// FavoriteRepository persists user favorites keyed by (user, stable poi
// id) with a denormalized place snapshot. All operations are scoped by
// user.
type FavoriteRepository interface {
	// CreateFavorite inserts a new favorite. Returns ErrDuplicateFavorite
	// when the (user, poi) pair already exists.
	CreateFavorite(ctx context.Context, favorite *entity.FavoriteEntry) error

	// DeleteFavorite removes the matching row and reports whether
	// anything was removed.
	DeleteFavorite(ctx context.Context, userID uuid.UUID, poiID int32) (bool, error)

	// ListByUser returns the user's favorites ordered by favorited time,
	// most recent first.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.FavoriteEntry, error)

	// DeleteAllByUser removes every favorite of the user and returns the
	// number of rows removed. Other users' favorites are untouched.
	DeleteAllByUser(ctx context.Context, userID uuid.UUID) (int64, error)

	// Exists probes whether the (user, poi) pair is favorited.
	Exists(ctx context.Context, userID uuid.UUID, poiID int32) (bool, error)

	// UpdateNotes replaces the notes of an existing favorite. Returns
	// ErrFavoriteNotFound when the pair does not exist.
	UpdateNotes(ctx context.Context, userID uuid.UUID, poiID int32, notes string) error
}
