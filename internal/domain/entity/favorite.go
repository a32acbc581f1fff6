package entity

import (
	"time"

	"github.com/google/uuid"
)

// FavoriteEntry is a persisted, user-scoped bookmark. It carries a
// denormalized snapshot of the place at the time it was favorited; only
// Notes is ever mutated afterwards. Uniqueness of (UserID, PoiID) is
// enforced by the store.
type FavoriteEntry struct {
	ID          int64     // Auto-increment row id.
	UserID      uuid.UUID // Owner of the bookmark.
	PoiID       int32     // Stable local place identifier.
	Name        string
	District    string
	Address     string
	Latitude    float64
	Longitude   float64
	Rating      string
	OpenHours   string
	PhotoRef    string
	Notes       string // Free-text user notes, the only mutable field.
	FavoritedAt time.Time
}
