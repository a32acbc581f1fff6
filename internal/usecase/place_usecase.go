package usecase

import (
	"context"
)

// PlaceResult is one keyword-search hit enriched with its stable local
// identifier. The identifier is derived from the place's name and
// coordinate, so the same physical place keeps the same ID across
// searches.
type PlaceResult struct {
	StableID  int32   `json:"stable_id"`
	Name      string  `json:"name"`
	Address   string  `json:"address"`
	District  string  `json:"district"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Rating    string  `json:"rating"`
	OpenHours string  `json:"open_hours"`
	PhotoRef  string  `json:"photo_ref"`
}

// PlaceUsecase defines the interface for place search use cases
type PlaceUsecase interface {
	// SearchPlaces searches places by keyword within the serving city.
	// An empty result set is domain errors.ErrPlaceNotFound.
	SearchPlaces(ctx context.Context, keywords string) ([]*PlaceResult, error)
}
