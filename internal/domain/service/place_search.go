package service

import (
	"context"

	"wayfare/internal/domain/entity"
)

// PlaceSearcher queries the place-search provider by keyword and returns
// the full result set as normalized records. Records carry no durable
// provider id; identity is assigned downstream.
type PlaceSearcher interface {
	Search(ctx context.Context, keywords string) ([]entity.PlaceRecord, error)
}
