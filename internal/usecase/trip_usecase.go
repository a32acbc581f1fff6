package usecase

import (
	"context"

	"wayfare/internal/domain/entity"

	"github.com/google/uuid"
)

// PlanRouteInput represents the input for composing a multi-leg route
type PlanRouteInput struct {
	Start string   `json:"start" validate:"required"`
	Vias  []string `json:"vias"`
	End   string   `json:"end" validate:"required"`
}

// TripUsecase defines the interface for route composition use cases
type TripUsecase interface {
	// PlanRoute resolves the named waypoints, requests one driving leg per
	// consecutive pair, and composes them into a single route. A
	// successfully composed route is appended to the user's history.
	PlanRoute(ctx context.Context, userID uuid.UUID, input *PlanRouteInput) (*entity.RouteResult, error)

	// GetRouteHistory returns the user's saved routes, newest first.
	GetRouteHistory(ctx context.Context, userID uuid.UUID) ([]*entity.RouteRecord, error)
}
