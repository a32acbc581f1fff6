package service

import (
	"context"

	"wayfare/internal/domain/entity"
)

// RouteProvider requests one driving leg between exactly two resolved
// coordinates. Keeping the surface pairwise enforces leg-level
// composability: multi-leg trips are stitched by the composer, never by
// the provider.
//
// Malformed numeric fields in an otherwise well-formed payload yield a leg
// marked Degraded with zero contribution rather than an error. Transport
// failures, provider-reported failures, and payloads with no path at all
// are returned as errors.
type RouteProvider interface {
	FetchLeg(ctx context.Context, origin, dest entity.GeoPoint) (entity.RouteLeg, error)
}
