// Package service defines interfaces for external collaborators consumed
// by the use cases: the place-search provider, the routing provider, and
// token validation.
package service

import (
	"context"

	"wayfare/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrNoMatch is returned when the place-search provider answers
// successfully but has no result for the keyword. It is a value, not a
// fault: callers decide whether an unresolved waypoint aborts or is
// skipped.
var ErrNoMatch = errors.New("no place matches the keyword")

// Geocoder resolves a free-text keyword to the provider's first-ranked
// coordinate within the serving city. Pure query, no side effects.
type Geocoder interface {
	Resolve(ctx context.Context, keyword string) (entity.GeoPoint, error)
}
