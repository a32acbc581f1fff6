// Package entity contains the core business objects of the project.
package entity

import (
	"github.com/paulmach/orb"
)

// GeoPoint is a WGS84 coordinate in decimal degrees, longitude first.
// It aliases orb.Point so geometry helpers apply directly.
type GeoPoint = orb.Point

// Waypoint is a user-supplied place label in a trip request. Resolved is nil
// until geocoding succeeds; a waypoint that cannot be resolved is either
// fatal (start/end) or handled per the configured via policy (interior).
type Waypoint struct {
	Label    string    // Free-text place name as typed by the traveler.
	Ordinal  int       // Position in the requested sequence, zero-based.
	Resolved *GeoPoint // Coordinate from the place-search provider, nil while unresolved.
}

// RouteLeg is one origin→destination driving call between two consecutive
// resolved waypoints.
type RouteLeg struct {
	FromOrdinal     int            // Ordinal of the origin waypoint.
	ToOrdinal       int            // Ordinal of the destination waypoint.
	Polyline        orb.LineString // Decoded path geometry, in travel order.
	DurationSeconds float64        // Canonical unrounded seconds.
	DistanceMeters  float64        // Canonical unrounded meters.
	Degraded        bool           // True when provider fields could not be fully decoded and contribute zero.
}

// RouteResult is the aggregate of one multi-leg composition. Totals are
// recomputed from the legs, never copied from a single provider call.
type RouteResult struct {
	Legs                 []RouteLeg
	Polyline             orb.LineString // Ordered concatenation of all leg polylines.
	TotalDurationSeconds float64
	TotalDistanceMeters  float64
	DurationText         string   // Localized total, e.g. "45 分钟" or "< 1分钟".
	DistanceText         string   // Localized total, e.g. "20.1 公里" or "850 米".
	LegSummaries         []string // One "<duration>|<distance>" entry per leg, in order.
	DroppedWaypoints     []string // Interior labels dropped under the drop policy.
	Partial              bool     // True when at least one leg failed or was degraded.
}
