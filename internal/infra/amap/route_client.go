package amap

import (
	"context"
	"log/slog"
	"net/url"
	"strconv"
	"strings"

	"wayfare/internal/domain/entity"
	domainservice "wayfare/internal/domain/service"

	"github.com/paulmach/orb"
	"github.com/pkg/errors"
)

const drivingPath = "/v3/direction/driving"

// drivingResponse is the declared shape of the driving-direction endpoint.
type drivingResponse struct {
	Status   string        `json:"status"`
	Info     string        `json:"info"`
	InfoCode string        `json:"infocode"`
	Route    *drivingRoute `json:"route"`
}

type drivingRoute struct {
	Paths []drivingRoutePath `json:"paths"`
}

type drivingRoutePath struct {
	Duration string        `json:"duration"` // Seconds, string-encoded.
	Distance string        `json:"distance"` // Meters, string-encoded.
	Steps    []drivingStep `json:"steps"`
}

type drivingStep struct {
	Polyline string `json:"polyline"`
}

// RouteClient requests single driving legs between two coordinates.
type RouteClient struct {
	client *Client
}

// NewRouteProvider exposes the driving-direction endpoint as a
// RouteProvider.
func NewRouteProvider(client *Client) domainservice.RouteProvider {
	return &RouteClient{client: client}
}

// FetchLeg requests one driving leg. Malformed duration/distance fields
// degrade the leg to a zero contribution instead of failing it; a payload
// with no drivable path at all is an error.
func (r *RouteClient) FetchLeg(ctx context.Context, origin, dest entity.GeoPoint) (entity.RouteLeg, error) {
	query := url.Values{}
	query.Set("origin", formatCoordinate(origin))
	query.Set("destination", formatCoordinate(dest))
	query.Set("extensions", "base")
	query.Set("strategy", "0")

	var payload drivingResponse
	if err := r.client.getJSON(ctx, drivingPath, query, &payload); err != nil {
		return entity.RouteLeg{}, err
	}

	if payload.Status != statusOK {
		return entity.RouteLeg{}, &ProviderError{Endpoint: drivingPath, Info: payload.Info, InfoCode: payload.InfoCode}
	}

	if payload.Route == nil || len(payload.Route.Paths) == 0 {
		return entity.RouteLeg{}, &DecodeError{Endpoint: drivingPath, cause: errors.New("no drivable path in payload")}
	}

	path := payload.Route.Paths[0]
	leg := entity.RouteLeg{}

	duration, err := strconv.ParseFloat(path.Duration, 64)
	if err != nil {
		r.client.logger.Warn("malformed duration field, leg degrades to zero",
			slog.String("duration", path.Duration),
		)
		leg.Degraded = true
	} else {
		leg.DurationSeconds = duration
	}

	distance, err := strconv.ParseFloat(path.Distance, 64)
	if err != nil {
		r.client.logger.Warn("malformed distance field, leg degrades to zero",
			slog.String("distance", path.Distance),
		)
		leg.Degraded = true
	} else {
		leg.DistanceMeters = distance
	}

	leg.Polyline = decodeStepPolylines(path.Steps)

	return leg, nil
}

// decodeStepPolylines concatenates the per-step polylines into one line.
// The wire format is ";"-separated point groups, each "longitude,latitude".
// Point groups that do not decode are skipped; the provider occasionally
// emits empty trailing groups.
func decodeStepPolylines(steps []drivingStep) orb.LineString {
	var line orb.LineString
	for _, step := range steps {
		for _, group := range strings.Split(step.Polyline, ";") {
			point, err := parseLocation(group)
			if err != nil {
				continue
			}
			line = append(line, point)
		}
	}

	return line
}
