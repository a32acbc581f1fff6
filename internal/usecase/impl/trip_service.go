package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"wayfare/config"
	"wayfare/internal/domain/entity"
	domainerrors "wayfare/internal/domain/errors"
	"wayfare/internal/domain/repository"
	"wayfare/internal/domain/service"
	"wayfare/internal/errors"
	"wayfare/internal/usecase"
	"wayfare/internal/util"

	"github.com/google/uuid"
)

type tripService struct {
	geocoder    service.Geocoder
	routes      service.RouteProvider
	historyRepo repository.RouteRecordRepository
	config      *config.Config
	logger      *slog.Logger
}

// NewTripService creates a new trip service instance
func NewTripService(
	geocoder service.Geocoder,
	routes service.RouteProvider,
	historyRepo repository.RouteRecordRepository,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.TripUsecase {
	if cfg.Trip == nil {
		cfg.Trip = &config.TripConfig{
			ViaPolicy:    config.ViaPolicyDrop,
			HistoryLimit: 20,
		}
	}

	return &tripService{
		geocoder:    geocoder,
		routes:      routes,
		historyRepo: historyRepo,
		config:      cfg,
		logger:      logger,
	}
}

// PlanRoute resolves every named waypoint, requests one driving leg per
// consecutive resolved pair, and composes the legs into a single result.
// Interior waypoints that fail resolution follow the configured via
// policy; legs that fail outright contribute zero and mark the result
// partial rather than zeroing the whole route.
func (s *tripService) PlanRoute(ctx context.Context, userID uuid.UUID, input *usecase.PlanRouteInput) (*entity.RouteResult, error) {
	waypoints, dropped, err := s.resolveWaypoints(ctx, input)
	if err != nil {
		return nil, err
	}

	result := &entity.RouteResult{
		DroppedWaypoints: dropped,
	}

	failedLegs := 0
	for i := 0; i < len(waypoints)-1; i++ {
		if err := ctx.Err(); err != nil {
			return nil, errors.Wrap(err, "route composition canceled")
		}

		from, to := waypoints[i], waypoints[i+1]

		leg, err := s.routes.FetchLeg(ctx, *from.Resolved, *to.Resolved)
		if err != nil {
			s.logger.Warn("leg request failed, contributing zero",
				slog.String("from", from.Label),
				slog.String("to", to.Label),
				slog.Any("error", err),
			)
			leg = entity.RouteLeg{Degraded: true}
			failedLegs++
		}

		leg.FromOrdinal = from.Ordinal
		leg.ToOrdinal = to.Ordinal

		result.Legs = append(result.Legs, leg)
		result.Polyline = append(result.Polyline, leg.Polyline...)
		result.TotalDurationSeconds += leg.DurationSeconds
		result.TotalDistanceMeters += leg.DistanceMeters
		result.LegSummaries = append(result.LegSummaries, util.FormatLegSummary(leg.DurationSeconds, leg.DistanceMeters))

		if leg.Degraded {
			result.Partial = true
		}
	}

	if failedLegs == len(result.Legs) {
		// Nothing drivable came back at all.
		return nil, domainerrors.ErrRouteRequestFailed
	}

	result.DurationText = util.FormatDurationText(result.TotalDurationSeconds)
	result.DistanceText = util.FormatDistanceText(result.TotalDistanceMeters)

	s.saveHistory(ctx, userID, waypoints, result)

	return result, nil
}

// resolveWaypoints geocodes start, vias, and end in request order.
// Start or end failing resolution is fatal; an interior via follows the
// configured policy, either dropped from the sequence or aborting the
// whole request.
func (s *tripService) resolveWaypoints(ctx context.Context, input *usecase.PlanRouteInput) ([]entity.Waypoint, []string, error) {
	start := strings.TrimSpace(input.Start)
	end := strings.TrimSpace(input.End)
	if start == "" || end == "" {
		return nil, nil, domainerrors.ErrValidationFailed.WithDetails("start and end are required")
	}

	startPoint, err := s.geocoder.Resolve(ctx, start)
	if err != nil {
		if errors.Is(err, service.ErrNoMatch) {
			return nil, nil, domainerrors.ErrStartUnresolved.WithDetails(start)
		}

		return nil, nil, domainerrors.ErrPlaceSearchFailed.WrapMessage(start)
	}

	waypoints := []entity.Waypoint{{Label: start, Ordinal: 0, Resolved: &startPoint}}
	var dropped []string

	for _, via := range input.Vias {
		via = strings.TrimSpace(via)
		if via == "" {
			continue
		}

		if err := ctx.Err(); err != nil {
			return nil, nil, errors.Wrap(err, "waypoint resolution canceled")
		}

		viaPoint, err := s.geocoder.Resolve(ctx, via)
		if err != nil {
			if !errors.Is(err, service.ErrNoMatch) {
				return nil, nil, domainerrors.ErrPlaceSearchFailed.WrapMessage(via)
			}
			if s.config.Trip.ViaPolicy == config.ViaPolicyAbort {
				return nil, nil, domainerrors.ErrViaUnresolved.WithDetails(via)
			}

			s.logger.Warn("dropping unresolvable via waypoint", slog.String("label", via))
			dropped = append(dropped, via)

			continue
		}

		waypoints = append(waypoints, entity.Waypoint{Label: via, Ordinal: len(waypoints), Resolved: &viaPoint})
	}

	endPoint, err := s.geocoder.Resolve(ctx, end)
	if err != nil {
		if errors.Is(err, service.ErrNoMatch) {
			return nil, nil, domainerrors.ErrEndUnresolved.WithDetails(end)
		}

		return nil, nil, domainerrors.ErrPlaceSearchFailed.WrapMessage(end)
	}

	waypoints = append(waypoints, entity.Waypoint{Label: end, Ordinal: len(waypoints), Resolved: &endPoint})

	return waypoints, dropped, nil
}

// saveHistory appends the composed route to the user's history. History is
// best effort: a failed write logs and never fails the plan itself.
func (s *tripService) saveHistory(ctx context.Context, userID uuid.UUID, waypoints []entity.Waypoint, result *entity.RouteResult) {
	if userID == uuid.Nil {
		return
	}

	legs := make([]entity.RouteRecordLeg, 0, len(result.Legs))
	var totalSeconds, totalMeters float64
	for i, leg := range result.Legs {
		detail := result.LegSummaries[i]
		legs = append(legs, entity.RouteRecordLeg{
			From:   waypoints[leg.FromOrdinal].Label,
			To:     waypoints[leg.ToOrdinal].Label,
			Detail: detail,
		})

		// The summary line is recomputed from the localized leg details so
		// it always matches what the user saw, minute granularity included.
		totalSeconds += util.ParseDurationTextSeconds(strings.Split(detail, "|")[0])
		totalMeters += util.ParseDistanceTextMeters(strings.Split(detail, "|")[1])
	}

	record := &entity.RouteRecord{
		UserID:    userID,
		Summary:   "总共 " + util.FormatDurationText(totalSeconds) + " | " + util.FormatDistanceText(totalMeters),
		Legs:      legs,
		CreatedAt: time.Now(),
	}

	if err := s.historyRepo.CreateRecord(ctx, record); err != nil {
		s.logger.Warn("failed to save route history", slog.Any("error", err))
	}
}

// GetRouteHistory returns the user's saved routes, newest first, capped by
// the configured history limit.
func (s *tripService) GetRouteHistory(ctx context.Context, userID uuid.UUID) ([]*entity.RouteRecord, error) {
	records, err := s.historyRepo.ListByUser(ctx, userID, s.config.Trip.HistoryLimit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list route history")
	}

	return records, nil
}
