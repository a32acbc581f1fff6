package impl

import (
	"context"
	"log/slog"
	"strings"

	domainerrors "wayfare/internal/domain/errors"
	"wayfare/internal/domain/identity"
	"wayfare/internal/domain/service"
	"wayfare/internal/usecase"
)

type placeService struct {
	searcher service.PlaceSearcher
	logger   *slog.Logger
}

// NewPlaceService creates a new place service instance
func NewPlaceService(searcher service.PlaceSearcher, logger *slog.Logger) usecase.PlaceUsecase {
	return &placeService{
		searcher: searcher,
		logger:   logger,
	}
}

// SearchPlaces searches places by keyword and tags each hit with its
// stable local identifier. Distinct places that collide on the same
// identifier are merged, first occurrence wins.
func (s *placeService) SearchPlaces(ctx context.Context, keywords string) ([]*usecase.PlaceResult, error) {
	keywords = strings.TrimSpace(keywords)
	if keywords == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("keywords are required")
	}

	records, err := s.searcher.Search(ctx, keywords)
	if err != nil {
		return nil, domainerrors.ErrPlaceSearchFailed.WrapMessage(keywords)
	}

	if len(records) == 0 {
		return nil, domainerrors.ErrPlaceNotFound
	}

	results := make([]*usecase.PlaceResult, 0, len(records))
	seen := make(map[int32]string, len(records))
	for _, record := range records {
		// Presentation defaults for fields the provider left blank.
		if record.Rating == "" {
			record.Rating = "暂无评分"
		}
		if record.OpenHours == "" {
			record.OpenHours = "暂无"
		}

		lon, lat := record.Coordinate.Lon(), record.Coordinate.Lat()
		stableID := identity.StablePlaceID(record.Name, lon, lat)

		if firstName, ok := seen[stableID]; ok {
			s.logger.Warn("stable place id collision, keeping first occurrence",
				slog.Int("stableID", int(stableID)),
				slog.String("kept", firstName),
				slog.String("merged", record.Name),
			)

			continue
		}
		seen[stableID] = record.Name

		results = append(results, &usecase.PlaceResult{
			StableID:  stableID,
			Name:      record.Name,
			Address:   record.Address,
			District:  record.District,
			Latitude:  lat,
			Longitude: lon,
			Rating:    record.Rating,
			OpenHours: record.OpenHours,
			PhotoRef:  record.PhotoRef,
		})
	}

	return results, nil
}
