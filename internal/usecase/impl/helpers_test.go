package impl

import (
	"context"
	"io"
	"log/slog"

	"wayfare/config"
	"wayfare/internal/domain/entity"
	"wayfare/internal/domain/repository"

	"github.com/google/uuid"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig(viaPolicy string) *config.Config {
	return &config.Config{
		Trip: &config.TripConfig{
			ViaPolicy:    viaPolicy,
			HistoryLimit: 20,
		},
	}
}

// fakeGeocoder resolves labels from a fixed table; unknown labels fall
// through to err.
type fakeGeocoder struct {
	points map[string]entity.GeoPoint
	err    error
}

func (f *fakeGeocoder) Resolve(_ context.Context, keyword string) (entity.GeoPoint, error) {
	if point, ok := f.points[keyword]; ok {
		return point, nil
	}

	return entity.GeoPoint{}, f.err
}

// fakeRouteProvider replays canned legs keyed by origin, with optional
// per-origin failures.
type fakeRouteProvider struct {
	legs     map[entity.GeoPoint]entity.RouteLeg
	failures map[entity.GeoPoint]error
	calls    int
}

func (f *fakeRouteProvider) FetchLeg(_ context.Context, origin, _ entity.GeoPoint) (entity.RouteLeg, error) {
	f.calls++
	if err, ok := f.failures[origin]; ok {
		return entity.RouteLeg{}, err
	}

	return f.legs[origin], nil
}

// fakeRouteRecordRepository records writes in memory.
type fakeRouteRecordRepository struct {
	records   []*entity.RouteRecord
	createErr error
	listErr   error
	lastLimit int
}

func (f *fakeRouteRecordRepository) CreateRecord(_ context.Context, record *entity.RouteRecord) error {
	if f.createErr != nil {
		return f.createErr
	}
	record.ID = int64(len(f.records) + 1)
	f.records = append(f.records, record)

	return nil
}

func (f *fakeRouteRecordRepository) ListByUser(_ context.Context, userID uuid.UUID, limit int) ([]*entity.RouteRecord, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	f.lastLimit = limit

	out := make([]*entity.RouteRecord, 0, len(f.records))
	for _, record := range f.records {
		if record.UserID == userID {
			out = append(out, record)
		}
	}

	return out, nil
}

// fakePlaceSearcher returns one canned result set.
type fakePlaceSearcher struct {
	records []entity.PlaceRecord
	err     error
}

func (f *fakePlaceSearcher) Search(_ context.Context, _ string) ([]entity.PlaceRecord, error) {
	if f.err != nil {
		return nil, f.err
	}

	return f.records, nil
}

// fakeFavoriteRepository keeps favorites in a map keyed by (user, poi).
type fakeFavoriteRepository struct {
	entries   map[uuid.UUID]map[int32]*entity.FavoriteEntry
	createErr error
}

func newFakeFavoriteRepository() *fakeFavoriteRepository {
	return &fakeFavoriteRepository{entries: make(map[uuid.UUID]map[int32]*entity.FavoriteEntry)}
}

func (f *fakeFavoriteRepository) CreateFavorite(_ context.Context, favorite *entity.FavoriteEntry) error {
	if f.createErr != nil {
		return f.createErr
	}

	byUser, ok := f.entries[favorite.UserID]
	if !ok {
		byUser = make(map[int32]*entity.FavoriteEntry)
		f.entries[favorite.UserID] = byUser
	}
	if _, exists := byUser[favorite.PoiID]; exists {
		return repository.ErrDuplicateFavorite
	}

	favorite.ID = int64(len(byUser) + 1)
	byUser[favorite.PoiID] = favorite

	return nil
}

func (f *fakeFavoriteRepository) DeleteFavorite(_ context.Context, userID uuid.UUID, poiID int32) (bool, error) {
	byUser := f.entries[userID]
	if _, ok := byUser[poiID]; !ok {
		return false, nil
	}
	delete(byUser, poiID)

	return true, nil
}

func (f *fakeFavoriteRepository) ListByUser(_ context.Context, userID uuid.UUID) ([]*entity.FavoriteEntry, error) {
	out := make([]*entity.FavoriteEntry, 0, len(f.entries[userID]))
	for _, entry := range f.entries[userID] {
		out = append(out, entry)
	}

	return out, nil
}

func (f *fakeFavoriteRepository) DeleteAllByUser(_ context.Context, userID uuid.UUID) (int64, error) {
	removed := int64(len(f.entries[userID]))
	delete(f.entries, userID)

	return removed, nil
}

func (f *fakeFavoriteRepository) Exists(_ context.Context, userID uuid.UUID, poiID int32) (bool, error) {
	_, ok := f.entries[userID][poiID]

	return ok, nil
}

func (f *fakeFavoriteRepository) UpdateNotes(_ context.Context, userID uuid.UUID, poiID int32, notes string) error {
	entry, ok := f.entries[userID][poiID]
	if !ok {
		return repository.ErrFavoriteNotFound
	}
	entry.Notes = notes

	return nil
}
