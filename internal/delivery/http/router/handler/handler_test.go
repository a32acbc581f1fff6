package handler_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"wayfare/internal/delivery/http/middleware"
	"wayfare/internal/delivery/http/router"
	"wayfare/internal/delivery/http/router/handler"
	"wayfare/internal/delivery/http/validator"
	"wayfare/internal/domain/entity"
	domainerrors "wayfare/internal/domain/errors"
	"wayfare/internal/domain/service"
	"wayfare/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validToken = "session-token"

// fakeTokenService accepts exactly one token and maps it to a fixed user.
type fakeTokenService struct {
	userID uuid.UUID
}

func (f *fakeTokenService) GenerateToken(_ uuid.UUID) (string, error) {
	return validToken, nil
}

func (f *fakeTokenService) ValidateToken(tokenString string) (*service.SessionClaims, error) {
	if tokenString != validToken {
		return nil, domainerrors.ErrUnauthorized
	}

	return &service.SessionClaims{UserID: f.userID}, nil
}

type fakeTripUsecase struct {
	result   *entity.RouteResult
	planErr  error
	planning int
}

func (f *fakeTripUsecase) PlanRoute(_ context.Context, _ uuid.UUID, _ *usecase.PlanRouteInput) (*entity.RouteResult, error) {
	f.planning++
	if f.planErr != nil {
		return nil, f.planErr
	}

	return f.result, nil
}

func (f *fakeTripUsecase) GetRouteHistory(_ context.Context, _ uuid.UUID) ([]*entity.RouteRecord, error) {
	return nil, nil
}

type fakePlaceUsecase struct{}

func (f *fakePlaceUsecase) SearchPlaces(_ context.Context, _ string) ([]*usecase.PlaceResult, error) {
	return nil, nil
}

// fakeFavoriteUsecase records every place id it is invoked with so tests
// can assert that rejected requests never reach the usecase layer.
type fakeFavoriteUsecase struct {
	addCreated  bool
	listCalls   int
	removeCalls []int32
	statusCalls []int32
	notesCalls  []int32
}

func (f *fakeFavoriteUsecase) AddFavorite(_ context.Context, userID uuid.UUID, input *usecase.AddFavoriteInput) (*entity.FavoriteEntry, bool, error) {
	return &entity.FavoriteEntry{UserID: userID, Name: input.Name}, f.addCreated, nil
}

func (f *fakeFavoriteUsecase) RemoveFavorite(_ context.Context, _ uuid.UUID, poiID int32) error {
	f.removeCalls = append(f.removeCalls, poiID)

	return nil
}

func (f *fakeFavoriteUsecase) ListFavorites(_ context.Context, _ uuid.UUID) ([]*entity.FavoriteEntry, error) {
	f.listCalls++

	return nil, nil
}

func (f *fakeFavoriteUsecase) ClearFavorites(_ context.Context, _ uuid.UUID) (int64, error) {
	return 0, nil
}

func (f *fakeFavoriteUsecase) IsFavorited(_ context.Context, _ uuid.UUID, poiID int32) (bool, error) {
	f.statusCalls = append(f.statusCalls, poiID)

	return false, nil
}

func (f *fakeFavoriteUsecase) UpdateNotes(_ context.Context, _ uuid.UUID, poiID int32, _ string) error {
	f.notesCalls = append(f.notesCalls, poiID)

	return nil
}

// newTestServer assembles the real router, auth middleware, and error
// middleware over fake usecases.
func newTestServer(t *testing.T, trip usecase.TripUsecase, favorites usecase.FavoriteUsecase) *echo.Echo {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	tokenSvc := &fakeTokenService{userID: uuid.New()}

	e := echo.New()
	e.HideBanner = true
	e.Validator = validator.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError

	r := router.NewRouter(router.RouterParams{
		SessionHandler:  handler.NewSessionHandler(handler.SessionHandlerParams{TokenSvc: tokenSvc, Logger: logger}),
		TripHandler:     handler.NewTripHandler(handler.TripHandlerParams{TripUC: trip, Logger: logger}),
		PlaceHandler:    handler.NewPlaceHandler(handler.PlaceHandlerParams{PlaceUC: &fakePlaceUsecase{}, Logger: logger}),
		FavoriteHandler: handler.NewFavoriteHandler(handler.FavoriteHandlerParams{FavoriteUC: favorites, Logger: logger}),
		AuthMiddleware:  middleware.NewAuthMiddleware(tokenSvc),
	})
	r.RegisterRoutes(e)

	return e
}

func doRequest(e *echo.Echo, method, target, token, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) domainerrors.Response {
	t.Helper()

	var envelope domainerrors.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))

	return envelope
}

func TestFavoriteHandler_InvalidPlaceIDShortCircuits(t *testing.T) {
	tests := []struct {
		name   string
		method string
		target string
		body   string
	}{
		{name: "update notes", method: http.MethodPut, target: "/api/favorites/abc/notes", body: `{"notes":"x"}`},
		{name: "remove", method: http.MethodDelete, target: "/api/favorites/abc", body: ""},
		{name: "status", method: http.MethodGet, target: "/api/favorites/abc/status", body: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			favorites := &fakeFavoriteUsecase{}
			e := newTestServer(t, &fakeTripUsecase{}, favorites)

			rec := doRequest(e, tt.method, tt.target, validToken, tt.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			envelope := decodeEnvelope(t, rec)
			assert.False(t, envelope.Success)
			require.NotNil(t, envelope.Error)
			assert.Equal(t, domainerrors.ErrValidationFailed.ErrorCode(), envelope.Error.Code)

			// A malformed id parses to nothing; the usecase must never see
			// the zero value, which is itself a reachable place id.
			assert.Empty(t, favorites.notesCalls)
			assert.Empty(t, favorites.removeCalls)
			assert.Empty(t, favorites.statusCalls)
		})
	}
}

func TestAuthMiddleware_RejectsMissingOrInvalidToken(t *testing.T) {
	tests := []struct {
		name  string
		token string
	}{
		{name: "missing token", token: ""},
		{name: "wrong token", token: "forged"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			favorites := &fakeFavoriteUsecase{}
			e := newTestServer(t, &fakeTripUsecase{}, favorites)

			rec := doRequest(e, http.MethodGet, "/api/favorites", tt.token, "")

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			envelope := decodeEnvelope(t, rec)
			assert.False(t, envelope.Success)
			assert.Zero(t, favorites.listCalls)
		})
	}
}

func TestAuthMiddleware_RejectsNonBearerScheme(t *testing.T) {
	favorites := &fakeFavoriteUsecase{}
	e := newTestServer(t, &fakeTripUsecase{}, favorites)

	req := httptest.NewRequest(http.MethodGet, "/api/favorites", nil)
	req.Header.Set(echo.HeaderAuthorization, "Basic "+validToken)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Zero(t, favorites.listCalls)
}

func TestTripHandler_UnresolvedStartEnvelope(t *testing.T) {
	trip := &fakeTripUsecase{planErr: domainerrors.ErrStartUnresolved.WithDetails("不存在的地方")}
	e := newTestServer(t, trip, &fakeFavoriteUsecase{})

	rec := doRequest(e, http.MethodPost, "/api/routes/plan", validToken,
		`{"start":"不存在的地方","end":"夫子庙"}`)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	envelope := decodeEnvelope(t, rec)
	assert.False(t, envelope.Success)
	assert.Equal(t, "无法识别起点", envelope.Message)
	require.NotNil(t, envelope.Error)
	assert.Equal(t, "START_UNRESOLVED", envelope.Error.Code)
	assert.Equal(t, "不存在的地方", envelope.Error.Details)
}

func TestTripHandler_PlanRouteSuccess(t *testing.T) {
	trip := &fakeTripUsecase{result: &entity.RouteResult{
		Legs:         []entity.RouteLeg{{DurationSeconds: 1800, DistanceMeters: 13500}},
		LegSummaries: []string{"30 分钟|13.5 公里"},
		DurationText: "30 分钟",
		DistanceText: "13.5 公里",
	}}
	e := newTestServer(t, trip, &fakeFavoriteUsecase{})

	rec := doRequest(e, http.MethodPost, "/api/routes/plan", validToken,
		`{"start":"夫子庙","end":"中山陵"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, trip.planning)
	assert.Contains(t, rec.Body.String(), "30 分钟")
}

func TestFavoriteHandler_AddFavoriteStatusByCreated(t *testing.T) {
	body := `{"name":"夫子庙","latitude":32.022168,"longitude":118.788519}`

	e := newTestServer(t, &fakeTripUsecase{}, &fakeFavoriteUsecase{addCreated: true})
	rec := doRequest(e, http.MethodPost, "/api/favorites", validToken, body)
	assert.Equal(t, http.StatusCreated, rec.Code)

	e = newTestServer(t, &fakeTripUsecase{}, &fakeFavoriteUsecase{addCreated: false})
	rec = doRequest(e, http.MethodPost, "/api/favorites", validToken, body)
	assert.Equal(t, http.StatusOK, rec.Code)
}
