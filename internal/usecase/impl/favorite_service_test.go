package impl

import (
	"context"
	"testing"

	domainerrors "wayfare/internal/domain/errors"
	"wayfare/internal/domain/identity"
	"wayfare/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAddFavoriteInput() *usecase.AddFavoriteInput {
	return &usecase.AddFavoriteInput{
		Name:      "夫子庙",
		District:  "秦淮区",
		Address:   "秦淮区贡院西街",
		Latitude:  32.022168,
		Longitude: 118.788519,
		Rating:    "4.7",
		OpenHours: "09:00-22:00",
	}
}

func TestFavoriteService_AddFavorite(t *testing.T) {
	repo := newFakeFavoriteRepository()
	favoriteService := NewFavoriteService(repo)

	userID := uuid.New()
	input := newAddFavoriteInput()

	favorite, created, err := favoriteService.AddFavorite(context.Background(), userID, input)
	require.NoError(t, err)
	assert.True(t, created)

	assert.Equal(t, userID, favorite.UserID)
	assert.Equal(t, identity.StablePlaceID("夫子庙", 118.788519, 32.022168), favorite.PoiID)
	assert.Equal(t, "夫子庙", favorite.Name)
	assert.Equal(t, "4.7", favorite.Rating)
	assert.False(t, favorite.FavoritedAt.IsZero())

	exists, err := favoriteService.IsFavorited(context.Background(), userID, favorite.PoiID)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestFavoriteService_AddFavorite_Duplicate(t *testing.T) {
	repo := newFakeFavoriteRepository()
	favoriteService := NewFavoriteService(repo)

	userID := uuid.New()
	first, created, err := favoriteService.AddFavorite(context.Background(), userID, newAddFavoriteInput())
	require.NoError(t, err)
	require.True(t, created)

	second, created, err := favoriteService.AddFavorite(context.Background(), userID, newAddFavoriteInput())
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, first.PoiID, second.PoiID)

	favorites, err := favoriteService.ListFavorites(context.Background(), userID)
	require.NoError(t, err)
	assert.Len(t, favorites, 1)
}

func TestFavoriteService_AddFavorite_SamePlaceDifferentUsers(t *testing.T) {
	repo := newFakeFavoriteRepository()
	favoriteService := NewFavoriteService(repo)

	first, _, err := favoriteService.AddFavorite(context.Background(), uuid.New(), newAddFavoriteInput())
	require.NoError(t, err)
	second, _, err := favoriteService.AddFavorite(context.Background(), uuid.New(), newAddFavoriteInput())
	require.NoError(t, err)

	assert.Equal(t, first.PoiID, second.PoiID)
}

func TestFavoriteService_AddFavorite_BlankName(t *testing.T) {
	favoriteService := NewFavoriteService(newFakeFavoriteRepository())

	input := newAddFavoriteInput()
	input.Name = "  "

	_, _, err := favoriteService.AddFavorite(context.Background(), uuid.New(), input)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrValidationFailed.ErrorCode(), appErr.ErrorCode())
}

func TestFavoriteService_RemoveFavorite(t *testing.T) {
	repo := newFakeFavoriteRepository()
	favoriteService := NewFavoriteService(repo)

	userID := uuid.New()
	favorite, _, err := favoriteService.AddFavorite(context.Background(), userID, newAddFavoriteInput())
	require.NoError(t, err)

	require.NoError(t, favoriteService.RemoveFavorite(context.Background(), userID, favorite.PoiID))

	exists, err := favoriteService.IsFavorited(context.Background(), userID, favorite.PoiID)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestFavoriteService_RemoveFavorite_NotFound(t *testing.T) {
	favoriteService := NewFavoriteService(newFakeFavoriteRepository())

	err := favoriteService.RemoveFavorite(context.Background(), uuid.New(), 12345)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrFavoriteNotFound.ErrorCode(), appErr.ErrorCode())
}

func TestFavoriteService_ClearFavorites_ScopedToUser(t *testing.T) {
	repo := newFakeFavoriteRepository()
	favoriteService := NewFavoriteService(repo)

	userID := uuid.New()
	otherID := uuid.New()
	_, _, err := favoriteService.AddFavorite(context.Background(), userID, newAddFavoriteInput())
	require.NoError(t, err)
	other := newAddFavoriteInput()
	other.Name = "中山陵"
	_, _, err = favoriteService.AddFavorite(context.Background(), userID, other)
	require.NoError(t, err)
	kept, _, err := favoriteService.AddFavorite(context.Background(), otherID, newAddFavoriteInput())
	require.NoError(t, err)

	removed, err := favoriteService.ClearFavorites(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), removed)

	exists, err := favoriteService.IsFavorited(context.Background(), otherID, kept.PoiID)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestFavoriteService_UpdateNotes(t *testing.T) {
	repo := newFakeFavoriteRepository()
	favoriteService := NewFavoriteService(repo)

	userID := uuid.New()
	favorite, _, err := favoriteService.AddFavorite(context.Background(), userID, newAddFavoriteInput())
	require.NoError(t, err)

	require.NoError(t, favoriteService.UpdateNotes(context.Background(), userID, favorite.PoiID, "下次带家人再来"))

	favorites, err := favoriteService.ListFavorites(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, favorites, 1)
	assert.Equal(t, "下次带家人再来", favorites[0].Notes)
}

func TestFavoriteService_UpdateNotes_NotFound(t *testing.T) {
	favoriteService := NewFavoriteService(newFakeFavoriteRepository())

	err := favoriteService.UpdateNotes(context.Background(), uuid.New(), 12345, "x")

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrFavoriteNotFound.ErrorCode(), appErr.ErrorCode())
}
