package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"wayfare/internal/delivery/http/response"
	domainerrors "wayfare/internal/domain/errors"
	"wayfare/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// FavoriteHandlerParams holds dependencies for FavoriteHandler, injected by Fx.
type FavoriteHandlerParams struct {
	fx.In

	FavoriteUC usecase.FavoriteUsecase
	Logger     *slog.Logger
}

// FavoriteHandler holds dependencies for favorites handlers
type FavoriteHandler struct {
	favoriteUC usecase.FavoriteUsecase
	logger     *slog.Logger
}

// NewFavoriteHandler is the constructor for FavoriteHandler
func NewFavoriteHandler(params FavoriteHandlerParams) *FavoriteHandler {
	return &FavoriteHandler{
		favoriteUC: params.FavoriteUC,
		logger:     params.Logger,
	}
}

// AddFavoriteRequest represents the request body for bookmarking a place
type AddFavoriteRequest struct {
	Name      string  `json:"name" validate:"required"`
	District  string  `json:"district"`
	Address   string  `json:"address"`
	Latitude  float64 `json:"latitude" validate:"required,min=-90,max=90"`
	Longitude float64 `json:"longitude" validate:"required,min=-180,max=180"`
	Rating    string  `json:"rating"`
	OpenHours string  `json:"open_hours"`
	PhotoRef  string  `json:"photo_ref"`
	Notes     string  `json:"notes"`
}

// UpdateNotesRequest represents the request body for replacing notes
type UpdateNotesRequest struct {
	Notes string `json:"notes"`
}

// AddFavorite handles bookmarking a place
func (h *FavoriteHandler) AddFavorite(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	var req AddFavoriteRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid favorite input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	favorite, created, err := h.favoriteUC.AddFavorite(c.Request().Context(), userID, &usecase.AddFavoriteInput{
		Name:      req.Name,
		District:  req.District,
		Address:   req.Address,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		Rating:    req.Rating,
		OpenHours: req.OpenHours,
		PhotoRef:  req.PhotoRef,
		Notes:     req.Notes,
	})
	if err != nil {
		return err
	}
	if !created {
		return response.Success(c, http.StatusOK, favorite, "Favorite already exists")
	}

	return response.Success(c, http.StatusCreated, favorite, "Favorite created successfully")
}

// ListFavorites handles retrieving all favorites of the session user
func (h *FavoriteHandler) ListFavorites(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	favorites, err := h.favoriteUC.ListFavorites(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, favorites, "Favorites retrieved successfully")
}

// RemoveFavorite handles deleting one favorite by its place identifier
func (h *FavoriteHandler) RemoveFavorite(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	poiID, err := parsePoiID(c)
	if err != nil {
		return err
	}

	if err := h.favoriteUC.RemoveFavorite(c.Request().Context(), userID, poiID); err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Favorite deleted successfully"}, "Favorite deleted successfully")
}

// ClearFavorites handles deleting all favorites of the session user
func (h *FavoriteHandler) ClearFavorites(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	removed, err := h.favoriteUC.ClearFavorites(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, map[string]int64{"removed": removed}, "Favorites cleared successfully")
}

// GetFavoriteStatus probes whether one place is favorited
func (h *FavoriteHandler) GetFavoriteStatus(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	poiID, err := parsePoiID(c)
	if err != nil {
		return err
	}

	favorited, err := h.favoriteUC.IsFavorited(c.Request().Context(), userID, poiID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, map[string]bool{"favorited": favorited}, "Favorite status retrieved successfully")
}

// UpdateNotes replaces the notes of one favorite
func (h *FavoriteHandler) UpdateNotes(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	poiID, err := parsePoiID(c)
	if err != nil {
		return err
	}

	var req UpdateNotesRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid notes input")
	}

	if err := h.favoriteUC.UpdateNotes(c.Request().Context(), userID, poiID, req.Notes); err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Notes updated successfully"}, "Notes updated successfully")
}

// parsePoiID parses the place identifier path parameter. Returning an
// AppError (not a written response) keeps the caller's error guard live:
// zero is a reachable identifier, so the handler must not fall through
// with it.
func parsePoiID(c echo.Context) (int32, error) {
	poiID, err := strconv.ParseInt(c.Param("poiID"), 10, 32)
	if err != nil {
		return 0, domainerrors.ErrValidationFailed.WithDetails("invalid place id: " + c.Param("poiID"))
	}

	return int32(poiID), nil
}
