package handler

import (
	"log/slog"
	"net/http"

	"wayfare/internal/delivery/http/response"
	"wayfare/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// PlaceHandlerParams holds dependencies for PlaceHandler, injected by Fx.
type PlaceHandlerParams struct {
	fx.In

	PlaceUC usecase.PlaceUsecase
	Logger  *slog.Logger
}

// PlaceHandler holds dependencies for place-search handlers
type PlaceHandler struct {
	placeUC usecase.PlaceUsecase
	logger  *slog.Logger
}

// NewPlaceHandler is the constructor for PlaceHandler
func NewPlaceHandler(params PlaceHandlerParams) *PlaceHandler {
	return &PlaceHandler{
		placeUC: params.PlaceUC,
		logger:  params.Logger,
	}
}

// SearchPlaces handles keyword place search
func (h *PlaceHandler) SearchPlaces(c echo.Context) error {
	keywords := c.QueryParam("keywords")
	if keywords == "" {
		return response.BadRequest(c, "VALIDATION_ERROR", "keywords query parameter is required")
	}

	results, err := h.placeUC.SearchPlaces(c.Request().Context(), keywords)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, results, "Places retrieved successfully")
}
