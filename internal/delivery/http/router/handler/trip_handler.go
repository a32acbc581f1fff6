package handler

import (
	"log/slog"
	"net/http"

	"wayfare/internal/delivery/http/response"
	"wayfare/internal/domain/entity"
	"wayfare/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// TripHandlerParams holds dependencies for TripHandler, injected by Fx.
type TripHandlerParams struct {
	fx.In

	TripUC usecase.TripUsecase
	Logger *slog.Logger
}

// TripHandler holds dependencies for route-composition handlers
type TripHandler struct {
	tripUC usecase.TripUsecase
	logger *slog.Logger
}

// NewTripHandler is the constructor for TripHandler
func NewTripHandler(params TripHandlerParams) *TripHandler {
	return &TripHandler{
		tripUC: params.TripUC,
		logger: params.Logger,
	}
}

// PlanRouteRequest represents the request body for composing a route
type PlanRouteRequest struct {
	Start string   `json:"start" validate:"required"`
	Vias  []string `json:"vias"`
	End   string   `json:"end" validate:"required"`
}

// RouteLegResponse is one leg of a composed route
type RouteLegResponse struct {
	Polyline [][2]float64 `json:"polyline"`
	Summary  string       `json:"summary"`
	Degraded bool         `json:"degraded"`
}

// PlanRouteResponse is the composed route
type PlanRouteResponse struct {
	Legs             []RouteLegResponse `json:"legs"`
	Polyline         [][2]float64       `json:"polyline"`
	DurationText     string             `json:"duration_text"`
	DistanceText     string             `json:"distance_text"`
	DroppedWaypoints []string           `json:"dropped_waypoints,omitempty"`
	Partial          bool               `json:"partial"`
}

// PlanRoute composes a multi-leg route through the named waypoints
func (h *TripHandler) PlanRoute(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	var req PlanRouteRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid route input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	result, err := h.tripUC.PlanRoute(c.Request().Context(), userID, &usecase.PlanRouteInput{
		Start: req.Start,
		Vias:  req.Vias,
		End:   req.End,
	})
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, toPlanRouteResponse(result), "Route composed successfully")
}

// GetRouteHistory returns the user's saved routes, newest first
func (h *TripHandler) GetRouteHistory(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	records, err := h.tripUC.GetRouteHistory(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, records, "Route history retrieved successfully")
}

func toPlanRouteResponse(result *entity.RouteResult) *PlanRouteResponse {
	resp := &PlanRouteResponse{
		Polyline:         encodeLine(result.Polyline),
		DurationText:     result.DurationText,
		DistanceText:     result.DistanceText,
		DroppedWaypoints: result.DroppedWaypoints,
		Partial:          result.Partial,
	}

	for i, leg := range result.Legs {
		resp.Legs = append(resp.Legs, RouteLegResponse{
			Polyline: encodeLine(leg.Polyline),
			Summary:  result.LegSummaries[i],
			Degraded: leg.Degraded,
		})
	}

	return resp
}

func encodeLine(line []entity.GeoPoint) [][2]float64 {
	out := make([][2]float64, 0, len(line))
	for _, point := range line {
		out = append(out, [2]float64{point.Lon(), point.Lat()})
	}

	return out
}
