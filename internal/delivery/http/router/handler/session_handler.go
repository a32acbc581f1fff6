package handler

import (
	"log/slog"
	"net/http"

	"wayfare/internal/delivery/http/response"
	"wayfare/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SessionHandlerParams holds dependencies for SessionHandler, injected by Fx.
type SessionHandlerParams struct {
	fx.In

	TokenSvc service.TokenService
	Logger   *slog.Logger
}

// SessionHandler issues the access tokens that scope favorites and route
// history. There are no accounts: a session is an anonymous user id
// minted on demand, and every later request carries it in the token.
type SessionHandler struct {
	tokenSvc service.TokenService
	logger   *slog.Logger
}

// NewSessionHandler is the constructor for SessionHandler
func NewSessionHandler(params SessionHandlerParams) *SessionHandler {
	return &SessionHandler{
		tokenSvc: params.TokenSvc,
		logger:   params.Logger,
	}
}

// SessionResponse carries a freshly minted session.
type SessionResponse struct {
	UserID      string `json:"user_id"`
	AccessToken string `json:"access_token"`
}

// CreateSession mints a new anonymous session.
func (h *SessionHandler) CreateSession(c echo.Context) error {
	userID := uuid.New()

	token, err := h.tokenSvc.GenerateToken(userID)
	if err != nil {
		h.logger.Error("failed to generate session token", slog.Any("error", err))

		return err
	}

	return response.Success(c, http.StatusCreated, SessionResponse{
		UserID:      userID.String(),
		AccessToken: token,
	}, "Session created")
}
