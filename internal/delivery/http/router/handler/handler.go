package handler

import (
	"wayfare/internal/delivery/http/middleware"
	domainerrors "wayfare/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// getUserID extracts the session user id set by the auth middleware. The
// returned error is an AppError rendered by the error middleware, so
// callers stop on the first `return err`.
func getUserID(c echo.Context) (uuid.UUID, error) {
	userIDVal := c.Get(middleware.ContextUserIDKey)
	userID, ok := userIDVal.(uuid.UUID)
	if !ok {
		return uuid.Nil, domainerrors.ErrUnauthorized.WithDetails("session user id missing from request context")
	}

	return userID, nil
}
