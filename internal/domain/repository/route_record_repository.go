package repository

import (
	"context"

	"wayfare/internal/domain/entity"

	"github.com/google/uuid"
)

// RouteRecordRepository persists the per-user route history.
type RouteRecordRepository interface {
	// CreateRecord appends one composed-route record to the user's history.
	CreateRecord(ctx context.Context, record *entity.RouteRecord) error

	// ListByUser returns the user's most recent records, newest first,
	// capped at limit.
	ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.RouteRecord, error)
}
