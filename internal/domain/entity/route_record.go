package entity

import (
	"time"

	"github.com/google/uuid"
)

// RouteRecord is one saved entry in a user's route history: the summary
// line of a successfully composed trip plus its per-leg details.
type RouteRecord struct {
	ID        int64
	UserID    uuid.UUID
	Summary   string // e.g. "总共 45 分钟 | 20.1 公里".
	Legs      []RouteRecordLeg
	CreatedAt time.Time
}

// RouteRecordLeg is one segment of a recorded route.
type RouteRecordLeg struct {
	From   string `json:"from"`   // Origin label of this leg.
	To     string `json:"to"`     // Destination label of this leg.
	Detail string `json:"detail"` // Localized "<duration>|<distance>" summary.
}
