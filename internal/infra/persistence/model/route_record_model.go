package model

import (
	"encoding/json"
	"time"

	"wayfare/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// RouteRecordModel is the GORM-specific struct for the 'route_records'
// table. Legs are stored as a JSON document; they are only ever read back
// as a whole, never queried individually.
type RouteRecordModel struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Summary   string    `gorm:"type:varchar(255);not null"`
	Legs      []byte    `gorm:"type:jsonb;not null"`
	CreatedAt time.Time `gorm:"not null;index"`
}

// TableName explicitly sets the table name for GORM.
func (RouteRecordModel) TableName() string {
	return "route_records"
}

// FromRouteRecordDomain converts a domain record into its storage model.
func FromRouteRecordDomain(record *entity.RouteRecord) (*RouteRecordModel, error) {
	legs, err := json.Marshal(record.Legs)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode route record legs")
	}

	return &RouteRecordModel{
		ID:        record.ID,
		UserID:    record.UserID,
		Summary:   record.Summary,
		Legs:      legs,
		CreatedAt: record.CreatedAt,
	}, nil
}

// ToRouteRecordDomain converts a storage model back into the domain entity.
func ToRouteRecordDomain(recordM *RouteRecordModel) (*entity.RouteRecord, error) {
	var legs []entity.RouteRecordLeg
	if len(recordM.Legs) > 0 {
		if err := json.Unmarshal(recordM.Legs, &legs); err != nil {
			return nil, errors.Wrap(err, "failed to decode route record legs")
		}
	}

	return &entity.RouteRecord{
		ID:        recordM.ID,
		UserID:    recordM.UserID,
		Summary:   recordM.Summary,
		Legs:      legs,
		CreatedAt: recordM.CreatedAt,
	}, nil
}
