package postgres

import (
	"context"

	"wayfare/internal/domain/entity"
	domainerrors "wayfare/internal/domain/errors"
	"wayfare/internal/domain/repository"
	"wayfare/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// routeRecordRepository implements the repository.RouteRecordRepository interface.
type routeRecordRepository struct {
	db *gorm.DB
}

// NewRouteRecordRepository is the constructor for routeRecordRepository.
func NewRouteRecordRepository(db *gorm.DB) repository.RouteRecordRepository {
	return &routeRecordRepository{
		db: db,
	}
}

// CreateRecord appends one composed-route record to the user's history.
func (repo *routeRecordRepository) CreateRecord(ctx context.Context, record *entity.RouteRecord) error {
	recordM, err := model.FromRouteRecordDomain(record)
	if err != nil {
		return err
	}

	if err := repo.db.WithContext(ctx).Create(recordM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create route record")
	}

	record.ID = recordM.ID
	record.CreatedAt = recordM.CreatedAt

	return nil
}

// ListByUser retrieves the user's most recent records, newest first.
func (repo *routeRecordRepository) ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.RouteRecord, error) {
	query := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var recordModels []*model.RouteRecordModel
	if err := query.Find(&recordModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list route records by user")
	}

	records := make([]*entity.RouteRecord, 0, len(recordModels))
	for _, recordM := range recordModels {
		record, err := model.ToRouteRecordDomain(recordM)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	return records, nil
}
