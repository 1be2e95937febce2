package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	dbm "tourline/internal/models/db_models"
)

type AlertRepository interface {
	Insert(ctx context.Context, alert *dbm.SOSAlert) error
	ListOpenByGroup(ctx context.Context, groupID uuid.UUID) ([]dbm.SOSAlert, error)
	Resolve(ctx context.Context, id uuid.UUID) error
}

type alertRepository struct {
	db *gorm.DB
}

func NewAlertRepository(db *gorm.DB) AlertRepository {
	return &alertRepository{db: db}
}

func (r *alertRepository) Insert(ctx context.Context, alert *dbm.SOSAlert) error {
	return r.db.WithContext(ctx).Create(alert).Error
}

func (r *alertRepository) ListOpenByGroup(ctx context.Context, groupID uuid.UUID) ([]dbm.SOSAlert, error) {
	var alerts []dbm.SOSAlert
	err := r.db.WithContext(ctx).
		Where("group_id = ? AND resolved = ?", groupID, false).
		Order("created_at DESC").
		Find(&alerts).Error
	if err != nil {
		return nil, err
	}
	return alerts, nil
}

func (r *alertRepository) Resolve(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).
		Model(&dbm.SOSAlert{}).
		Where("id = ?", id).
		Update("resolved", true).Error
}
