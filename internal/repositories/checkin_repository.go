package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	dbm "tourline/internal/models/db_models"
)

type CheckinRepository interface {
	// Toggle flips presence for a traveler: delete-if-present,
	// insert-if-absent, inside one transaction. Returns the new state.
	Toggle(ctx context.Context, travelerID uuid.UUID, locationName string) (bool, error)
	ListByGroup(ctx context.Context, groupID uuid.UUID) ([]dbm.CheckIn, error)
	CountByTraveler(ctx context.Context, travelerID uuid.UUID) (int64, error)
}

type checkinRepository struct {
	db *gorm.DB
}

func NewCheckinRepository(db *gorm.DB) CheckinRepository {
	return &checkinRepository{db: db}
}

func (r *checkinRepository) Toggle(ctx context.Context, travelerID uuid.UUID, locationName string) (bool, error) {
	checkedIn := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("traveler_id = ?", travelerID).Delete(&dbm.CheckIn{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected > 0 {
			// Was checked in, row removed. No history is kept.
			return nil
		}

		record := dbm.CheckIn{
			TravelerID:   travelerID,
			LocationName: locationName,
		}
		if err := tx.Create(&record).Error; err != nil {
			return err
		}
		checkedIn = true
		return nil
	})
	if err != nil {
		return false, err
	}
	return checkedIn, nil
}

func (r *checkinRepository) ListByGroup(ctx context.Context, groupID uuid.UUID) ([]dbm.CheckIn, error) {
	var records []dbm.CheckIn
	err := r.db.WithContext(ctx).
		Joins("JOIN travelers ON travelers.id = check_ins.traveler_id").
		Where("travelers.group_id = ? AND travelers.deleted_at IS NULL", groupID).
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (r *checkinRepository) CountByTraveler(ctx context.Context, travelerID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&dbm.CheckIn{}).
		Where("traveler_id = ?", travelerID).
		Count(&count).Error
	return count, err
}
