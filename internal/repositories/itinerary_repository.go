// internal/repositories/itinerary_repository.go
package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	dbm "tourline/internal/models/db_models"
)

type ItineraryRepository interface {
	CreateWithDays(ctx context.Context, itinerary *dbm.Itinerary, days int) error
	GetDetailsById(ctx context.Context, id uuid.UUID) (*dbm.Itinerary, error)
	ListByGroup(ctx context.Context, groupID uuid.UUID) ([]dbm.Itinerary, error)
	AddDay(ctx context.Context, itineraryID uuid.UUID) (uuid.UUID, error)
	AddActivity(ctx context.Context, activity *dbm.ItineraryActivity) error
	UpdateActivity(ctx context.Context, activity *dbm.ItineraryActivity) error
	RemoveActivity(ctx context.Context, activityID uuid.UUID) error
}

type itineraryRepository struct {
	db *gorm.DB
}

func NewItineraryRepository(db *gorm.DB) ItineraryRepository {
	return &itineraryRepository{db: db}
}

func (r *itineraryRepository) CreateWithDays(ctx context.Context, itinerary *dbm.Itinerary, days int) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(itinerary).Error; err != nil {
			return err
		}

		base := time.Unix(itinerary.StartDate, 0)
		baseDate := time.Date(base.Year(), base.Month(), base.Day(), 0, 0, 0, 0, base.Location())

		for i := 0; i < days; i++ {
			day := dbm.ItineraryDay{
				ItineraryID: itinerary.ID,
				Date:        baseDate.AddDate(0, 0, i),
			}
			if err := tx.Create(&day).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *itineraryRepository) GetDetailsById(ctx context.Context, id uuid.UUID) (*dbm.Itinerary, error) {
	var itinerary dbm.Itinerary
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		Preload("Days", func(db *gorm.DB) *gorm.DB {
			return db.Order("itinerary_days.date")
		}).
		Preload("Days.Activities", func(db *gorm.DB) *gorm.DB {
			return db.Order("itinerary_activities.time")
		}).
		Preload("Days.Activities.Spot").
		First(&itinerary).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &itinerary, nil
}

func (r *itineraryRepository) ListByGroup(ctx context.Context, groupID uuid.UUID) ([]dbm.Itinerary, error) {
	var itineraries []dbm.Itinerary
	err := r.db.WithContext(ctx).
		Where("group_id = ?", groupID).
		Order("start_date").
		Find(&itineraries).Error
	if err != nil {
		return nil, err
	}
	return itineraries, nil
}

// AddDay appends one day after the current last day of the itinerary.
func (r *itineraryRepository) AddDay(ctx context.Context, itineraryID uuid.UUID) (uuid.UUID, error) {
	var newID uuid.UUID
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var last dbm.ItineraryDay
		err := tx.Where("itinerary_id = ?", itineraryID).
			Order("date DESC").
			First(&last).Error

		var date time.Time
		switch {
		case err == nil:
			date = last.Date.AddDate(0, 0, 1)
		case errors.Is(err, gorm.ErrRecordNotFound):
			var itinerary dbm.Itinerary
			if err := tx.First(&itinerary, "id = ?", itineraryID).Error; err != nil {
				return err
			}
			date = time.Unix(itinerary.StartDate, 0)
		default:
			return err
		}

		day := dbm.ItineraryDay{
			ItineraryID: itineraryID,
			Date:        date,
		}
		if err := tx.Create(&day).Error; err != nil {
			return err
		}
		newID = day.ID
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return newID, nil
}

func (r *itineraryRepository) AddActivity(ctx context.Context, activity *dbm.ItineraryActivity) error {
	var day dbm.ItineraryDay
	if err := r.db.WithContext(ctx).
		First(&day, "id = ?", activity.ItineraryDayID).Error; err != nil {
		return err
	}
	return r.db.WithContext(ctx).Create(activity).Error
}

func (r *itineraryRepository) UpdateActivity(ctx context.Context, activity *dbm.ItineraryActivity) error {
	return r.db.WithContext(ctx).
		Model(&dbm.ItineraryActivity{}).
		Where("id = ?", activity.ID).
		Updates(map[string]interface{}{
			"time":     activity.Time,
			"end_time": activity.EndTime,
			"title":    activity.Title,
			"location": activity.Location,
			"notes":    activity.Notes,
		}).Error
}

func (r *itineraryRepository) RemoveActivity(ctx context.Context, activityID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("id = ?", activityID).
		Delete(&dbm.ItineraryActivity{}).Error
}
