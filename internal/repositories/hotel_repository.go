package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	dbm "tourline/internal/models/db_models"
)

type HotelRepository interface {
	List(ctx context.Context) ([]dbm.Hotel, error)
	Search(ctx context.Context, keyword string) ([]dbm.Hotel, error)
	FindById(ctx context.Context, id uuid.UUID) (*dbm.Hotel, error)
	Save(ctx context.Context, hotel *dbm.Hotel) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type hotelRepository struct {
	db *gorm.DB
}

func NewHotelRepository(db *gorm.DB) HotelRepository {
	return &hotelRepository{db: db}
}

func (r *hotelRepository) List(ctx context.Context) ([]dbm.Hotel, error) {
	var hotels []dbm.Hotel
	err := r.db.WithContext(ctx).Order("name").Find(&hotels).Error
	if err != nil {
		return nil, err
	}
	return hotels, nil
}

func (r *hotelRepository) Search(ctx context.Context, keyword string) ([]dbm.Hotel, error) {
	var hotels []dbm.Hotel
	pattern := "%" + keyword + "%"
	err := r.db.WithContext(ctx).
		Where("name LIKE ? OR address LIKE ?", pattern, pattern).
		Order("name").
		Find(&hotels).Error
	if err != nil {
		return nil, err
	}
	return hotels, nil
}

func (r *hotelRepository) FindById(ctx context.Context, id uuid.UUID) (*dbm.Hotel, error) {
	var hotel dbm.Hotel
	err := r.db.WithContext(ctx).First(&hotel, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &hotel, nil
}

func (r *hotelRepository) Save(ctx context.Context, hotel *dbm.Hotel) error {
	return r.db.WithContext(ctx).Save(hotel).Error
}

func (r *hotelRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&dbm.Hotel{}).Error
}
