package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	dbm "tourline/internal/models/db_models"
)

type SpotRepository interface {
	List(ctx context.Context) ([]dbm.Spot, error)
	Search(ctx context.Context, keyword string) ([]dbm.Spot, error)
	FindById(ctx context.Context, id uuid.UUID) (*dbm.Spot, error)
	Save(ctx context.Context, spot *dbm.Spot) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type spotRepository struct {
	db *gorm.DB
}

func NewSpotRepository(db *gorm.DB) SpotRepository {
	return &spotRepository{db: db}
}

func (r *spotRepository) List(ctx context.Context) ([]dbm.Spot, error) {
	var spots []dbm.Spot
	err := r.db.WithContext(ctx).Order("name").Find(&spots).Error
	if err != nil {
		return nil, err
	}
	return spots, nil
}

func (r *spotRepository) Search(ctx context.Context, keyword string) ([]dbm.Spot, error) {
	var spots []dbm.Spot
	pattern := "%" + keyword + "%"
	err := r.db.WithContext(ctx).
		Where("name LIKE ? OR address LIKE ? OR description LIKE ?", pattern, pattern, pattern).
		Order("name").
		Find(&spots).Error
	if err != nil {
		return nil, err
	}
	return spots, nil
}

func (r *spotRepository) FindById(ctx context.Context, id uuid.UUID) (*dbm.Spot, error) {
	var spot dbm.Spot
	err := r.db.WithContext(ctx).First(&spot, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &spot, nil
}

func (r *spotRepository) Save(ctx context.Context, spot *dbm.Spot) error {
	return r.db.WithContext(ctx).Save(spot).Error
}

func (r *spotRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&dbm.Spot{}).Error
}
