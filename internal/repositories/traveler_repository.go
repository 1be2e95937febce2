package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	dbm "tourline/internal/models/db_models"
)

type TravelerRepository interface {
	// ListRawByGroup returns rows as raw column maps. The persisted schema
	// has drifted over time (legacy rows may carry "name" instead of
	// "full_name"), so normalization happens above the repository on the
	// untyped rows.
	ListRawByGroup(ctx context.Context, groupID uuid.UUID) ([]map[string]interface{}, error)
	FindById(ctx context.Context, id uuid.UUID) (*dbm.Traveler, error)
	FindByGroupAndName(ctx context.Context, groupID uuid.UUID, fullName string) (*dbm.Traveler, error)
	ListBoundByGroup(ctx context.Context, groupID uuid.UUID) ([]dbm.Traveler, error)
	Save(ctx context.Context, traveler *dbm.Traveler) error
	// SaveCore writes only the guaranteed-stable field set. Used as the
	// fallback when the full save hits a missing optional column.
	SaveCore(ctx context.Context, traveler *dbm.Traveler) error
	BulkInsert(ctx context.Context, travelers []*dbm.Traveler) (int, error)
	UpdateMessagingIdentity(ctx context.Context, id uuid.UUID, lineUserID string) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type travelerRepository struct {
	db *gorm.DB
}

func NewTravelerRepository(db *gorm.DB) TravelerRepository {
	return &travelerRepository{db: db}
}

func (r *travelerRepository) ListRawByGroup(ctx context.Context, groupID uuid.UUID) ([]map[string]interface{}, error) {
	var rows []map[string]interface{}
	err := r.db.WithContext(ctx).
		Model(&dbm.Traveler{}).
		Where("group_id = ?", groupID).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *travelerRepository) FindById(ctx context.Context, id uuid.UUID) (*dbm.Traveler, error) {
	var traveler dbm.Traveler
	err := r.db.WithContext(ctx).First(&traveler, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &traveler, nil
}

func (r *travelerRepository) FindByGroupAndName(ctx context.Context, groupID uuid.UUID, fullName string) (*dbm.Traveler, error) {
	var traveler dbm.Traveler
	err := r.db.WithContext(ctx).
		Where("group_id = ? AND full_name = ?", groupID, fullName).
		First(&traveler).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &traveler, nil
}

func (r *travelerRepository) ListBoundByGroup(ctx context.Context, groupID uuid.UUID) ([]dbm.Traveler, error) {
	var travelers []dbm.Traveler
	err := r.db.WithContext(ctx).
		Where("group_id = ? AND messaging_identity IS NOT NULL", groupID).
		Find(&travelers).Error
	if err != nil {
		return nil, err
	}
	return travelers, nil
}

func (r *travelerRepository) Save(ctx context.Context, traveler *dbm.Traveler) error {
	return r.db.WithContext(ctx).Save(traveler).Error
}

func (r *travelerRepository) SaveCore(ctx context.Context, traveler *dbm.Traveler) error {
	if traveler.ID == uuid.Nil {
		return r.db.WithContext(ctx).
			Select("ID", "GroupID", "FullName", "RoomNumber", "CreatedAt", "UpdatedAt").
			Create(traveler).Error
	}
	return r.db.WithContext(ctx).
		Model(traveler).
		Select("FullName", "RoomNumber", "UpdatedAt").
		Updates(traveler).Error
}

func (r *travelerRepository) BulkInsert(ctx context.Context, travelers []*dbm.Traveler) (int, error) {
	if len(travelers) == 0 {
		return 0, nil
	}
	res := r.db.WithContext(ctx).Create(travelers)
	if res.Error != nil {
		return 0, res.Error
	}
	return int(res.RowsAffected), nil
}

func (r *travelerRepository) UpdateMessagingIdentity(ctx context.Context, id uuid.UUID, lineUserID string) error {
	return r.db.WithContext(ctx).
		Model(&dbm.Traveler{}).
		Where("id = ?", id).
		Update("messaging_identity", lineUserID).Error
}

// Delete removes the traveler and their active check-in row, so presence
// never outlives identity.
func (r *travelerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("traveler_id = ?", id).Delete(&dbm.CheckIn{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&dbm.Traveler{}).Error
	})
}
