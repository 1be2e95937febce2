package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	dbm "tourline/internal/models/db_models"
)

type GroupRepository interface {
	Insert(ctx context.Context, group *dbm.Group) error
	Update(ctx context.Context, group *dbm.Group) error
	FindById(ctx context.Context, id uuid.UUID) (*dbm.Group, error)
	FindByJoinCode(ctx context.Context, joinCode string) (*dbm.Group, error)
	ListByLeader(ctx context.Context, leaderID uuid.UUID) ([]dbm.Group, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type groupRepository struct {
	db *gorm.DB
}

func NewGroupRepository(db *gorm.DB) GroupRepository {
	return &groupRepository{db: db}
}

func (r *groupRepository) Insert(ctx context.Context, group *dbm.Group) error {
	return r.db.WithContext(ctx).Create(group).Error
}

func (r *groupRepository) Update(ctx context.Context, group *dbm.Group) error {
	return r.db.WithContext(ctx).Save(group).Error
}

func (r *groupRepository) FindById(ctx context.Context, id uuid.UUID) (*dbm.Group, error) {
	var group dbm.Group
	err := r.db.WithContext(ctx).First(&group, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &group, nil
}

func (r *groupRepository) FindByJoinCode(ctx context.Context, joinCode string) (*dbm.Group, error) {
	var group dbm.Group
	err := r.db.WithContext(ctx).First(&group, "join_code = ?", joinCode).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &group, nil
}

func (r *groupRepository) ListByLeader(ctx context.Context, leaderID uuid.UUID) ([]dbm.Group, error) {
	var groups []dbm.Group
	err := r.db.WithContext(ctx).
		Where("leader_id = ?", leaderID).
		Order("start_date").
		Find(&groups).Error
	if err != nil {
		return nil, err
	}
	return groups, nil
}

func (r *groupRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&dbm.Group{}).Error
}
