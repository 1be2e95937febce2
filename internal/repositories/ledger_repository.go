package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	dbm "tourline/internal/models/db_models"
)

type LedgerRepository interface {
	Insert(ctx context.Context, entry *dbm.LedgerEntry) error
	ListByGroup(ctx context.Context, groupID uuid.UUID) ([]dbm.LedgerEntry, error)
	TotalsByCategory(ctx context.Context, groupID uuid.UUID) (map[string]int64, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type ledgerRepository struct {
	db *gorm.DB
}

func NewLedgerRepository(db *gorm.DB) LedgerRepository {
	return &ledgerRepository{db: db}
}

func (r *ledgerRepository) Insert(ctx context.Context, entry *dbm.LedgerEntry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *ledgerRepository) ListByGroup(ctx context.Context, groupID uuid.UUID) ([]dbm.LedgerEntry, error) {
	var entries []dbm.LedgerEntry
	err := r.db.WithContext(ctx).
		Where("group_id = ?", groupID).
		Order("spent_at DESC").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *ledgerRepository) TotalsByCategory(ctx context.Context, groupID uuid.UUID) (map[string]int64, error) {
	type row struct {
		Category string
		Total    int64
	}
	var rows []row
	err := r.db.WithContext(ctx).
		Model(&dbm.LedgerEntry{}).
		Select("category, SUM(amount_minor) AS total").
		Where("group_id = ?", groupID).
		Group("category").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	totals := make(map[string]int64, len(rows))
	for _, r := range rows {
		totals[r.Category] = r.Total
	}
	return totals, nil
}

func (r *ledgerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&dbm.LedgerEntry{}).Error
}
