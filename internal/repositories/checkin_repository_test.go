package repositories

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	dbm "tourline/internal/models/db_models"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&dbm.Traveler{}, &dbm.CheckIn{}))
	return db
}

func insertTraveler(t *testing.T, db *gorm.DB, groupID uuid.UUID) *dbm.Traveler {
	t.Helper()
	traveler := &dbm.Traveler{
		GroupID:    &groupID,
		FullName:   "王小明",
		RoomNumber: "101",
	}
	require.NoError(t, db.Create(traveler).Error)
	return traveler
}

func TestToggleFlipsPresence(t *testing.T) {
	db := openTestDB(t)
	repo := NewCheckinRepository(db)
	groupID := uuid.New()
	traveler := insertTraveler(t, db, groupID)
	ctx := context.Background()

	checkedIn, err := repo.Toggle(ctx, traveler.ID, "大廳")
	require.NoError(t, err)
	assert.True(t, checkedIn)

	count, err := repo.CountByTraveler(ctx, traveler.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)

	checkedIn, err = repo.Toggle(ctx, traveler.ID, "")
	require.NoError(t, err)
	assert.False(t, checkedIn)

	count, err = repo.CountByTraveler(ctx, traveler.ID)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestToggleKeepsAtMostOneRow(t *testing.T) {
	db := openTestDB(t)
	repo := NewCheckinRepository(db)
	traveler := insertTraveler(t, db, uuid.New())
	ctx := context.Background()

	for i := 0; i < 7; i++ {
		_, err := repo.Toggle(ctx, traveler.ID, "")
		require.NoError(t, err)
	}

	count, err := repo.CountByTraveler(ctx, traveler.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
}

func TestToggleDiscardsHistory(t *testing.T) {
	db := openTestDB(t)
	repo := NewCheckinRepository(db)
	traveler := insertTraveler(t, db, uuid.New())
	ctx := context.Background()

	_, err := repo.Toggle(ctx, traveler.ID, "大廳")
	require.NoError(t, err)
	_, err = repo.Toggle(ctx, traveler.ID, "")
	require.NoError(t, err)

	// Checking out removes the row entirely, so nothing to resurrect.
	var total int64
	require.NoError(t, db.Model(&dbm.CheckIn{}).Count(&total).Error)
	assert.Zero(t, total)
}

func TestListByGroupScopesToGroup(t *testing.T) {
	db := openTestDB(t)
	repo := NewCheckinRepository(db)
	ctx := context.Background()

	groupA := uuid.New()
	groupB := uuid.New()
	inA := insertTraveler(t, db, groupA)
	inB := insertTraveler(t, db, groupB)

	_, err := repo.Toggle(ctx, inA.ID, "")
	require.NoError(t, err)
	_, err = repo.Toggle(ctx, inB.ID, "")
	require.NoError(t, err)

	records, err := repo.ListByGroup(ctx, groupA)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, inA.ID, records[0].TravelerID)
}

func TestListByGroupExcludesDeletedTravelers(t *testing.T) {
	db := openTestDB(t)
	checkinRepo := NewCheckinRepository(db)
	travelerRepo := NewTravelerRepository(db)
	ctx := context.Background()

	groupID := uuid.New()
	traveler := insertTraveler(t, db, groupID)
	_, err := checkinRepo.Toggle(ctx, traveler.ID, "")
	require.NoError(t, err)

	require.NoError(t, travelerRepo.Delete(ctx, traveler.ID))

	records, err := checkinRepo.ListByGroup(ctx, groupID)
	require.NoError(t, err)
	assert.Empty(t, records)

	// The check-in row goes with the traveler, not just out of view.
	count, err := checkinRepo.CountByTraveler(ctx, traveler.ID)
	require.NoError(t, err)
	assert.Zero(t, count)
}
