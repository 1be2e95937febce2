package repositories

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dbm "tourline/internal/models/db_models"
)

func TestListRawByGroupReturnsColumnMaps(t *testing.T) {
	db := openTestDB(t)
	repo := NewTravelerRepository(db)
	ctx := context.Background()

	groupID := uuid.New()
	insertTraveler(t, db, groupID)
	insertTraveler(t, db, uuid.New()) // other group, excluded

	rows, err := repo.ListRawByGroup(ctx, groupID)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "王小明", rows[0]["full_name"])
	assert.Contains(t, rows[0], "room_number")
}

func TestBulkInsertCountsRows(t *testing.T) {
	db := openTestDB(t)
	repo := NewTravelerRepository(db)
	ctx := context.Background()

	groupID := uuid.New()
	travelers := []*dbm.Traveler{
		{GroupID: &groupID, FullName: "王小明", RoomNumber: "101"},
		{GroupID: &groupID, FullName: "陳大文", RoomNumber: "102"},
	}

	inserted, err := repo.BulkInsert(ctx, travelers)
	require.NoError(t, err)
	assert.Equal(t, 2, inserted)

	inserted, err = repo.BulkInsert(ctx, nil)
	require.NoError(t, err)
	assert.Zero(t, inserted)
}

func TestUpdateMessagingIdentityAndListBound(t *testing.T) {
	db := openTestDB(t)
	repo := NewTravelerRepository(db)
	ctx := context.Background()

	groupID := uuid.New()
	bound := insertTraveler(t, db, groupID)
	insertTraveler(t, db, groupID) // stays unbound

	require.NoError(t, repo.UpdateMessagingIdentity(ctx, bound.ID, "U123"))

	travelers, err := repo.ListBoundByGroup(ctx, groupID)
	require.NoError(t, err)
	require.Len(t, travelers, 1)
	assert.Equal(t, bound.ID, travelers[0].ID)
	require.NotNil(t, travelers[0].MessagingIdentity)
	assert.Equal(t, "U123", *travelers[0].MessagingIdentity)
}

func TestFindByGroupAndName(t *testing.T) {
	db := openTestDB(t)
	repo := NewTravelerRepository(db)
	ctx := context.Background()

	groupID := uuid.New()
	traveler := insertTraveler(t, db, groupID)

	found, err := repo.FindByGroupAndName(ctx, groupID, "王小明")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, traveler.ID, found.ID)

	missing, err := repo.FindByGroupAndName(ctx, groupID, "查無此人")
	require.NoError(t, err)
	assert.Nil(t, missing)
}
