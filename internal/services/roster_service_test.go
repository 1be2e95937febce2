package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dbm "tourline/internal/models/db_models"
	"tourline/internal/models/request_models"
	"tourline/pkg/utils"
)

type fakeTravelerRepo struct {
	rows      []map[string]interface{}
	travelers map[uuid.UUID]*dbm.Traveler

	saveErr     error
	saveCoreErr error

	saved     []*dbm.Traveler
	coreSaved []*dbm.Traveler
	inserted  []*dbm.Traveler
	bound     map[uuid.UUID]string
	deleted   []uuid.UUID
}

func newFakeTravelerRepo() *fakeTravelerRepo {
	return &fakeTravelerRepo{
		travelers: make(map[uuid.UUID]*dbm.Traveler),
		bound:     make(map[uuid.UUID]string),
	}
}

func (f *fakeTravelerRepo) ListRawByGroup(ctx context.Context, groupID uuid.UUID) ([]map[string]interface{}, error) {
	return f.rows, nil
}

func (f *fakeTravelerRepo) FindById(ctx context.Context, id uuid.UUID) (*dbm.Traveler, error) {
	return f.travelers[id], nil
}

func (f *fakeTravelerRepo) FindByGroupAndName(ctx context.Context, groupID uuid.UUID, fullName string) (*dbm.Traveler, error) {
	for _, traveler := range f.travelers {
		if traveler.GroupID != nil && *traveler.GroupID == groupID && traveler.FullName == fullName {
			return traveler, nil
		}
	}
	return nil, nil
}

func (f *fakeTravelerRepo) ListBoundByGroup(ctx context.Context, groupID uuid.UUID) ([]dbm.Traveler, error) {
	var out []dbm.Traveler
	for _, traveler := range f.travelers {
		if traveler.GroupID != nil && *traveler.GroupID == groupID && traveler.MessagingIdentity != nil {
			out = append(out, *traveler)
		}
	}
	return out, nil
}

func (f *fakeTravelerRepo) Save(ctx context.Context, traveler *dbm.Traveler) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	if traveler.ID == uuid.Nil {
		traveler.ID = uuid.New()
	}
	f.saved = append(f.saved, traveler)
	return nil
}

func (f *fakeTravelerRepo) SaveCore(ctx context.Context, traveler *dbm.Traveler) error {
	if f.saveCoreErr != nil {
		return f.saveCoreErr
	}
	if traveler.ID == uuid.Nil {
		traveler.ID = uuid.New()
	}
	f.coreSaved = append(f.coreSaved, traveler)
	return nil
}

func (f *fakeTravelerRepo) BulkInsert(ctx context.Context, travelers []*dbm.Traveler) (int, error) {
	f.inserted = append(f.inserted, travelers...)
	return len(travelers), nil
}

func (f *fakeTravelerRepo) UpdateMessagingIdentity(ctx context.Context, id uuid.UUID, lineUserID string) error {
	f.bound[id] = lineUserID
	return nil
}

func (f *fakeTravelerRepo) Delete(ctx context.Context, id uuid.UUID) error {
	f.deleted = append(f.deleted, id)
	return nil
}

func TestListTravelersNormalizesLegacyRows(t *testing.T) {
	repo := newFakeTravelerRepo()
	repo.rows = []map[string]interface{}{
		{"id": uuid.New().String(), "full_name": "王小明", "room_number": "102"},
		{"id": uuid.New().String(), "name": "陳大文", "room": "101"},
		{"id": uuid.New().String(), "name": "李阿花", "room_no": "103", "gender": "女"},
	}
	service := NewRosterService(repo)

	travelers, err := service.ListTravelers(context.Background(), uuid.New())
	require.NoError(t, err)
	require.Len(t, travelers, 3)

	// Sorted by room, legacy keys resolved, defaults filled in.
	assert.Equal(t, "陳大文", travelers[0].FullName)
	assert.Equal(t, "101", travelers[0].RoomNumber)
	assert.Equal(t, dbm.GenderUnspecified, travelers[0].Gender)
	assert.Equal(t, dbm.DietaryNone, travelers[0].DietaryNeeds)
	assert.Equal(t, "王小明", travelers[1].FullName)
	assert.Equal(t, "女", travelers[2].Gender)
}

func TestListTravelersNeverDropsPartialRows(t *testing.T) {
	repo := newFakeTravelerRepo()
	repo.rows = []map[string]interface{}{
		{"id": uuid.New().String()}, // no name at all
	}
	service := NewRosterService(repo)

	travelers, err := service.ListTravelers(context.Background(), uuid.New())
	require.NoError(t, err)
	require.Len(t, travelers, 1)
	assert.Equal(t, dbm.GenderUnspecified, travelers[0].Gender)
}

func TestListTravelersKeepsRowsWithMalformedID(t *testing.T) {
	repo := newFakeTravelerRepo()
	repo.rows = []map[string]interface{}{
		{"id": "not-a-uuid", "name": "張美玲", "room": "205"},
	}
	service := NewRosterService(repo)

	travelers, err := service.ListTravelers(context.Background(), uuid.New())
	require.NoError(t, err)
	require.Len(t, travelers, 1)
	assert.Equal(t, uuid.Nil, travelers[0].ID)
	assert.Equal(t, "張美玲", travelers[0].FullName)
	assert.Equal(t, "205", travelers[0].RoomNumber)
}

func TestSortByRoomNumericAware(t *testing.T) {
	travelers := []dbm.Traveler{
		{RoomNumber: "10"},
		{RoomNumber: "9"},
		{RoomNumber: "102"},
		{RoomNumber: "21"},
	}

	SortByRoom(travelers)

	rooms := []string{
		travelers[0].RoomNumber, travelers[1].RoomNumber,
		travelers[2].RoomNumber, travelers[3].RoomNumber,
	}
	assert.Equal(t, []string{"9", "10", "21", "102"}, rooms)
}

func TestUpsertTravelerRequiresNameAndRoom(t *testing.T) {
	service := NewRosterService(newFakeTravelerRepo())

	_, err := service.UpsertTraveler(context.Background(), request_models.UpsertTravelerRequest{
		FullName: "  ", RoomNumber: "101",
	})
	assert.ErrorIs(t, err, utils.ErrInvalidInput)

	_, err = service.UpsertTraveler(context.Background(), request_models.UpsertTravelerRequest{
		FullName: "王小明", RoomNumber: "",
	})
	assert.ErrorIs(t, err, utils.ErrInvalidInput)
}

func TestUpsertTravelerAppliesDefaults(t *testing.T) {
	repo := newFakeTravelerRepo()
	service := NewRosterService(repo)

	result, err := service.UpsertTraveler(context.Background(), request_models.UpsertTravelerRequest{
		FullName: "王小明", RoomNumber: "101",
	})
	require.NoError(t, err)
	assert.False(t, result.Degraded)

	require.Len(t, repo.saved, 1)
	assert.Equal(t, dbm.GenderUnspecified, repo.saved[0].Gender)
	assert.Equal(t, dbm.DietaryNone, repo.saved[0].DietaryNeeds)
}

func TestUpsertTravelerDegradesOnMissingColumn(t *testing.T) {
	repo := newFakeTravelerRepo()
	repo.saveErr = &pgconn.PgError{Code: "42703", Message: "column \"dietary_needs\" of relation \"travelers\" does not exist"}
	service := NewRosterService(repo)

	result, err := service.UpsertTraveler(context.Background(), request_models.UpsertTravelerRequest{
		FullName: "王小明", RoomNumber: "101", DietaryNeeds: "素食",
	})
	require.NoError(t, err)
	assert.True(t, result.Degraded)
	assert.NotEqual(t, uuid.Nil, result.ID)

	assert.Empty(t, repo.saved)
	require.Len(t, repo.coreSaved, 1)
}

func TestUpsertTravelerOtherErrorsAreNotDegraded(t *testing.T) {
	repo := newFakeTravelerRepo()
	repo.saveErr = &pgconn.PgError{Code: "23505"} // unique violation, not schema drift
	service := NewRosterService(repo)

	_, err := service.UpsertTraveler(context.Background(), request_models.UpsertTravelerRequest{
		FullName: "王小明", RoomNumber: "101",
	})
	assert.ErrorIs(t, err, utils.ErrDatabaseError)
	assert.Empty(t, repo.coreSaved)
}

func TestBulkImportResolvesHeaderAliases(t *testing.T) {
	repo := newFakeTravelerRepo()
	service := NewRosterService(repo)
	groupID := uuid.New()

	inserted, skipped, err := service.BulkImport(context.Background(), groupID, []map[string]string{
		{"姓名": "王小明", "房號": "101", "性別": "男", "飲食": "素食"},
		{"name": "陳大文", "room": "102"},
		{"房號": "103"}, // no name, skipped
	})
	require.NoError(t, err)
	assert.Equal(t, 2, inserted)
	assert.Equal(t, 1, skipped)

	require.Len(t, repo.inserted, 2)
	first := repo.inserted[0]
	assert.Equal(t, "王小明", first.FullName)
	assert.Equal(t, "101", first.RoomNumber)
	assert.Equal(t, "男", first.Gender)
	assert.Equal(t, "素食", first.DietaryNeeds)
	require.NotNil(t, first.GroupID)
	assert.Equal(t, groupID, *first.GroupID)

	second := repo.inserted[1]
	assert.Equal(t, "陳大文", second.FullName)
	assert.Equal(t, dbm.GenderUnspecified, second.Gender)
}

func TestBulkImportEmptyRows(t *testing.T) {
	service := NewRosterService(newFakeTravelerRepo())

	inserted, skipped, err := service.BulkImport(context.Background(), uuid.New(), nil)
	require.NoError(t, err)
	assert.Zero(t, inserted)
	assert.Zero(t, skipped)
}
