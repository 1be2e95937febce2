package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dbm "tourline/internal/models/db_models"
	"tourline/pkg/utils"
)

type fakeCheckinRepo struct {
	present   map[uuid.UUID]dbm.CheckIn
	groupOf   map[uuid.UUID]uuid.UUID
	toggleErr error
}

func newFakeCheckinRepo() *fakeCheckinRepo {
	return &fakeCheckinRepo{
		present: make(map[uuid.UUID]dbm.CheckIn),
		groupOf: make(map[uuid.UUID]uuid.UUID),
	}
}

func (f *fakeCheckinRepo) Toggle(ctx context.Context, travelerID uuid.UUID, locationName string) (bool, error) {
	if f.toggleErr != nil {
		return false, f.toggleErr
	}
	if _, ok := f.present[travelerID]; ok {
		delete(f.present, travelerID)
		return false, nil
	}
	f.present[travelerID] = dbm.CheckIn{TravelerID: travelerID, LocationName: locationName}
	return true, nil
}

func (f *fakeCheckinRepo) ListByGroup(ctx context.Context, groupID uuid.UUID) ([]dbm.CheckIn, error) {
	var out []dbm.CheckIn
	for id, record := range f.present {
		if f.groupOf[id] == groupID {
			out = append(out, record)
		}
	}
	return out, nil
}

func (f *fakeCheckinRepo) CountByTraveler(ctx context.Context, travelerID uuid.UUID) (int64, error) {
	if _, ok := f.present[travelerID]; ok {
		return 1, nil
	}
	return 0, nil
}

type recordingNotifier struct {
	events []CheckinEvent
}

func (r *recordingNotifier) Publish(event CheckinEvent) {
	r.events = append(r.events, event)
}

func seedTraveler(repo *fakeTravelerRepo, groupID uuid.UUID) uuid.UUID {
	id := uuid.New()
	gid := groupID
	repo.travelers[id] = &dbm.Traveler{
		BaseModel: dbm.BaseModel{ID: id},
		GroupID:   &gid,
		FullName:  "王小明",
	}
	return id
}

func TestToggleCheckInRoundTrip(t *testing.T) {
	travelerRepo := newFakeTravelerRepo()
	checkinRepo := newFakeCheckinRepo()
	notifier := &recordingNotifier{}
	service := NewCheckinService(checkinRepo, travelerRepo, notifier)

	groupID := uuid.New()
	travelerID := seedTraveler(travelerRepo, groupID)

	checkedIn, err := service.ToggleCheckIn(context.Background(), travelerID, "大廳")
	require.NoError(t, err)
	assert.True(t, checkedIn)

	checkedIn, err = service.ToggleCheckIn(context.Background(), travelerID, "")
	require.NoError(t, err)
	assert.False(t, checkedIn)

	count, _ := checkinRepo.CountByTraveler(context.Background(), travelerID)
	assert.Zero(t, count)
}

func TestToggleCheckInPublishesEvents(t *testing.T) {
	travelerRepo := newFakeTravelerRepo()
	checkinRepo := newFakeCheckinRepo()
	notifier := &recordingNotifier{}
	service := NewCheckinService(checkinRepo, travelerRepo, notifier)

	travelerID := seedTraveler(travelerRepo, uuid.New())

	_, err := service.ToggleCheckIn(context.Background(), travelerID, "大廳")
	require.NoError(t, err)
	_, err = service.ToggleCheckIn(context.Background(), travelerID, "")
	require.NoError(t, err)

	require.Len(t, notifier.events, 2)
	assert.Equal(t, EventCheckIn, notifier.events[0].Event)
	assert.Equal(t, "大廳", notifier.events[0].LocationName)
	assert.Equal(t, travelerID, notifier.events[0].TravelerID)
	assert.Equal(t, EventCheckOut, notifier.events[1].Event)
	assert.Empty(t, notifier.events[1].LocationName)
}

func TestToggleCheckInUnknownTraveler(t *testing.T) {
	service := NewCheckinService(newFakeCheckinRepo(), newFakeTravelerRepo(), &recordingNotifier{})

	_, err := service.ToggleCheckIn(context.Background(), uuid.New(), "")
	assert.ErrorIs(t, err, utils.ErrTravelerNotFound)
}

func TestToggleCheckInAtMostOneRow(t *testing.T) {
	travelerRepo := newFakeTravelerRepo()
	checkinRepo := newFakeCheckinRepo()
	service := NewCheckinService(checkinRepo, travelerRepo, &recordingNotifier{})

	travelerID := seedTraveler(travelerRepo, uuid.New())

	// Odd number of toggles leaves exactly one row, never more.
	for i := 0; i < 5; i++ {
		_, err := service.ToggleCheckIn(context.Background(), travelerID, "")
		require.NoError(t, err)
	}

	count, _ := checkinRepo.CountByTraveler(context.Background(), travelerID)
	assert.EqualValues(t, 1, count)
}

func TestLoadSetReflectsPresence(t *testing.T) {
	travelerRepo := newFakeTravelerRepo()
	checkinRepo := newFakeCheckinRepo()
	service := NewCheckinService(checkinRepo, travelerRepo, &recordingNotifier{})

	groupID := uuid.New()
	in := seedTraveler(travelerRepo, groupID)
	out := seedTraveler(travelerRepo, groupID)
	checkinRepo.groupOf[in] = groupID
	checkinRepo.groupOf[out] = groupID

	_, err := service.ToggleCheckIn(context.Background(), in, "")
	require.NoError(t, err)

	set, err := service.LoadSet(context.Background(), groupID)
	require.NoError(t, err)
	assert.True(t, set.Contains(in))
	assert.False(t, set.Contains(out))
}
