package services

import (
	"context"

	"github.com/google/uuid"

	dbm "tourline/internal/models/db_models"
	"tourline/internal/repositories"
	"tourline/pkg/utils"
)

type CheckinServiceInterface interface {
	// ToggleCheckIn flips presence for a traveler and reports the new
	// state. Two toggles racing for the same traveler resolve
	// last-write-wins; callers treat a post-toggle fetch as authoritative.
	ToggleCheckIn(ctx context.Context, travelerID uuid.UUID, locationName string) (bool, error)
	ListCheckedIn(ctx context.Context, groupID uuid.UUID) ([]dbm.CheckIn, error)
	LoadSet(ctx context.Context, groupID uuid.UUID) (CheckinSet, error)
}

type CheckinService struct {
	checkinRepo  repositories.CheckinRepository
	travelerRepo repositories.TravelerRepository
	notifier     CheckinNotifier
}

func NewCheckinService(
	checkinRepo repositories.CheckinRepository,
	travelerRepo repositories.TravelerRepository,
	notifier CheckinNotifier,
) CheckinServiceInterface {
	return &CheckinService{
		checkinRepo:  checkinRepo,
		travelerRepo: travelerRepo,
		notifier:     notifier,
	}
}

func (s *CheckinService) ToggleCheckIn(ctx context.Context, travelerID uuid.UUID, locationName string) (bool, error) {
	traveler, err := s.travelerRepo.FindById(ctx, travelerID)
	if err != nil {
		return false, utils.ErrDatabaseError
	}
	if traveler == nil {
		return false, utils.ErrTravelerNotFound
	}

	checkedIn, err := s.checkinRepo.Toggle(ctx, travelerID, locationName)
	if err != nil {
		return false, utils.ErrDatabaseError
	}

	event := CheckinEvent{
		Event:      EventCheckOut,
		TravelerID: travelerID,
	}
	if checkedIn {
		event.Event = EventCheckIn
		event.LocationName = locationName
	}
	s.notifier.Publish(event)

	return checkedIn, nil
}

func (s *CheckinService) ListCheckedIn(ctx context.Context, groupID uuid.UUID) ([]dbm.CheckIn, error) {
	records, err := s.checkinRepo.ListByGroup(ctx, groupID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return records, nil
}

// LoadSet builds the presence set a viewer keeps updated from realtime
// events. Membership tests against it are O(1).
func (s *CheckinService) LoadSet(ctx context.Context, groupID uuid.UUID) (CheckinSet, error) {
	records, err := s.checkinRepo.ListByGroup(ctx, groupID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	set := NewCheckinSet()
	for _, record := range records {
		set[record.TravelerID] = struct{}{}
	}
	return set, nil
}
