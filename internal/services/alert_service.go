package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	dbm "tourline/internal/models/db_models"
	"tourline/internal/repositories"
	"tourline/pkg/utils"
)

type AlertServiceInterface interface {
	TriggerSOS(ctx context.Context, groupID uuid.UUID, travelerID uuid.UUID, message string) error
	ListOpenAlerts(ctx context.Context, groupID uuid.UUID) ([]dbm.SOSAlert, error)
	ResolveAlert(ctx context.Context, id uuid.UUID) error
}

type AlertService struct {
	alertRepo    repositories.AlertRepository
	travelerRepo repositories.TravelerRepository
	groupRepo    repositories.GroupRepository
	messaging    MessagingServiceInterface
	notifier     CheckinNotifier
}

func NewAlertService(
	alertRepo repositories.AlertRepository,
	travelerRepo repositories.TravelerRepository,
	groupRepo repositories.GroupRepository,
	messaging MessagingServiceInterface,
	notifier CheckinNotifier,
) AlertServiceInterface {
	return &AlertService{
		alertRepo:    alertRepo,
		travelerRepo: travelerRepo,
		groupRepo:    groupRepo,
		messaging:    messaging,
		notifier:     notifier,
	}
}

// TriggerSOS persists the alert, notifies realtime viewers, and pushes a
// LINE message to the group's alert recipient when one is bound. The push is
// best-effort: a provider failure never fails the alert itself.
func (s *AlertService) TriggerSOS(ctx context.Context, groupID uuid.UUID, travelerID uuid.UUID, message string) error {
	group, err := s.groupRepo.FindById(ctx, groupID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if group == nil {
		return utils.ErrGroupNotFound
	}

	traveler, err := s.travelerRepo.FindById(ctx, travelerID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if traveler == nil {
		return utils.ErrTravelerNotFound
	}

	alert := &dbm.SOSAlert{
		GroupID:    groupID,
		TravelerID: travelerID,
		Message:    message,
	}
	if err := s.alertRepo.Insert(ctx, alert); err != nil {
		return utils.ErrDatabaseError
	}

	s.notifier.Publish(CheckinEvent{
		Event:      EventSOS,
		TravelerID: travelerID,
		Message:    message,
	})

	if group.NotifyLineID != nil {
		text := fmt.Sprintf("SOS：%s（%s 房）%s", traveler.FullName, traveler.RoomNumber, message)
		if err := s.messaging.PushToOne(ctx, *group.NotifyLineID, text); err != nil {
			logrus.WithError(err).Warn("SOS push failed")
		}
	}

	return nil
}

func (s *AlertService) ListOpenAlerts(ctx context.Context, groupID uuid.UUID) ([]dbm.SOSAlert, error) {
	alerts, err := s.alertRepo.ListOpenByGroup(ctx, groupID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return alerts, nil
}

func (s *AlertService) ResolveAlert(ctx context.Context, id uuid.UUID) error {
	if err := s.alertRepo.Resolve(ctx, id); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}
