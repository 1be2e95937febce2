package alert_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"tourline/internal/repositories"
	"tourline/internal/services"
)

var Module = fx.Provide(
	provideAlertService, provideAlertRepo)

func provideAlertRepo(db *gorm.DB) repositories.AlertRepository {
	return repositories.NewAlertRepository(db)
}

func provideAlertService(
	alertRepo repositories.AlertRepository,
	travelerRepo repositories.TravelerRepository,
	groupRepo repositories.GroupRepository,
	messaging services.MessagingServiceInterface,
	notifier services.CheckinNotifier,
) services.AlertServiceInterface {
	return services.NewAlertService(alertRepo, travelerRepo, groupRepo, messaging, notifier)
}
