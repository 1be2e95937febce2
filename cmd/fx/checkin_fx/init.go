package checkin_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"tourline/internal/repositories"
	"tourline/internal/services"
)

var Module = fx.Provide(
	provideCheckinService, provideCheckinRepo, provideHub, provideNotifier)

func provideCheckinRepo(db *gorm.DB) repositories.CheckinRepository {
	return repositories.NewCheckinRepository(db)
}

func provideHub() *services.CheckinHub {
	return services.NewCheckinHub()
}

func provideNotifier(hub *services.CheckinHub) services.CheckinNotifier {
	return hub
}

func provideCheckinService(
	checkinRepo repositories.CheckinRepository,
	travelerRepo repositories.TravelerRepository,
	notifier services.CheckinNotifier,
) services.CheckinServiceInterface {
	return services.NewCheckinService(checkinRepo, travelerRepo, notifier)
}
