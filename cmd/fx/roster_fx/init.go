package roster_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"tourline/internal/repositories"
	"tourline/internal/services"
)

var Module = fx.Provide(
	provideRosterService, provideTravelerRepo)

func provideTravelerRepo(db *gorm.DB) repositories.TravelerRepository {
	return repositories.NewTravelerRepository(db)
}

func provideRosterService(travelerRepo repositories.TravelerRepository) services.RosterServiceInterface {
	return services.NewRosterService(travelerRepo)
}
