package spot_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"tourline/internal/repositories"
	"tourline/internal/services"
)

var Module = fx.Provide(
	provideSpotService, provideSpotRepo)

func provideSpotRepo(db *gorm.DB) repositories.SpotRepository {
	return repositories.NewSpotRepository(db)
}

func provideSpotService(spotRepo repositories.SpotRepository) services.SpotServiceInterface {
	return services.NewSpotService(spotRepo)
}
