package itinerary_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"tourline/internal/repositories"
	"tourline/internal/services"
)

var Module = fx.Provide(
	provideItineraryService, provideItineraryRepo)

func provideItineraryRepo(db *gorm.DB) repositories.ItineraryRepository {
	return repositories.NewItineraryRepository(db)
}

func provideItineraryService(itineraryRepo repositories.ItineraryRepository) services.ItineraryServiceInterface {
	return services.NewItineraryService(itineraryRepo)
}
