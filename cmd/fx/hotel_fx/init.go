package hotel_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"tourline/internal/repositories"
	"tourline/internal/services"
)

var Module = fx.Provide(
	provideHotelService, provideHotelRepo)

func provideHotelRepo(db *gorm.DB) repositories.HotelRepository {
	return repositories.NewHotelRepository(db)
}

func provideHotelService(hotelRepo repositories.HotelRepository) services.HotelServiceInterface {
	return services.NewHotelService(hotelRepo)
}
