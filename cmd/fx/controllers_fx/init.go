package controllers_fx

import (
	"go.uber.org/fx"

	"tourline/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewAccountController),
	fx.Provide(controllers.NewGroupController),
	fx.Provide(controllers.NewTravelerController),
	fx.Provide(controllers.NewCheckinController),
	fx.Provide(controllers.NewRealtimeController),
	fx.Provide(controllers.NewMessagingController),
	fx.Provide(controllers.NewAlertController),
	fx.Provide(controllers.NewHotelController),
	fx.Provide(controllers.NewSpotController),
	fx.Provide(controllers.NewItineraryController),
	fx.Provide(controllers.NewLedgerController),
	fx.Provide(controllers.NewFlightController),
	fx.Provide(controllers.NewTTSController))
