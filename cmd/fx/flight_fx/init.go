package flight_fx

import (
	"go.uber.org/fx"

	"tourline/internal/infra"
	"tourline/internal/services"
)

var Module = fx.Provide(
	provideFlightService)

func provideFlightService(cfg infra.Config) services.FlightServiceInterface {
	return services.NewFlightService(services.FlightConfig{
		APIKey:  cfg.FlightAPIKey,
		BaseURL: cfg.FlightAPIBaseURL,
	}, nil, nil)
}
