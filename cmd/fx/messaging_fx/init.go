package messaging_fx

import (
	"go.uber.org/fx"

	"tourline/internal/infra"
	"tourline/internal/repositories"
	"tourline/internal/services"
)

var Module = fx.Provide(
	provideMessagingService)

func provideMessagingService(
	cfg infra.Config,
	travelerRepo repositories.TravelerRepository,
	groupRepo repositories.GroupRepository,
) services.MessagingServiceInterface {
	return services.NewLineMessagingService(services.LineConfig{
		ChannelToken: cfg.LineChannelToken,
		BaseURL:      cfg.LineAPIBaseURL,
	}, nil, travelerRepo, groupRepo)
}
