package tts_fx

import (
	"go.uber.org/fx"

	"tourline/internal/infra"
	"tourline/internal/services"
)

var Module = fx.Provide(
	provideTTSService)

func provideTTSService(cfg infra.Config) services.TTSServiceInterface {
	return services.NewTTSService(services.TTSConfig{
		OpenAIAPIKey: cfg.OpenAIAPIKey,
		BaseURL:      cfg.TTSBaseURL,
	}, nil)
}
