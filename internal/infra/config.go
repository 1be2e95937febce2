package infra

import "os"

// Config collects every environment option the service recognizes. Values are
// read once at startup so components receive an explicit snapshot instead of
// touching the process environment themselves.
type Config struct {
	PostgresURL string
	Port        string

	JWTSecret string

	LineChannelToken string
	LineChannelID    string
	LineAPIBaseURL   string

	// Optional. Flight lookups fall back to a deterministic mock when empty.
	FlightAPIKey     string
	FlightAPIBaseURL string

	// Optional. The TTS proxy uses the OpenAI speech endpoint when set,
	// otherwise it passes through to TTSBaseURL.
	OpenAIAPIKey string
	TTSBaseURL   string
}

func LoadConfig() Config {
	return Config{
		PostgresURL:      os.Getenv("POSTGRES_URL"),
		Port:             getEnv("PORT", "8080"),
		JWTSecret:        os.Getenv("JWT_SECRET"),
		LineChannelToken: os.Getenv("LINE_CHANNEL_TOKEN"),
		LineChannelID:    os.Getenv("LINE_CHANNEL_ID"),
		LineAPIBaseURL:   getEnv("LINE_API_BASE_URL", "https://api.line.me"),
		FlightAPIKey:     os.Getenv("FLIGHT_API_KEY"),
		FlightAPIBaseURL: getEnv("FLIGHT_API_BASE_URL", "https://aerodatabox.p.rapidapi.com"),
		OpenAIAPIKey:     os.Getenv("OPENAI_API_KEY"),
		TTSBaseURL:       getEnv("TTS_BASE_URL", "https://translate.google.com/translate_tts"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
