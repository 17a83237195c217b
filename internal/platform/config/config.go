package config

import (
	"os"
	"strings"
)

// Config is centralized process configuration.
// Keep infra values here and pass typed config into builders.
type Config struct {
	ServiceName string
	HTTPPort    string
	PostgresDSN string

	GenAIAPIKey string
	GenAIModel  string

	EnableContentReview bool
	EnableOutboxRelay   bool
}

func Load() (Config, error) {
	service := os.Getenv("SERVICE_NAME")
	if service == "" {
		service = "neolingo"
	}

	port := os.Getenv("HTTP_PORT")
	if port == "" {
		port = "8080"
	}

	model := strings.TrimSpace(os.Getenv("GENAI_MODEL"))
	if model == "" {
		model = "gemini-2.0-flash"
	}

	return Config{
		ServiceName: service,
		HTTPPort:    port,
		PostgresDSN: os.Getenv("POSTGRES_DSN"),

		GenAIAPIKey: strings.TrimSpace(os.Getenv("GENAI_API_KEY")),
		GenAIModel:  model,

		EnableContentReview: envBool("ENABLE_CONTENT_REVIEW", true),
		EnableOutboxRelay:   envBool("ENABLE_OUTBOX_RELAY", true),
	}, nil
}

func envBool(name string, fallback bool) bool {
	raw := strings.TrimSpace(strings.ToLower(os.Getenv(name)))
	if raw == "" {
		return fallback
	}
	switch raw {
	case "1", "true", "t", "yes", "y", "on":
		return true
	case "0", "false", "f", "no", "n", "off":
		return false
	default:
		return fallback
	}
}
