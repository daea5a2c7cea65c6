package config

import (
	"log/slog"
	"os"
	"strings"

	"github.com/subosito/gotenv"
)

const (
	defaultPort          = "3001"
	defaultSearchBaseURL = "https://api.memoryproto.co/twitter"
	defaultModelBaseURL  = "https://openrouter.ai/api/v1"
	defaultModel         = "deepseek/deepseek-v3.1-terminus"
)

// Config holds all process configuration. It is built once at startup and
// passed by value into each component; no component reads ambient environment
// state after that.
type Config struct {
	Port          string
	SearchAPIKey  string
	SearchBaseURL string
	ModelAPIKey   string
	ModelBaseURL  string
	Model         string
}

// LoadEnv loads an optional .env file into the process environment.
func LoadEnv() {
	if err := gotenv.Load(); err != nil {
		slog.Warn("[Config] No .env file found, using OS environment")
	}
}

// FromEnv builds a Config from the current environment. Missing API keys do
// not fail startup; the affected component degrades at call time instead.
func FromEnv() Config {
	return Config{
		Port:          getEnv("PORT", defaultPort),
		SearchAPIKey:  strings.TrimSpace(os.Getenv("MEMORY_PROTOCOL_API_KEY")),
		SearchBaseURL: getEnv("SEARCH_BASE_URL", defaultSearchBaseURL),
		ModelAPIKey:   strings.TrimSpace(os.Getenv("OPENROUTER_API_KEY")),
		ModelBaseURL:  getEnv("MODEL_BASE_URL", defaultModelBaseURL),
		Model:         getEnv("OPENROUTER_MODEL", defaultModel),
	}
}

func getEnv(key, def string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return def
}
