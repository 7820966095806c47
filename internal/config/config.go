package config

import (
	"os"
	"strings"

	"github.com/myteamhq/handball-api/internal/league"
)

// Config carries everything the server reads from its environment.
// Redis and Postgres are optional: leaving their URLs empty disables the
// roster cache and the welcome endpoint instead of failing startup.
type Config struct {
	Port        string
	BaseURL     string
	RedisURL    string
	DatabaseURL string
	CORSOrigins []string
	LogLevel    string
}

var defaultOrigins = []string{"http://localhost:5173", "http://127.0.0.1:5173"}

// FromEnv loads configuration from environment variables, applying
// defaults for anything unset.
func FromEnv() Config {
	cfg := Config{
		Port:        envOr("PORT", "3000"),
		BaseURL:     envOr("BASE_URL", league.DefaultBaseURL),
		RedisURL:    os.Getenv("REDIS_URL"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		CORSOrigins: splitOrigins(os.Getenv("CORS_ORIGINS")),
		LogLevel:    envOr("LOG_LEVEL", "info"),
	}
	return cfg
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func splitOrigins(raw string) []string {
	origins := make([]string, 0)
	for _, o := range strings.Split(raw, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	if len(origins) == 0 {
		return defaultOrigins
	}
	return origins
}
