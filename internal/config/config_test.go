package config

import (
	"reflect"
	"testing"

	"github.com/myteamhq/handball-api/internal/league"
)

func TestFromEnvDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "BASE_URL", "REDIS_URL", "DATABASE_URL", "CORS_ORIGINS", "LOG_LEVEL"} {
		t.Setenv(key, "")
	}

	cfg := FromEnv()
	if cfg.Port != "3000" {
		t.Errorf("Port = %q", cfg.Port)
	}
	if cfg.BaseURL != league.DefaultBaseURL {
		t.Errorf("BaseURL = %q", cfg.BaseURL)
	}
	if cfg.RedisURL != "" || cfg.DatabaseURL != "" {
		t.Errorf("expected optional URLs to stay empty: %+v", cfg)
	}
	if !reflect.DeepEqual(cfg.CORSOrigins, defaultOrigins) {
		t.Errorf("CORSOrigins = %v", cfg.CORSOrigins)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q", cfg.LogLevel)
	}
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("BASE_URL", "http://stub.local")
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example ,")

	cfg := FromEnv()
	if cfg.Port != "8080" || cfg.BaseURL != "http://stub.local" {
		t.Errorf("cfg = %+v", cfg)
	}
	want := []string{"https://a.example", "https://b.example"}
	if !reflect.DeepEqual(cfg.CORSOrigins, want) {
		t.Errorf("CORSOrigins = %v, want %v", cfg.CORSOrigins, want)
	}
}
