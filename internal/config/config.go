// Package config reads the collaborator keys and tunables the app
// needs at startup from the environment, with a .env file as an
// optional local override.
package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds all application configuration.
type Config struct {
	Auth     AuthConfig
	Places   PlacesConfig
	Payments PaymentsConfig
}

// AuthConfig holds authentication provider settings.
type AuthConfig struct {
	PublishableKey string
	SessionSecret  string
	TokenCacheKey  string
}

// PlacesConfig holds places/directions provider settings.
type PlacesConfig struct {
	APIKey        string
	DirectionsKey string
}

// PaymentsConfig holds payment provider settings.
type PaymentsConfig struct {
	PublishableKey string
	Currency       string
}

// Load reads configuration from environment variables with sensible
// defaults. A .env file is loaded first when present.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Auth: AuthConfig{
			PublishableKey: env("AUTH_PUBLISHABLE_KEY", ""),
			SessionSecret:  env("AUTH_SESSION_SECRET", "dev-session-secret"),
			TokenCacheKey:  env("AUTH_TOKEN_CACHE_KEY", "session_token"),
		},
		Places: PlacesConfig{
			APIKey:        env("PLACES_API_KEY", ""),
			DirectionsKey: env("DIRECTIONS_API_KEY", ""),
		},
		Payments: PaymentsConfig{
			PublishableKey: env("PAYMENTS_PUBLISHABLE_KEY", ""),
			Currency:       env("PAYMENTS_CURRENCY", "usd"),
		},
	}
}

func env(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
