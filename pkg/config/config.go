package config

import (
	"errors"
	"os"
	"strconv"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	// Server
	Port         string
	AppName      string
	ReadTimeout  int // seconds
	WriteTimeout int // seconds

	// Sendbird
	SendbirdAppID    string
	SendbirdAPIToken string

	// CORS
	AllowOrigins string
}

// Load reads configuration from environment variables with sensible defaults.
// Call Validate before serving; the Sendbird credentials have no default.
func Load() *Config {
	return &Config{
		Port:         envOrDefault("PORT", "3000"),
		AppName:      envOrDefault("APP_NAME", "sendbird-gateway"),
		ReadTimeout:  envOrDefaultInt("READ_TIMEOUT_SECONDS", 30),
		WriteTimeout: envOrDefaultInt("WRITE_TIMEOUT_SECONDS", 30),

		SendbirdAppID:    os.Getenv("SENDBIRD_APP_ID"),
		SendbirdAPIToken: os.Getenv("SENDBIRD_API_TOKEN"),

		AllowOrigins: envOrDefault("CORS_ALLOW_ORIGINS", "*"),
	}
}

// Validate reports missing required values. The process must not start
// serving without them since every operation needs the upstream credential.
func (c *Config) Validate() error {
	if c.SendbirdAppID == "" {
		return errors.New("SENDBIRD_APP_ID is required")
	}
	if c.SendbirdAPIToken == "" {
		return errors.New("SENDBIRD_API_TOKEN is required")
	}
	return nil
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envOrDefaultInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		n, err := strconv.Atoi(v)
		if err == nil {
			return n
		}
	}
	return fallback
}
