// Package config loads server configuration from the environment, with
// optional .env support for local development.
package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Addr         string
	DBPath       string
	LogLevel     string
	SessionTTL   time.Duration
	ReapInterval time.Duration
	SnapshotKeep int
	MaxTokens    int
}

// Load reads configuration from a .env file (if present) and environment
// variables, applying sensible defaults when values are missing or invalid.
func Load() Config {
	// Ignore error so the app still starts when .env is absent in production.
	_ = godotenv.Load()

	return Config{
		Addr:         envOr("TUTORIZ_ADDR", ":8080"),
		DBPath:       os.Getenv("TUTORIZ_DB"), // empty means the XDG default path
		LogLevel:     envOr("TUTORIZ_LOG_LEVEL", "INFO"),
		SessionTTL:   envDurationOr("TUTORIZ_SESSION_TTL", 30*time.Minute),
		ReapInterval: envDurationOr("TUTORIZ_REAP_INTERVAL", time.Minute),
		SnapshotKeep: envIntOr("TUTORIZ_SNAPSHOT_KEEP", 10),
		MaxTokens:    envIntOr("TUTORIZ_MAX_TOKENS", 1024),
	}
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envIntOr(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
		log.Printf("invalid value for %s=%q, using default %d", key, v, def)
	}
	return def
}

func envDurationOr(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
		log.Printf("invalid value for %s=%q, using default %s", key, v, def)
	}
	return def
}
