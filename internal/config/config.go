package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"planetpal/internal/storage"
)

// Config holds everything read from the environment. A .env file in the
// working directory is honoured when present.
type Config struct {
	DBPath   string
	LogLevel string
	LogJSON  bool
}

func Load() (*Config, error) {
	// Missing .env is fine; real env vars still apply.
	_ = godotenv.Load()

	dbPath, err := storage.ResolveDBPath()
	if err != nil {
		return nil, err
	}

	return &Config{
		DBPath:   dbPath,
		LogLevel: getEnv("PAL_LOG_LEVEL", "warn"),
		LogJSON:  getBoolEnv("PAL_LOG_JSON", false),
	}, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getBoolEnv(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}
