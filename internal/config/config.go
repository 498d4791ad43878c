package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds runtime configuration parsed from environment variables. It
// only concerns process wiring; core packages take explicit parameters.
type Config struct {
	HTTPAddr        string
	CatalogBaseURL  string
	ShutdownTimeout time.Duration
}

// Load reads .env.local via godotenv when APP_ENV is "local", then builds
// Config from the environment.
func Load(logger *log.Logger) Config {
	if os.Getenv("APP_ENV") == "local" {
		if err := godotenv.Load(".env.local"); err != nil {
			logger.Printf("no .env.local loaded: %v", err)
		}
	}
	return FromEnv()
}

// FromEnv builds Config with defaults, overridden by environment variables.
func FromEnv() Config {
	return Config{
		HTTPAddr:        envOrDefault("HTTP_ADDR", ":8080"),
		CatalogBaseURL:  envOrDefault("CATALOG_BASE_URL", "https://fakestoreapi.com"),
		ShutdownTimeout: envDuration("SHUTDOWN_TIMEOUT_SECONDS", 10*time.Second),
	}
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		seconds, err := strconv.Atoi(v)
		if err == nil {
			return time.Duration(seconds) * time.Second
		}
	}
	return def
}
