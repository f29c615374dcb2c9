package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	// Server
	Port int
	Env  string

	// CORS
	AllowedOrigins []string

	// Roster source: exactly one of these is required
	SnapshotPath string
	SnapshotURL  string

	// Loading
	LoadTimeout     time.Duration
	RefreshInterval time.Duration // 0 disables periodic re-loads
}

// Load loads configuration from environment variables.
// It returns an error if critical configuration is missing.
func Load() (*Config, error) {
	cfg := &Config{
		Port: getEnvInt("PORT", 8080),
		Env:  getEnv("ENV", "development"),

		SnapshotPath: getEnv("SNAPSHOT_PATH", ""),
		SnapshotURL:  getEnv("SNAPSHOT_URL", ""),

		LoadTimeout:     getEnvDuration("LOAD_TIMEOUT", 30*time.Second),
		RefreshInterval: getEnvDuration("REFRESH_INTERVAL", 0),
	}

	// CORS
	origins := getEnv("ALLOWED_ORIGINS", "http://localhost:3000")
	rawOrigins := strings.Split(origins, ",")
	for _, o := range rawOrigins {
		if trimmed := strings.TrimSpace(o); trimmed != "" {
			cfg.AllowedOrigins = append(cfg.AllowedOrigins, trimmed)
		}
	}

	// Critical configuration - fail if missing
	if cfg.SnapshotPath == "" && cfg.SnapshotURL == "" {
		return nil, fmt.Errorf("missing required environment variable: SNAPSHOT_PATH or SNAPSHOT_URL")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}
