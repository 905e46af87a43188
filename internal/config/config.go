// Package config reads runtime settings from the environment, optionally
// seeded from a .env file.
package config

import (
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// DefaultNamespace is the snapshot key the engine has always persisted
// under; changing it orphans existing snapshots.
const DefaultNamespace = "tds_stock_mgmt_v10_final"

// Config holds application configuration values.
type Config struct {
	// DBPath is the SQLite file holding snapshots.
	DBPath string

	// Namespace keys the snapshot blob inside the store.
	Namespace string

	// LogLevel is the minimum level for engine logging.
	LogLevel slog.Level
}

// Load reads configuration from environment variables with reasonable
// defaults. A .env file in the working directory is merged in first when
// present; a missing file is not an error.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		DBPath:    envOr("STOCKROOM_DB", "stockroom.db"),
		Namespace: envOr("STOCKROOM_NAMESPACE", DefaultNamespace),
		LogLevel:  parseLevel(envOr("STOCKROOM_LOG_LEVEL", "info")),
	}
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
