package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// Config carries every runtime setting. It is constructed once at
// startup and passed down explicitly; nothing reads the environment
// after Load returns.
type Config struct {
	// Database
	DBPath string

	// Presentation
	Currency string

	// Logging
	LogLevel slog.Level
}

func Load() *Config {
	return &Config{
		DBPath:   getEnv("EBENEZER_DB_PATH", defaultDBPath()),
		Currency: getEnv("EBENEZER_CURRENCY", "€"),
		LogLevel: parseLevel(getEnv("EBENEZER_LOG_LEVEL", "warn")),
	}
}

// defaultDBPath places the database in the per-user config directory,
// falling back to the working directory when none is resolvable.
func defaultDBPath() string {
	base, err := os.UserConfigDir()
	if err != nil {
		return "./ebenezer.db"
	}
	return filepath.Join(base, "ebenezer", "ebenezer.db")
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	var errs []string

	if c.DBPath == "" {
		errs = append(errs, "database path cannot be empty")
	} else {
		dir := filepath.Dir(c.DBPath)
		if dir != "." && dir != "" {
			if _, err := os.Stat(dir); os.IsNotExist(err) {
				if err := os.MkdirAll(dir, 0755); err != nil {
					errs = append(errs, fmt.Sprintf("cannot create database directory '%s': %v", dir, err))
				}
			}
		}
	}

	if c.Currency == "" {
		errs = append(errs, "currency symbol cannot be empty")
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errs, "\n- "))
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
