// Package cli implements the command surface: one subcommand per verb
// plus the shared initialization every invocation runs through.
package cli

import (
	"context"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"ebenezer/internal/config"
	"ebenezer/internal/ledger"
	"ebenezer/internal/storage"
)

// SetupLogger initializes structured logging on stderr so report output
// on stdout stays clean. Returns the configured logger and sets it as
// the default.
func SetupLogger(level slog.Level) *slog.Logger {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)
	return logger
}

// LoadEnvFile loads the .env file for local development.
// Errors are ignored silently as this is optional.
func LoadEnvFile() {
	_ = godotenv.Load()
}

// LoadAndValidateConfig loads configuration and validates it.
// Returns the config or exits the process on validation failure.
func LoadAndValidateConfig() *config.Config {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		slog.Error("Configuration validation failed", "error", err)
		os.Exit(1)
	}
	return cfg
}

// InitStore opens the repository (bootstrapping the schema) and ensures
// the first period exists. Exits the process on failure.
func InitStore(ctx context.Context, cfg *config.Config) (*storage.Repository, *ledger.Service) {
	repo, err := storage.NewRepository(cfg.DBPath)
	if err != nil {
		slog.Error("Failed to open ledger database", "error", err, "path", cfg.DBPath)
		os.Exit(1)
	}

	svc := ledger.NewService(repo, cfg.Currency)
	if err := svc.Ensure(ctx); err != nil {
		repo.Close()
		slog.Error("Failed to bootstrap first period", "error", err)
		os.Exit(1)
	}
	return repo, svc
}
