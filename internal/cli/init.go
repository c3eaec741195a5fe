// Package cli provides the tutorlog command tree and its shared
// initialization: environment file, configuration and logging.
package cli

import (
	"io"
	"log/slog"

	"github.com/joho/godotenv"

	"tutorlog/internal/config"
	applog "tutorlog/internal/log"
)

// SetupLogger builds the CLI logger on w at the configured level and
// installs its handler as the process default. Library code logs through
// slog.Default and tags its own component.
func SetupLogger(cfg *config.Config, w io.Writer) *applog.Logger {
	level, err := applog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = slog.LevelWarn
	}
	logger := applog.New(applog.Config{
		Level:     level,
		Component: applog.ComponentCLI,
		Format:    "text",
		Writer:    w,
	})
	slog.SetDefault(slog.New(logger.Handler()))
	return logger
}

// LoadEnvFile loads the .env file for local use.
// Errors are ignored silently as the file is optional.
func LoadEnvFile() {
	_ = godotenv.Load()
}
