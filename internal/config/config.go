package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"golang.org/x/text/language"
)

const (
	BackendCSV    = "csv"
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

type Config struct {
	// Backend selection
	Backend string

	// CSV ledger
	LessonFile string

	// Database
	SQLitePath string

	// Presentation
	Language string
	Plain    bool
	Currency string // empty means the language default

	LogLevel string
}

func Load() *Config {
	return &Config{
		Backend:    getEnv("TUTORLOG_BACKEND", BackendCSV),
		LessonFile: getEnv("TUTORLOG_FILE", "teaching_records.csv"),
		SQLitePath: getEnv("TUTORLOG_SQLITE_PATH", "./data/tutorlog.db"),
		Language:   getEnv("TUTORLOG_LANG", "en"),
		Plain:      getEnvBool("TUTORLOG_PLAIN", false),
		Currency:   getEnv("TUTORLOG_CURRENCY", ""),
		LogLevel:   getEnv("LOG_LEVEL", "warn"),
	}
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	var errors []string

	validBackends := []string{BackendCSV, BackendSQLite, BackendMemory}
	isValidBackend := false
	for _, backend := range validBackends {
		if c.Backend == backend {
			isValidBackend = true
			break
		}
	}
	if !isValidBackend {
		errors = append(errors, fmt.Sprintf("invalid backend '%s': must be one of %v", c.Backend, validBackends))
	}

	if c.Backend == BackendCSV {
		if c.LessonFile == "" {
			errors = append(errors, "lesson file path cannot be empty when using csv backend")
		} else if info, err := os.Stat(c.LessonFile); err == nil && info.IsDir() {
			errors = append(errors, fmt.Sprintf("lesson file '%s' is a directory", c.LessonFile))
		}
	}

	if c.Backend == BackendSQLite {
		if c.SQLitePath == "" {
			errors = append(errors, "SQLite database path cannot be empty when using sqlite backend")
		} else {
			dir := filepath.Dir(c.SQLitePath)
			if dir != "." && dir != "" {
				if _, err := os.Stat(dir); os.IsNotExist(err) {
					if err := os.MkdirAll(dir, 0755); err != nil {
						errors = append(errors, fmt.Sprintf("cannot create SQLite database directory '%s': %v", dir, err))
					}
				}
			}
		}
	}

	if _, err := language.Parse(c.Language); err != nil {
		errors = append(errors, fmt.Sprintf("invalid language '%s': %v", c.Language, err))
	}

	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "warning", "error":
	default:
		errors = append(errors, fmt.Sprintf("invalid log level '%s': must be debug, info, warn or error", c.LogLevel))
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errors, "\n- "))
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}
