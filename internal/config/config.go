package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"ledger/internal/log"
)

type Config struct {
	// Files
	ExportFile string
	ImportFile string

	// Logging
	LogLevel  string
	LogFormat string
}

func Load() *Config {
	return &Config{
		ExportFile: getEnv("LEDGER_EXPORT_FILE", "expenses.csv"),
		ImportFile: getEnv("LEDGER_IMPORT_FILE", ""),

		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", log.FormatText),
	}
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	var errors []string

	// Validate export file name
	if strings.TrimSpace(c.ExportFile) == "" {
		errors = append(errors, "export file name cannot be empty")
	} else if !strings.EqualFold(filepath.Ext(c.ExportFile), ".csv") {
		errors = append(errors, fmt.Sprintf("invalid export file '%s': must have a .csv extension", c.ExportFile))
	}

	// Validate import file if provided
	if c.ImportFile != "" {
		if info, err := os.Stat(c.ImportFile); err != nil {
			errors = append(errors, fmt.Sprintf("import file '%s' is not readable: %v", c.ImportFile, err))
		} else if info.IsDir() {
			errors = append(errors, fmt.Sprintf("import file '%s' is a directory", c.ImportFile))
		}
	}

	// Validate logging
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		errors = append(errors, fmt.Sprintf("invalid log level '%s': must be one of [debug info warn error]", c.LogLevel))
	}
	if c.LogFormat != log.FormatText && c.LogFormat != log.FormatJSON {
		errors = append(errors, fmt.Sprintf("invalid log format '%s': must be one of [text json]", c.LogFormat))
	}

	// Return combined errors
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
