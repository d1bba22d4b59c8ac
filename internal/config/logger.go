package config

import "fmt"

// Log formats.
const (
	LogFormatJSON    = "json"
	LogFormatConsole = "console"
)

var logLevels = map[string]bool{"debug": true, "info": true, "warn": true, "error": true}

// LoggerConfig holds logger configuration.
type LoggerConfig struct {
	// Level is the minimum level written (debug, info, warn, error).
	Level string
	// Format is the encoder (json, console).
	Format string
	// Output is stdout, stderr or a file path opened in append mode.
	Output string
	// Service is attached as the "service" field of every entry; empty omits it.
	Service string
}

// LoadLoggerConfigFromEnv loads logger configuration from LOG_* environment variables.
func LoadLoggerConfigFromEnv() LoggerConfig {
	return LoggerConfig{
		Level:   GetEnv("LOG_LEVEL", "info"),
		Format:  GetEnv("LOG_FORMAT", LogFormatJSON),
		Output:  GetEnv("LOG_OUTPUT", "stdout"),
		Service: GetEnv("LOG_SERVICE", "goalboard"),
	}
}

// Validate validates logger configuration.
func (c LoggerConfig) Validate() error {
	if !logLevels[c.Level] {
		return fmt.Errorf("invalid log level: %s (must be: debug, info, warn, error)", c.Level)
	}

	if c.Format != LogFormatJSON && c.Format != LogFormatConsole {
		return fmt.Errorf("invalid log format: %s (must be: json, console)", c.Format)
	}

	return nil
}

// IsProduction reports whether the production zap preset applies: JSON output above debug.
func (c LoggerConfig) IsProduction() bool {
	return c.Format == LogFormatJSON && c.Level != "debug"
}
