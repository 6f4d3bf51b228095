package app

import "fmt"

const (
	// DefaultLogLevel keeps normal runs silent on stderr.
	DefaultLogLevel  = "warn"
	DefaultLogFormat = "text"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	ProgramName string
	InputPath   string // may be empty; opening it fails like any bad path

	LogFormat string
	LogLevel  string
}

func NewConfig(cfg Config) (*Config, error) {
	if cfg.LogFormat == "" {
		cfg.LogFormat = DefaultLogFormat
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = DefaultLogLevel
	}

	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return nil, fmt.Errorf("invalid log format %q: must be 'text' or 'json'", cfg.LogFormat)
	}

	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return nil, fmt.Errorf("invalid log level %q: must be 'debug', 'info', 'warn', or 'error'", cfg.LogLevel)
	}

	return &cfg, nil
}
