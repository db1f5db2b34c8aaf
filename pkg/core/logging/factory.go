// ============================================================================
// valid8 - Logical Argument Validator
// ============================================================================
//
// Package:     logging
// Description: Factory functions for creating foundation loggers from config
// Author:      Mike Stoffels
// Created:     2026-10-17
// License:     MIT
// ============================================================================

package logging

import (
	"io"
	"os"

	v8log "github.com/msto63/valid8/foundation/core/log"
	"github.com/msto63/valid8/pkg/core/config"
)

// LoggerConfig holds configuration for creating loggers
type LoggerConfig struct {
	// Logger name shown in every entry
	Name string

	// Log level (trace, debug, info, warn, error, fatal)
	Level string

	// Output format (json, text, console, logfmt)
	Format string

	// Verbose forces debug level regardless of Level
	Verbose bool

	// Output defaults to stderr so that verdicts on stdout stay clean
	Output io.Writer

	// EnableCaller adds file:line to entries
	EnableCaller bool
}

// DefaultLoggerConfig returns a default configuration
func DefaultLoggerConfig(name string) LoggerConfig {
	return LoggerConfig{
		Name:   name,
		Level:  "warn",
		Format: "console",
	}
}

// NewLogger creates a foundation logger
func NewLogger(cfg LoggerConfig) *v8log.Logger {
	level := parseLevel(cfg.Level)
	if cfg.Verbose {
		level = v8log.LevelDebug
	}

	format, err := v8log.ParseFormat(cfg.Format)
	if err != nil {
		format = v8log.FormatConsole
	}

	output := cfg.Output
	if output == nil {
		output = os.Stderr
	}

	return v8log.NewWithConfig(v8log.Config{
		Level:        level,
		Format:       format,
		Output:       output,
		Name:         cfg.Name,
		EnableCaller: cfg.EnableCaller || level <= v8log.LevelTrace,
	})
}

// FromConfig creates the application logger from the loaded configuration
func FromConfig(cfg *config.Config, verbose bool, output io.Writer) *v8log.Logger {
	return NewLogger(LoggerConfig{
		Name:    "valid8",
		Level:   cfg.General.LogLevel,
		Format:  cfg.General.LogFormat,
		Verbose: verbose,
		Output:  output,
	})
}

// parseLevel converts a string level to v8log.Level
func parseLevel(level string) v8log.Level {
	switch level {
	case "trace":
		return v8log.LevelTrace
	case "debug":
		return v8log.LevelDebug
	case "info":
		return v8log.LevelInfo
	case "warn", "warning":
		return v8log.LevelWarn
	case "error":
		return v8log.LevelError
	case "fatal":
		return v8log.LevelFatal
	default:
		return v8log.LevelWarn
	}
}
