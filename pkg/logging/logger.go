// Package logging provides structured logging for libris using zerolog.
// Console output is used when stderr is a terminal, JSON otherwise.
//
// Example usage:
//
//	log := logging.Default()
//	log.Info().Str("path", "catalog.json").Int("items", 12).Msg("Catalog loaded")
//
//	ctx := logging.WithISBN(context.Background(), "978-0441013593")
//	logging.FromContext(ctx).Debug().Msg("Updating item")
package logging

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
)

// defaultLogger serves code that was not handed a logger, such as an
// Archive built without WithLogger.
var defaultLogger = NewLoggerFromConfig(envConfig())

// envConfig reads the default logger settings from LOG_LEVEL, DEBUG and
// LOG_FORMAT.
func envConfig() *Config {
	cfg := DefaultConfig()
	if level := os.Getenv("LOG_LEVEL"); level != "" {
		cfg.Level = level
	} else if os.Getenv("DEBUG") != "" {
		cfg.Level = "debug"
	}
	if format := os.Getenv("LOG_FORMAT"); format != "" {
		cfg.Format = format
	}
	return cfg
}

// Default returns the process-wide logger.
func Default() *zerolog.Logger {
	return &defaultLogger
}

// NewNopLogger returns a logger that discards everything.
func NewNopLogger() *zerolog.Logger {
	logger := zerolog.Nop()
	return &logger
}

func stderrIsTerminal() bool {
	fd := os.Stderr.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
