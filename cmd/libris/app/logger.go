package app

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/agentstation/libris/pkg/logging"
)

// NewLogger builds the application logger. A setting that had to be
// ignored is reported as the first warning on the new logger.
func NewLogger(config *Config) zerolog.Logger {
	level, ignored := config.logLevel()

	logger := logging.NewLoggerFromConfig(&logging.Config{
		Level:     level.String(),
		Format:    config.LogFormat,
		Output:    config.LogOutput,
		NoColor:   config.NoColor,
		AddCaller: level <= zerolog.DebugLevel,
	})
	if ignored != "" {
		logger.Warn().Msg(ignored)
	}
	return logger
}

// logLevel resolves the level to log at. An explicit level (--log-level,
// LIBRIS_LOG_LEVEL, LOG_LEVEL or log_level) wins, then -q, then -v.
func (c *Config) logLevel() (zerolog.Level, string) {
	if c.LogLevel != "" {
		level, err := zerolog.ParseLevel(strings.ToLower(c.LogLevel))
		if err != nil || level > zerolog.ErrorLevel {
			return zerolog.InfoLevel, fmt.Sprintf("invalid log level %q, using info", c.LogLevel)
		}
		return level, ""
	}

	switch {
	case c.Quiet && c.Verbose:
		return zerolog.WarnLevel, "both --verbose and --quiet given, using --quiet"
	case c.Quiet:
		return zerolog.WarnLevel, ""
	case c.Verbose:
		return zerolog.DebugLevel, ""
	}
	return zerolog.InfoLevel, ""
}
