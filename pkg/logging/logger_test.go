package logging_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/libris/pkg/logging"
)

func TestContextLogger(t *testing.T) {
	testLogger := logging.NewTestLogger(t)

	ctx := logging.WithLogger(context.Background(), testLogger.Logger)
	ctx = logging.WithISBN(ctx, "978-0441013593")
	ctx = logging.WithOperation(ctx, "update")
	ctx = logging.WithPath(ctx, "catalog.json")

	logging.FromContext(ctx).Info().Msg("test message")

	testLogger.AssertContains(t, `"isbn":"978-0441013593"`)
	testLogger.AssertContains(t, `"operation":"update"`)
	testLogger.AssertContains(t, `"path":"catalog.json"`)
	testLogger.AssertContains(t, "test message")
	assert.Len(t, testLogger.Lines(), 1)
}

func TestFromContextFallsBackToDefault(t *testing.T) {
	//nolint:staticcheck // nil context is part of the contract
	assert.Same(t, logging.Default(), logging.FromContext(nil))
	assert.Same(t, logging.Default(), logging.FromContext(context.Background()))
}

func TestNewLoggerFromConfig(t *testing.T) {
	originalLevel := zerolog.GlobalLevel()
	t.Cleanup(func() { zerolog.SetGlobalLevel(originalLevel) })

	tests := []struct {
		name      string
		level     string
		logFunc   func(l *zerolog.Logger) *zerolog.Event
		shouldLog bool
	}{
		{"debug logs debug", "debug", (*zerolog.Logger).Debug, true},
		{"info drops debug", "info", (*zerolog.Logger).Debug, false},
		{"warning alias", "warning", (*zerolog.Logger).Warn, true},
		{"warn drops info", "warn", (*zerolog.Logger).Info, false},
		{"invalid falls back to info", "loud", (*zerolog.Logger).Info, true},
		{"off disables", "off", (*zerolog.Logger).Error, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "libris.log")
			logger := logging.NewLoggerFromConfig(&logging.Config{
				Level:  tc.level,
				Format: "json",
				Output: path,
			})
			tc.logFunc(&logger).Msg("catalog saved")

			content, err := os.ReadFile(path)
			require.NoError(t, err)
			assert.Equal(t, tc.shouldLog, strings.Contains(string(content), "catalog saved"))
		})
	}
}

func TestConsoleFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "console.log")
	logger := logging.NewLoggerFromConfig(&logging.Config{
		Level:   "info",
		Format:  "console",
		Output:  path,
		NoColor: true,
	})
	logger.Info().Str("key", "value").Msg("console test")

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "console test")
	assert.Contains(t, string(content), "INF")
}
