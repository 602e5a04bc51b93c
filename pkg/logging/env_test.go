package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnvConfig(t *testing.T) {
	tests := []struct {
		name       string
		env        map[string]string
		wantLevel  string
		wantFormat string
	}{
		{"defaults", nil, "info", "auto"},
		{"log level", map[string]string{"LOG_LEVEL": "warn"}, "warn", "auto"},
		{"debug switch", map[string]string{"DEBUG": "1"}, "debug", "auto"},
		{"log level beats debug", map[string]string{"LOG_LEVEL": "error", "DEBUG": "1"}, "error", "auto"},
		{"format", map[string]string{"LOG_FORMAT": "json"}, "info", "json"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			for _, key := range []string{"LOG_LEVEL", "DEBUG", "LOG_FORMAT"} {
				t.Setenv(key, tc.env[key])
			}

			cfg := envConfig()
			assert.Equal(t, tc.wantLevel, cfg.Level)
			assert.Equal(t, tc.wantFormat, cfg.Format)
		})
	}
}

func TestTestLoggerLines(t *testing.T) {
	logs := NewTestLogger(t)
	assert.Empty(t, logs.Lines())

	logs.Debug().Str("isbn", "111").Msg("Item added")
	logs.Trace().Msg("Catalog saved")

	lines := logs.Lines()
	assert.Len(t, lines, 2)
	assert.Contains(t, lines[0], `"isbn":"111"`)
	logs.AssertContains(t, "Catalog saved")
}
