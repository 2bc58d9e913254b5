package logger_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/screenkit/pkg/logger"
)

func TestNewDefaultsToJSON(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(logger.WithOutput(&buf))
	log.Info("hello")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "hello", record["msg"])
	assert.Equal(t, "INFO", record["level"])
}

func TestNewTextFormat(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(logger.WithOutput(&buf), logger.WithFormat(logger.FormatText))
	log.Info("hello")

	assert.Contains(t, buf.String(), "msg=hello")
}

func TestWithLevelFiltersBelowThreshold(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(logger.WithOutput(&buf), logger.WithLevel(slog.LevelWarn))

	log.Info("quiet")
	assert.Empty(t, buf.String())

	log.Warn("loud")
	assert.Contains(t, buf.String(), "loud")
}

func TestWithAttrAppearsOnEveryRecord(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(
		logger.WithOutput(&buf),
		logger.WithAttr(slog.String("service", "userlist")),
	)
	log.Info("one")
	log.Info("two")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	for _, line := range lines {
		assert.Contains(t, line, `"service":"userlist"`)
	}
}

func TestWithFormatPanicsOnInvalid(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() {
		logger.New(logger.WithFormat(logger.Format("xml")))
	})
}

func TestWithOutputIgnoresNil(t *testing.T) {
	t.Parallel()

	assert.NotPanics(t, func() {
		log := logger.New(logger.WithOutput(nil))
		_ = log.Enabled(t.Context(), slog.LevelError)
	})
}

func TestWithDevelopmentPreset(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(logger.WithDevelopment("userlist"), logger.WithOutput(&buf))
	log.Debug("verbose")

	out := buf.String()
	assert.Contains(t, out, "msg=verbose")
	assert.Contains(t, out, "service=userlist")
	assert.Contains(t, out, "env=development")
}

func TestWithProductionPreset(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(logger.WithProduction("userlist"), logger.WithOutput(&buf))

	log.Debug("verbose")
	assert.Empty(t, buf.String(), "debug must be filtered in production")

	log.Info("steady")
	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "userlist", record["service"])
	assert.Equal(t, "production", record["env"])
}

func TestWithEnvironmentSelectsPreset(t *testing.T) {
	t.Parallel()

	tests := []struct {
		env     string
		wantEnv string
	}{
		{"production", "production"},
		{"prod", "production"},
		{"staging", "staging"},
		{"stage", "staging"},
		{"development", "development"},
		{"anything-else", "development"},
	}

	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			log := logger.New(logger.WithEnvironment(tt.env, "userlist"), logger.WithOutput(&buf))
			log.Info("probe")
			assert.Contains(t, buf.String(), tt.wantEnv)
		})
	}
}
