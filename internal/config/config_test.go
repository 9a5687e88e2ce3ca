package config

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("LOG_FORMAT", "")

	cfg := Load()
	assert.Equal(t, zerolog.InfoLevel, cfg.LogLevel)
	assert.Equal(t, "console", cfg.LogFormat)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("LOG_FORMAT", "JSON")

	cfg := Load()
	assert.Equal(t, zerolog.DebugLevel, cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
}

func TestLoad_InvalidLevelFallsBack(t *testing.T) {
	t.Setenv("LOG_LEVEL", "chatty")

	assert.Equal(t, zerolog.InfoLevel, Load().LogLevel)
}

func TestConfig_LoggerJSON(t *testing.T) {
	var buf bytes.Buffer
	cfg := &Config{LogLevel: zerolog.WarnLevel, LogFormat: "json"}
	logger := cfg.Logger(&buf)

	logger.Info().Msg("hidden")
	assert.Empty(t, buf.String())

	logger.Warn().Str("tool", "T01").Msg("dropped")
	assert.Contains(t, buf.String(), `"tool":"T01"`)
	assert.Contains(t, buf.String(), `"level":"warn"`)
}
