package config

import (
	"io"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type Config struct {
	LogLevel  zerolog.Level
	LogFormat string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found, using environment variables")
	}

	return &Config{
		LogLevel:  getEnvLevel("LOG_LEVEL", zerolog.InfoLevel),
		LogFormat: strings.ToLower(getEnv("LOG_FORMAT", "console")),
	}
}

// Logger builds the process logger. Diagnostics go to w (stderr in the CLI)
// so that stdout only carries program output.
func (c *Config) Logger(w io.Writer) zerolog.Logger {
	if c.LogFormat != "json" {
		w = zerolog.ConsoleWriter{Out: w}
	}
	return zerolog.New(w).Level(c.LogLevel).With().Timestamp().Logger()
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvLevel(key string, fallback zerolog.Level) zerolog.Level {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	lvl, err := zerolog.ParseLevel(strings.ToLower(v))
	if err != nil {
		return fallback
	}
	return lvl
}
