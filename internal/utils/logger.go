package utils

import (
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// NewLogger returns the JSON application logger tagged with the owning service.
func NewLogger(service string) zerolog.Logger {
	level, err := zerolog.ParseLevel(strings.ToLower(GetConfig("LOG_LEVEL")))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	return zerolog.New(os.Stdout).
		Level(level).
		With().
		Timestamp().
		Str("service", service).
		Logger()
}
