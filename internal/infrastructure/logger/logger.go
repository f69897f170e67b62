package logger

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// New builds the service logger from LOG_LEVEL and LOG_FORMAT.
//
// LOG_FORMAT=console switches to the human-readable writer; anything
// else emits JSON lines. Unknown levels fall back to info.
func New() zerolog.Logger {
	var level zerolog.Level
	switch os.Getenv("LOG_LEVEL") {
	case "debug":
		level = zerolog.DebugLevel
	case "info":
		level = zerolog.InfoLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	default:
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	if os.Getenv("LOG_FORMAT") == "console" {
		return zerolog.New(zerolog.ConsoleWriter{
			Out:        os.Stdout,
			TimeFormat: time.RFC3339,
		}).With().Timestamp().Logger()
	}
	return zerolog.New(os.Stdout).With().Timestamp().Logger()
}
