// Package logging configures structured logging for the khata binaries.
//
// Usage:
//
//	logging.Setup("text")  // colored tint handler, level from LOG_LEVEL
//	logging.Setup("json")  // JSON handler for machine-read logs
//
// Environment variables:
//
//	LOG_LEVEL: debug, info, warn, error (default: info)
package logging

import (
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
)

// Setup configures the default slog logger with the given format
// ("json" or "text") at the level specified by LOG_LEVEL.
func Setup(format string) {
	SetupWithLevel(format, levelFromEnv())
}

// SetupWithLevel configures the default slog logger at an explicit level.
func SetupWithLevel(format string, level slog.Level) {
	var handler slog.Handler
	if strings.EqualFold(format, "json") {
		handler = slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	} else {
		handler = tint.NewHandler(os.Stderr, &tint.Options{
			Level:      level,
			TimeFormat: time.Kitchen,
			AddSource:  true,
		})
	}
	slog.SetDefault(slog.New(handler))
}

func levelFromEnv() slog.Level {
	switch strings.ToLower(os.Getenv("LOG_LEVEL")) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
