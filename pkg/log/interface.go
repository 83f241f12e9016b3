// Package log provides the structured logging used by the lambertw command
// line tool and the accuracy audits.
//
// The core evaluators never log. Logging happens around them: the CLI, batch
// sweeps and warnings raised through pkg/errors.
//
// Example usage:
//
//	logger := log.GetLogger().With(log.TierKey, log.TierAccurate)
//	logger.Info("sweep finished",
//	    log.SamplesKey, 1000000,
//	    log.MaxRelErrorKey, 3.1e-16,
//	)
package log

import (
	"context"
)

// Logger defines a structured logging interface compatible with log/slog.
// Fields are alternating key/value pairs.
type Logger interface {
	Debug(msg string, fields ...any)
	Info(msg string, fields ...any)
	Warn(msg string, fields ...any)
	Error(msg string, fields ...any)

	// With returns a Logger that adds fields to every record.
	With(fields ...any) Logger

	Enabled(ctx context.Context, level Level) bool
}

// Level mirrors the slog level values so the two convert directly.
type Level int

const (
	LevelDebug Level = -4
	LevelInfo  Level = 0
	LevelWarn  Level = 4
	LevelError Level = 8
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// LoggerProvider hands out named loggers.
type LoggerProvider interface {
	GetLogger() Logger
	GetLoggerWithName(name string) Logger
	SetLevel(level Level)
}
