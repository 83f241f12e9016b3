package log

import (
	"context"
	"log/slog"
)

// slogLogger adapts a *slog.Logger to Logger.
type slogLogger struct {
	l *slog.Logger
}

// NewSlogLogger wraps l. A nil l uses slog.Default at call time.
func NewSlogLogger(l *slog.Logger) Logger {
	return &slogLogger{l: l}
}

// GetLogger returns a Logger backed by the process default slog logger.
func GetLogger() Logger {
	return &slogLogger{}
}

func (s *slogLogger) logger() *slog.Logger {
	if s.l == nil {
		return slog.Default()
	}
	return s.l
}

func (s *slogLogger) Debug(msg string, fields ...any) { s.logger().Debug(msg, fields...) }
func (s *slogLogger) Info(msg string, fields ...any) { s.logger().Info(msg, fields...) }
func (s *slogLogger) Warn(msg string, fields ...any) { s.logger().Warn(msg, fields...) }
func (s *slogLogger) Error(msg string, fields ...any) { s.logger().Error(msg, fields...) }

func (s *slogLogger) With(fields ...any) Logger {
	return &slogLogger{l: s.logger().With(fields...)}
}

func (s *slogLogger) Enabled(ctx context.Context, level Level) bool {
	return s.logger().Enabled(ctx, slog.Level(level))
}

// Discard returns a Logger that drops every record.
func Discard() Logger {
	return &slogLogger{l: slog.New(discardHandler{})}
}

type discardHandler struct{}

func (discardHandler) Enabled(context.Context, slog.Level) bool { return false }
func (discardHandler) Handle(context.Context, slog.Record) error { return nil }
func (d discardHandler) WithAttrs([]slog.Attr) slog.Handler { return d }
func (d discardHandler) WithGroup(string) slog.Handler { return d }
