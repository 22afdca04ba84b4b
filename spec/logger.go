package spec

import (
	"context"
	"log/slog"
)

// Logger is the interface cddspec uses for structured logging.
//
// The interface is minimal yet compatible with popular logging libraries
// including log/slog, zap, and zerolog. It uses variadic key-value pairs for
// structured attributes, following the same convention as log/slog:
//
//	logger.Debug("resolved reference", "ref", "#/components/schemas/Pet")
//
// Use [NewSlogAdapter] to wrap a standard library slog.Logger. Packages that
// accept a Logger default to a no-op implementation; nothing logs unless a
// caller opts in.
type Logger interface {
	// Debug logs at debug level. Use for detailed diagnostic information.
	Debug(msg string, attrs ...any)

	// Info logs at info level. Use for general operational information.
	Info(msg string, attrs ...any)

	// Warn logs at warn level. Use for potentially harmful situations.
	Warn(msg string, attrs ...any)

	// Error logs at error level. Use for error conditions.
	Error(msg string, attrs ...any)

	// With returns a new Logger with the given attributes prepended to every
	// log emitted through it.
	With(attrs ...any) Logger
}

// NopLogger returns a Logger that discards everything.
func NopLogger() Logger {
	return nopLogger{}
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...any) {}
func (nopLogger) Info(string, ...any)  {}
func (nopLogger) Warn(string, ...any)  {}
func (nopLogger) Error(string, ...any) {}
func (nopLogger) With(...any) Logger   { return nopLogger{} }

// NewSlogAdapter wraps a *slog.Logger as a Logger. A nil argument wraps
// slog.Default().
func NewSlogAdapter(logger *slog.Logger) Logger {
	if logger == nil {
		logger = slog.Default()
	}
	return &slogAdapter{logger: logger}
}

type slogAdapter struct {
	logger *slog.Logger
}

func (a *slogAdapter) Debug(msg string, attrs ...any) {
	a.logger.Log(context.Background(), slog.LevelDebug, msg, attrs...)
}

func (a *slogAdapter) Info(msg string, attrs ...any) {
	a.logger.Log(context.Background(), slog.LevelInfo, msg, attrs...)
}

func (a *slogAdapter) Warn(msg string, attrs ...any) {
	a.logger.Log(context.Background(), slog.LevelWarn, msg, attrs...)
}

func (a *slogAdapter) Error(msg string, attrs ...any) {
	a.logger.Log(context.Background(), slog.LevelError, msg, attrs...)
}

func (a *slogAdapter) With(attrs ...any) Logger {
	return &slogAdapter{logger: a.logger.With(attrs...)}
}
