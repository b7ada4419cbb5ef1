// Package oaslog provides the minimal structured-logging interface used
// across the parser, resolver, and writer. It is deliberately small so
// that adapters for popular logging libraries (zap, zerolog, slog) can be
// written in a handful of lines.
package oaslog

import "log/slog"

// Logger is the interface oas32 uses for structured diagnostic logging.
// Implementations should treat attrs as alternating key-value pairs, the
// same convention as log/slog.
type Logger interface {
	// Debug logs detailed diagnostic information (e.g. a ref resolution
	// attempt, a dialect fallback).
	Debug(msg string, attrs ...any)
	// Info logs general operational information.
	Info(msg string, attrs ...any)
	// Warn logs a recoverable but notable condition.
	Warn(msg string, attrs ...any)
	// Error logs an error condition that did not abort the operation.
	Error(msg string, attrs ...any)
	// With returns a new Logger with attrs prepended to every subsequent call.
	With(attrs ...any) Logger
}

// NopLogger discards all output. It is the default when no Logger is configured.
type NopLogger struct{}

func (NopLogger) Debug(string, ...any)  {}
func (NopLogger) Info(string, ...any)   {}
func (NopLogger) Warn(string, ...any)   {}
func (NopLogger) Error(string, ...any)  {}
func (n NopLogger) With(...any) Logger  { return n }

var _ Logger = NopLogger{}

// SlogAdapter wraps a *slog.Logger to implement Logger.
type SlogAdapter struct {
	logger *slog.Logger
}

// NewSlogAdapter wraps logger, or slog.Default() if logger is nil.
func NewSlogAdapter(logger *slog.Logger) *SlogAdapter {
	if logger == nil {
		logger = slog.Default()
	}
	return &SlogAdapter{logger: logger}
}

func (s *SlogAdapter) Debug(msg string, attrs ...any) { s.logger.Debug(msg, attrs...) }
func (s *SlogAdapter) Info(msg string, attrs ...any)  { s.logger.Info(msg, attrs...) }
func (s *SlogAdapter) Warn(msg string, attrs ...any)  { s.logger.Warn(msg, attrs...) }
func (s *SlogAdapter) Error(msg string, attrs ...any) { s.logger.Error(msg, attrs...) }

func (s *SlogAdapter) With(attrs ...any) Logger {
	return &SlogAdapter{logger: s.logger.With(attrs...)}
}

var _ Logger = (*SlogAdapter)(nil)
