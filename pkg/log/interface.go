// Package log provides a structured logging interface for XGBoost binding
// operations.
//
// This package defines a minimal, slog-compatible logging interface that
// allows for flexible implementation switching while providing structured
// logging for model loading, prediction and conversion operations. The
// interface is designed to integrate with Go's standard log/slog package and
// popular logging libraries like zerolog, logrus, and zap.
//
// The binding itself never logs; logging is the caller's concern. This
// package exists so that applications embedding the binding (and the bundled
// examples and benchmark harness) log handle-lifecycle and prediction events
// with consistent attribute keys.
//
// Example usage:
//
//	logger := log.GetLogger().With(
//	    log.ModelPathKey, "model.json",
//	)
//	logger.Info("prediction completed",
//	    log.OperationKey, "predict",
//	    log.RowsKey, 1000,
//	    log.FeaturesKey, 5,
//	)
package log

import (
	"context"
)

// Logger defines a structured logging interface compatible with Go's log/slog.
//
// The interface provides the core logging methods with structured field
// support and is implementation-agnostic, enabling switching between logging
// backends while maintaining a consistent API. Contextual loggers with
// pre-populated fields are created through With.
type Logger interface {
	// Debug logs a debug-level message with optional structured fields.
	//
	// Example:
	//   logger.Debug("dense conversion",
	//       log.RowsKey, 100,
	//       log.FeaturesKey, 8,
	//   )
	Debug(msg string, fields ...any)

	// Info logs an info-level message with optional structured fields.
	//
	// Example:
	//   logger.Info("model loaded",
	//       log.ModelPathKey, "model.json",
	//       log.FeaturesKey, 8,
	//   )
	Info(msg string, fields ...any)

	// Warn logs a warning-level message with optional structured fields.
	Warn(msg string, fields ...any)

	// Error logs an error-level message with optional structured fields.
	// If an error value is provided as a field, stack trace information
	// may be automatically included by the handler.
	//
	// Example:
	//   logger.Error("prediction failed",
	//       err,
	//       log.OperationKey, "predict",
	//   )
	Error(msg string, fields ...any)

	// With returns a new Logger with the given fields pre-populated.
	//
	// Example:
	//   modelLogger := logger.With(log.ModelPathKey, path)
	//   modelLogger.Info("loaded")  // Automatically includes the path
	With(fields ...any) Logger

	// Enabled reports whether the logger emits log records at the given
	// level. Use it to avoid expensive attribute construction for records
	// that would be discarded.
	Enabled(ctx context.Context, level Level) bool
}

// Level represents a logging level, compatible with slog.Level.
type Level int

// Standard logging levels, values are compatible with slog.Level.
const (
	LevelDebug Level = -4 // Detailed diagnostic information
	LevelInfo  Level = 0  // General operational information
	LevelWarn  Level = 4  // Warning conditions
	LevelError Level = 8  // Error conditions
)

// String returns the string representation of the log level.
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

// LoggerProvider defines an interface for creating and configuring loggers.
// It allows for dependency injection and testing with different logger
// implementations.
type LoggerProvider interface {
	// GetLogger returns the default logger instance.
	GetLogger() Logger

	// GetLoggerWithName returns a logger with a specific name/component identifier.
	GetLoggerWithName(name string) Logger

	// SetLevel sets the minimum log level for all loggers created by this provider.
	SetLevel(level Level)
}
