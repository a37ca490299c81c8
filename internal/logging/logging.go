// Package logging configures slog-based structured logging for labelctl.
// Human-readable output goes to stderr so it never interleaves with command
// output on stdout; per-service file loggers rotate via lumberjack.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"
)

var defaultLogger *slog.Logger

// Init initializes the default logger writing text output to stderr.
// Debug enables the debug level.
func Init(debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	defaultLogger = slog.New(handler)
	slog.SetDefault(defaultLogger)
}

// Default returns the globally configured logger. Returns nil if Init has
// not been called.
func Default() *slog.Logger {
	return defaultLogger
}

// ForService creates a logger with the 'service' attribute added, based on
// the default logger.
func ForService(serviceName string) *slog.Logger {
	if defaultLogger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil)).With("service", serviceName)
	}
	return defaultLogger.With("service", serviceName)
}

// AddFileOutput redirects the default logger to a rotated JSON log file.
// Used when log.enabled is set; terminal output stays clean while a
// structured trace of the session is kept.
func AddFileOutput(filePath string, debug bool) error {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}

	logger, _, err := NewFileLogger(filePath, "labelctl", level)
	if err != nil {
		return err
	}

	defaultLogger = logger
	slog.SetDefault(defaultLogger)
	return nil
}

// NewFileLogger creates a slog.Logger writing JSON logs to filePath with
// lumberjack rotation. It returns the logger, a close function for the
// underlying writer, and an error if the log directory cannot be created.
func NewFileLogger(filePath, serviceName string, level slog.Leveler) (*slog.Logger, func() error, error) {
	logDir := filepath.Dir(filePath)
	if logDir != "." {
		if err := os.MkdirAll(logDir, 0o755); err != nil {
			return nil, nil, fmt.Errorf("failed to create log directory %s: %w", logDir, err)
		}
	}

	logWriter := &lumberjack.Logger{
		Filename:   filePath,
		MaxSize:    10, // megabytes
		MaxBackups: 3,
		MaxAge:     28, // days
	}

	fileHandler := slog.NewJSONHandler(logWriter, &slog.HandlerOptions{
		Level: level,
	})

	logger := slog.New(fileHandler).With("service", serviceName)

	return logger, logWriter.Close, nil
}
