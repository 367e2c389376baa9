package logger

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/rexmax1018/CryptoSuite48/internal/pkg/config"
)

// ErrNotInitialized is returned by GetLogger until InitLogger has succeeded
var ErrNotInitialized = errors.New("logger not initialized: call InitLogger first")

var (
	loggerInstance Logger
	loggerErr      error
	loggerOnce     sync.Once
)

var slogLevels = map[string]slog.Level{
	config.LogLevelDebug:    slog.LevelDebug,
	config.LogLevelInfo:     slog.LevelInfo,
	config.LogLevelWarning:  slog.LevelWarn,
	config.LogLevelError:    slog.LevelError,
	config.LogLevelCritical: slog.LevelError,
}

// InitLogger builds the process-wide logger once. Later calls return the first outcome.
func InitLogger(settings *config.LoggerSettings) error {
	loggerOnce.Do(func() {
		loggerInstance, loggerErr = NewLogger(settings)
	})
	return loggerErr
}

// GetLogger returns the process-wide logger
func GetLogger() (Logger, error) {
	if loggerInstance == nil {
		return nil, ErrNotInitialized
	}
	return loggerInstance, nil
}

// NewLogger builds a console or rotating file logger from settings, leaving the process-wide one alone
func NewLogger(settings *config.LoggerSettings) (Logger, error) {
	if settings == nil {
		return nil, errors.New("logger settings cannot be nil")
	}
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid logger settings: %w", err)
	}

	if settings.LogType == config.LogTypeFile {
		return NewFileLogger(settings.LogLevel, settings.FilePath, settings.MaxSize, settings.MaxBackups, settings.MaxAge), nil
	}
	return NewConsoleLogger(settings.LogLevel), nil
}

// Close releases the log file behind l; console loggers need nothing
func Close(l Logger) error {
	if closer, ok := l.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}

// parseLevel falls back to info for unknown names
func parseLevel(level string) slog.Level {
	if l, ok := slogLevels[level]; ok {
		return l
	}
	return slog.LevelInfo
}

func formatArgs(args ...interface{}) string {
	return fmt.Sprint(args...)
}
