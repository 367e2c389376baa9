package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Log levels accepted in the Logger section
const (
	LogLevelDebug    = "debug"
	LogLevelInfo     = "info"
	LogLevelWarning  = "warning"
	LogLevelError    = "error"
	LogLevelCritical = "critical"
)

// Log sinks accepted in the Logger section
const (
	LogTypeConsole = "console"
	LogTypeFile    = "file"
)

// Rotation defaults applied by InitializeRestConfig when a file logger leaves them out
const (
	DefaultLogMaxSizeMB  = 10
	DefaultLogMaxBackups = 3
	DefaultLogMaxAgeDays = 28
)

// LoggerSettings selects the log sink and level of the CLI and the REST server.
// The rotation fields only apply to the file sink.
type LoggerSettings struct {
	LogLevel   string `mapstructure:"log_level" validate:"required,oneof=debug info warning error critical"`
	LogType    string `mapstructure:"log_type" validate:"required,oneof=console file"`
	FilePath   string `mapstructure:"file_path" validate:"required_if=LogType file"`
	MaxSize    int    `mapstructure:"max_size" validate:"required_if=LogType file,gte=0,lte=100"`
	MaxBackups int    `mapstructure:"max_backups" validate:"required_if=LogType file,gte=0,lte=10"`
	MaxAge     int    `mapstructure:"max_age" validate:"required_if=LogType file,gte=0,lte=365"`
}

// Validate checks level and sink, and the rotation limits of a file sink
// (1-100 MB per file, 1-10 backups, 1-365 days).
func (s *LoggerSettings) Validate() error {
	if err := validator.New().Struct(s); err != nil {
		return fmt.Errorf("validation failed for LoggerSettings: %w", err)
	}
	return nil
}
