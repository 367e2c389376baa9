// Package testutil holds helpers shared by unit and integration tests.
package testutil

import (
	"os"
	"testing"

	"github.com/rexmax1018/CryptoSuite48/internal/pkg/config"
	"github.com/rexmax1018/CryptoSuite48/internal/pkg/logger"
	"github.com/stretchr/testify/require"
)

// TestLogLevelEnvVar overrides the level of test loggers, e.g. TEST_LOG_LEVEL=debug
const TestLogLevelEnvVar = "TEST_LOG_LEVEL"

// SetupTestLogger returns a console logger private to the test. It stays at warning
// level unless TEST_LOG_LEVEL asks for more, and never touches the process-wide logger.
func SetupTestLogger(t *testing.T) logger.Logger {
	t.Helper()

	level := os.Getenv(TestLogLevelEnvVar)
	if level == "" {
		level = config.LogLevelWarning
	}

	log, err := logger.NewLogger(&config.LoggerSettings{
		LogLevel: level,
		LogType:  config.LogTypeConsole,
	})
	require.NoError(t, err, "invalid %s", TestLogLevelEnvVar)
	return log
}
