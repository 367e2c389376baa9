package testutil

import (
	"testing"

	"github.com/rexmax1018/CryptoSuite48/internal/pkg/config"
	"github.com/stretchr/testify/require"
)

// NewTestCryptoSettings returns default settings rooted in a per-test key directory.
// Options run before validation.
func NewTestCryptoSettings(t *testing.T, opts ...func(*config.CryptoSettings)) config.CryptoSettings {
	t.Helper()

	settings := config.DefaultCryptoSettings()
	settings.KeyDirectory = t.TempDir()
	for _, opt := range opts {
		opt(&settings)
	}
	require.NoError(t, settings.Validate())
	return settings
}
