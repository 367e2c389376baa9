//go:build unit || integration
// +build unit integration

package app

import (
	"testing"

	"github.com/rexmax1018/CryptoSuite48/internal/domain/keys"
	"github.com/rexmax1018/CryptoSuite48/internal/infrastructure/cryptography"
	"github.com/rexmax1018/CryptoSuite48/internal/infrastructure/keymanagement"
	"github.com/rexmax1018/CryptoSuite48/internal/infrastructure/keystore"
	"github.com/rexmax1018/CryptoSuite48/internal/pkg/config"
	"github.com/rexmax1018/CryptoSuite48/internal/pkg/testutil"

	"github.com/stretchr/testify/require"
)

// TestServices holds all application services and dependencies for testing
type TestServices struct {
	CryptoService    keys.CryptoService
	CryptoKeyService keys.CryptoKeyService

	Generators *keymanagement.GeneratorFactory
	Loaders    *keymanagement.LoaderFactory
	Store      *keystore.Store
	Settings   config.CryptoSettings
}

// SetupTestServices wires the services against a per-test key directory.
// RSA keys default to 1024 bits to keep the suite fast; repository may be nil.
func SetupTestServices(t *testing.T, repository keys.KeyGenerationRepository, opts ...func(*config.CryptoSettings)) *TestServices {
	t.Helper()

	logger := testutil.SetupTestLogger(t)
	opts = append([]func(*config.CryptoSettings){func(s *config.CryptoSettings) { s.RSA.KeySize = 1024 }}, opts...)
	settings := testutil.NewTestCryptoSettings(t, opts...)

	store, err := keystore.NewStore(settings.KeyDirectory, logger)
	require.NoError(t, err, "Failed to create key store")

	aesProcessor, err := cryptography.NewAESProcessor(logger)
	require.NoError(t, err, "Failed to create AES processor")

	rsaProcessor, err := cryptography.NewRSAProcessor(logger)
	require.NoError(t, err, "Failed to create RSA processor")

	ecdsaProcessor, err := cryptography.NewECDSAProcessor(logger)
	require.NoError(t, err, "Failed to create ECDSA processor")

	generators, err := keymanagement.NewGeneratorFactory(settings, store, aesProcessor, rsaProcessor, ecdsaProcessor, logger)
	require.NoError(t, err, "Failed to create generator factory")

	loaders, err := keymanagement.NewLoaderFactory(rsaProcessor, ecdsaProcessor, logger)
	require.NoError(t, err, "Failed to create loader factory")

	cryptoService, err := NewCryptoService(aesProcessor, rsaProcessor, ecdsaProcessor, logger)
	require.NoError(t, err, "Failed to create CryptoService")

	cryptoKeyService, err := NewCryptoKeyService(generators, loaders, repository, logger)
	require.NoError(t, err, "Failed to create CryptoKeyService")

	return &TestServices{
		CryptoService:    cryptoService,
		CryptoKeyService: cryptoKeyService,
		Generators:       generators,
		Loaders:          loaders,
		Store:            store,
		Settings:         settings,
	}
}
