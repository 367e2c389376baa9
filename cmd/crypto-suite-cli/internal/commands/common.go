package commands

import (
	"errors"
	"fmt"
	"os"

	"github.com/rexmax1018/CryptoSuite48/internal/app"
	"github.com/rexmax1018/CryptoSuite48/internal/domain/keys"
	"github.com/rexmax1018/CryptoSuite48/internal/infrastructure/cryptography"
	"github.com/rexmax1018/CryptoSuite48/internal/infrastructure/keymanagement"
	"github.com/rexmax1018/CryptoSuite48/internal/infrastructure/keystore"
	"github.com/rexmax1018/CryptoSuite48/internal/pkg/config"
	"github.com/rexmax1018/CryptoSuite48/internal/pkg/logger"

	"github.com/spf13/cobra"
)

// Suite holds the services shared by all commands. It is built once the flags are parsed.
type Suite struct {
	Settings         config.CryptoSettings
	CryptoService    keys.CryptoService
	CryptoKeyService keys.CryptoKeyService
	Logger           logger.Logger
}

func setupLogger(level string) (logger.Logger, error) {
	settings := &config.LoggerSettings{
		LogLevel: level,
		LogType:  config.LogTypeConsole,
	}

	loggerInstance, err := logger.NewLogger(settings)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return loggerInstance, nil
}

// loadSettings reads the settings file. Without an explicit file the defaults apply
// when the default file does not exist.
func loadSettings(path string) (config.CryptoSettings, error) {
	snapshot, err := config.NewSnapshot(config.DefaultCryptoSettings())
	if err != nil {
		return config.CryptoSettings{}, err
	}

	resolved := config.ResolveConfigPath(path)
	_, statErr := os.Stat(resolved)
	explicit := path != "" || os.Getenv(config.ConfigFileEnvVar) != ""
	if explicit || !errors.Is(statErr, os.ErrNotExist) {
		if err := snapshot.Load(resolved); err != nil {
			return config.CryptoSettings{}, err
		}
	}
	return snapshot.Current()
}

// NewSuite wires processors, factories and services against settings
func NewSuite(settings config.CryptoSettings, log logger.Logger) (*Suite, error) {
	store, err := keystore.NewStore(settings.KeyDirectory, log)
	if err != nil {
		return nil, err
	}

	aesProcessor, err := cryptography.NewAESProcessor(log)
	if err != nil {
		return nil, fmt.Errorf("failed to create AES processor: %w", err)
	}
	rsaProcessor, err := cryptography.NewRSAProcessor(log)
	if err != nil {
		return nil, fmt.Errorf("failed to create RSA processor: %w", err)
	}
	ecdsaProcessor, err := cryptography.NewECDSAProcessor(log)
	if err != nil {
		return nil, fmt.Errorf("failed to create ECDSA processor: %w", err)
	}

	generators, err := keymanagement.NewGeneratorFactory(settings, store, aesProcessor, rsaProcessor, ecdsaProcessor, log)
	if err != nil {
		return nil, err
	}
	loaders, err := keymanagement.NewLoaderFactory(rsaProcessor, ecdsaProcessor, log)
	if err != nil {
		return nil, err
	}

	cryptoService, err := app.NewCryptoService(aesProcessor, rsaProcessor, ecdsaProcessor, log)
	if err != nil {
		return nil, err
	}
	cryptoKeyService, err := app.NewCryptoKeyService(generators, loaders, nil, log)
	if err != nil {
		return nil, err
	}

	return &Suite{
		Settings:         settings,
		CryptoService:    cryptoService,
		CryptoKeyService: cryptoKeyService,
		Logger:           log,
	}, nil
}

// suiteHolder builds the Suite in PersistentPreRunE so --config is honored
type suiteHolder struct {
	suite *Suite
}

func (h *suiteHolder) init(cmd *cobra.Command, _ []string) error {
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return err
	}
	logLevel, err := cmd.Flags().GetString("log-level")
	if err != nil {
		return err
	}

	log, err := setupLogger(logLevel)
	if err != nil {
		return err
	}
	settings, err := loadSettings(configPath)
	if err != nil {
		return err
	}

	h.suite, err = NewSuite(settings, log)
	return err
}

func algorithmFlag(cmd *cobra.Command) (keys.Algorithm, error) {
	name, err := cmd.Flags().GetString("algorithm")
	if err != nil {
		return "", fmt.Errorf("invalid algorithm flag: %w", err)
	}
	return keys.ParseAlgorithm(name)
}
