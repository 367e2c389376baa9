package keymanagement

import (
	"fmt"

	"github.com/rexmax1018/CryptoSuite48/internal/domain/cryptoalg"
	"github.com/rexmax1018/CryptoSuite48/internal/domain/keys"
	"github.com/rexmax1018/CryptoSuite48/internal/infrastructure/keystore"
	"github.com/rexmax1018/CryptoSuite48/internal/pkg/config"
	"github.com/rexmax1018/CryptoSuite48/internal/pkg/logger"
	"github.com/rexmax1018/CryptoSuite48/internal/pkg/validators"
)

type aesKeyGenerator struct {
	settings  config.AESSettings
	store     *keystore.Store
	processor cryptoalg.AESProcessor
	logger    logger.Logger
}

// NewAESKeyGenerator creates a generator of AES keys sized by settings.AES.KeySize
func NewAESKeyGenerator(settings config.CryptoSettings, store *keystore.Store, processor cryptoalg.AESProcessor, logger logger.Logger) (keys.KeyGenerator[*keys.SymmetricKeyModel], error) {
	return &aesKeyGenerator{
		settings:  settings.AES,
		store:     store,
		processor: processor,
		logger:    logger,
	}, nil
}

func (g *aesKeyGenerator) GenerateKeyOnly() (*keys.SymmetricKeyModel, error) {
	bits := g.settings.KeySize
	if !validators.IsValidAESKeySize(bits) {
		return nil, fmt.Errorf("%w: AES key size %d bits", keys.ErrUnsupported, bits)
	}

	key, err := g.processor.GenerateKey(bits / 8)
	if err != nil {
		return nil, err
	}
	iv, err := g.processor.GenerateIV()
	if err != nil {
		return nil, err
	}
	return &keys.SymmetricKeyModel{Key: key, IV: iv}, nil
}

func (g *aesKeyGenerator) GenerateAndSaveKey(path string) (*keys.KeyGenerationResult, error) {
	model, err := g.GenerateKeyOnly()
	if err != nil {
		return nil, err
	}
	return saveModel(g.store, keys.AlgorithmAES, AESKeyFileExtension, path, model, g.logger)
}
