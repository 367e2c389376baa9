package keymanagement

import (
	"fmt"
	"time"

	"github.com/rexmax1018/CryptoSuite48/internal/domain/cryptoalg"
	"github.com/rexmax1018/CryptoSuite48/internal/domain/keys"
	"github.com/rexmax1018/CryptoSuite48/internal/infrastructure/keystore"
	"github.com/rexmax1018/CryptoSuite48/internal/pkg/config"
	"github.com/rexmax1018/CryptoSuite48/internal/pkg/logger"
	"github.com/rexmax1018/CryptoSuite48/internal/pkg/validators"
)

type rsaKeyGenerator struct {
	settings  config.RSASettings
	store     *keystore.Store
	processor cryptoalg.RSAProcessor
	logger    logger.Logger
}

// NewRSAKeyGenerator creates a generator of RSA key pairs sized by settings.RSA.KeySize
func NewRSAKeyGenerator(settings config.CryptoSettings, store *keystore.Store, processor cryptoalg.RSAProcessor, logger logger.Logger) (keys.KeyGenerator[*keys.RsaKeyModel], error) {
	return &rsaKeyGenerator{
		settings:  settings.RSA,
		store:     store,
		processor: processor,
		logger:    logger,
	}, nil
}

func (g *rsaKeyGenerator) GenerateKeyOnly() (*keys.RsaKeyModel, error) {
	bits := g.settings.KeySize
	if !validators.IsValidRSAKeySize(bits) {
		return nil, fmt.Errorf("%w: RSA key size %d bits", keys.ErrUnsupported, bits)
	}

	privateKey, publicKey, err := g.processor.GenerateKeys(bits)
	if err != nil {
		return nil, err
	}
	privatePEM, err := g.processor.EncodePrivateKeyPEM(privateKey)
	if err != nil {
		return nil, err
	}
	publicPEM, err := g.processor.EncodePublicKeyPEM(publicKey)
	if err != nil {
		return nil, err
	}

	return &keys.RsaKeyModel{
		PublicKey:  publicPEM,
		PrivateKey: privatePEM,
		KeySize:    bits,
		CreatedAt:  time.Now().UTC(),
	}, nil
}

func (g *rsaKeyGenerator) GenerateAndSaveKey(path string) (*keys.KeyGenerationResult, error) {
	model, err := g.GenerateKeyOnly()
	if err != nil {
		return nil, err
	}
	return saveModel(g.store, keys.AlgorithmRSA, RSAKeyFileExtension, path, model, g.logger)
}
