package keymanagement

import (
	"time"

	"github.com/rexmax1018/CryptoSuite48/internal/domain/cryptoalg"
	"github.com/rexmax1018/CryptoSuite48/internal/domain/keys"
	"github.com/rexmax1018/CryptoSuite48/internal/infrastructure/keystore"
	"github.com/rexmax1018/CryptoSuite48/internal/pkg/config"
	"github.com/rexmax1018/CryptoSuite48/internal/pkg/logger"
)

type eccKeyGenerator struct {
	settings  config.ECCSettings
	store     *keystore.Store
	processor cryptoalg.ECDSAProcessor
	logger    logger.Logger
}

// NewECCKeyGenerator creates a generator of key pairs on settings.ECC.Curve
func NewECCKeyGenerator(settings config.CryptoSettings, store *keystore.Store, processor cryptoalg.ECDSAProcessor, logger logger.Logger) (keys.KeyGenerator[*keys.EccKeyModel], error) {
	return &eccKeyGenerator{
		settings:  settings.ECC,
		store:     store,
		processor: processor,
		logger:    logger,
	}, nil
}

func (g *eccKeyGenerator) GenerateKeyOnly() (*keys.EccKeyModel, error) {
	curve, err := keys.ParseEccCurve(g.settings.Curve)
	if err != nil {
		return nil, err
	}

	privateKey, publicKey, err := g.processor.GenerateKeys(curve)
	if err != nil {
		return nil, err
	}
	privatePEM, err := g.processor.EncodePrivateKeyPEM(curve, privateKey)
	if err != nil {
		return nil, err
	}
	publicPEM, err := g.processor.EncodePublicKeyPEM(curve, publicKey)
	if err != nil {
		return nil, err
	}

	return &keys.EccKeyModel{
		PublicKey:  publicPEM,
		PrivateKey: privatePEM,
		Curve:      curve,
		CreatedAt:  time.Now().UTC(),
	}, nil
}

func (g *eccKeyGenerator) GenerateAndSaveKey(path string) (*keys.KeyGenerationResult, error) {
	model, err := g.GenerateKeyOnly()
	if err != nil {
		return nil, err
	}
	return saveModel(g.store, keys.AlgorithmECC, ECCKeyFileExtension, path, model, g.logger)
}
