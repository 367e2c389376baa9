package keymanagement

import (
	"fmt"

	"github.com/rexmax1018/CryptoSuite48/internal/domain/cryptoalg"
	"github.com/rexmax1018/CryptoSuite48/internal/domain/keys"
	"github.com/rexmax1018/CryptoSuite48/internal/infrastructure/keystore"
	"github.com/rexmax1018/CryptoSuite48/internal/pkg/config"
	"github.com/rexmax1018/CryptoSuite48/internal/pkg/logger"
)

// GeneratorFactory hands out the key generator of an algorithm
type GeneratorFactory struct {
	aes keys.KeyGenerator[*keys.SymmetricKeyModel]
	rsa keys.KeyGenerator[*keys.RsaKeyModel]
	ecc keys.KeyGenerator[*keys.EccKeyModel]
}

// NewGeneratorFactory wires one generator per algorithm against the same settings and key store
func NewGeneratorFactory(settings config.CryptoSettings, store *keystore.Store, aesProcessor cryptoalg.AESProcessor, rsaProcessor cryptoalg.RSAProcessor, ecdsaProcessor cryptoalg.ECDSAProcessor, logger logger.Logger) (*GeneratorFactory, error) {
	if store == nil {
		return nil, fmt.Errorf("key store is required")
	}

	aesGenerator, err := NewAESKeyGenerator(settings, store, aesProcessor, logger)
	if err != nil {
		return nil, err
	}
	rsaGenerator, err := NewRSAKeyGenerator(settings, store, rsaProcessor, logger)
	if err != nil {
		return nil, err
	}
	eccGenerator, err := NewECCKeyGenerator(settings, store, ecdsaProcessor, logger)
	if err != nil {
		return nil, err
	}

	return &GeneratorFactory{aes: aesGenerator, rsa: rsaGenerator, ecc: eccGenerator}, nil
}

func (f *GeneratorFactory) lookup(algorithm keys.Algorithm) any {
	switch algorithm {
	case keys.AlgorithmAES:
		return f.aes
	case keys.AlgorithmRSA:
		return f.rsa
	case keys.AlgorithmECC:
		return f.ecc
	}
	return nil
}

// NewGenerator returns the generator of algorithm producing M.
// Any other pairing of algorithm and model type is an *keys.UnsupportedError.
func NewGenerator[M keys.KeyModel](f *GeneratorFactory, algorithm keys.Algorithm) (keys.KeyGenerator[M], error) {
	if generator, ok := f.lookup(algorithm).(keys.KeyGenerator[M]); ok {
		return generator, nil
	}
	return nil, keys.NewUnsupportedError("create key generator", algorithm, modelTypeName[M]())
}

// LoaderFactory hands out the key loader of an algorithm
type LoaderFactory struct {
	aes keys.KeyLoader[*keys.SymmetricKeyModel]
	rsa keys.KeyLoader[*keys.RsaKeyModel]
	ecc keys.KeyLoader[*keys.EccKeyModel]
}

// NewLoaderFactory wires one loader per algorithm
func NewLoaderFactory(rsaProcessor cryptoalg.RSAProcessor, ecdsaProcessor cryptoalg.ECDSAProcessor, logger logger.Logger) (*LoaderFactory, error) {
	aesLoader, err := NewAESKeyLoader(logger)
	if err != nil {
		return nil, err
	}
	rsaLoader, err := NewRSAKeyLoader(rsaProcessor, logger)
	if err != nil {
		return nil, err
	}
	eccLoader, err := NewECCKeyLoader(ecdsaProcessor, logger)
	if err != nil {
		return nil, err
	}

	return &LoaderFactory{aes: aesLoader, rsa: rsaLoader, ecc: eccLoader}, nil
}

func (f *LoaderFactory) lookup(algorithm keys.Algorithm) any {
	switch algorithm {
	case keys.AlgorithmAES:
		return f.aes
	case keys.AlgorithmRSA:
		return f.rsa
	case keys.AlgorithmECC:
		return f.ecc
	}
	return nil
}

// NewLoader returns the loader of algorithm producing M.
// Any other pairing of algorithm and model type is an *keys.UnsupportedError.
func NewLoader[M keys.KeyModel](f *LoaderFactory, algorithm keys.Algorithm) (keys.KeyLoader[M], error) {
	if loader, ok := f.lookup(algorithm).(keys.KeyLoader[M]); ok {
		return loader, nil
	}
	return nil, keys.NewUnsupportedError("create key loader", algorithm, modelTypeName[M]())
}

// modelTypeName names M the way error messages show it, e.g. RsaKeyModel
func modelTypeName[M keys.KeyModel]() string {
	var zero M
	if named, ok := any(zero).(keys.KeyModel); ok && named != nil {
		return named.ModelName()
	}
	return "KeyModel"
}
