package app

import (
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/rexmax1018/CryptoSuite48/internal/domain/keys"
	"github.com/rexmax1018/CryptoSuite48/internal/infrastructure/keymanagement"
	"github.com/rexmax1018/CryptoSuite48/internal/pkg/logger"
)

// GenerateKeyOnly creates a model of type M for algorithm without writing it
func GenerateKeyOnly[M keys.KeyModel](generators *keymanagement.GeneratorFactory, algorithm keys.Algorithm) (M, error) {
	var zero M
	generator, err := keymanagement.NewGenerator[M](generators, algorithm)
	if err != nil {
		return zero, err
	}
	return generator.GenerateKeyOnly()
}

// GenerateAndSaveKey creates a model of type M for algorithm and writes it to path
func GenerateAndSaveKey[M keys.KeyModel](generators *keymanagement.GeneratorFactory, algorithm keys.Algorithm, path string) (*keys.KeyGenerationResult, error) {
	generator, err := keymanagement.NewGenerator[M](generators, algorithm)
	if err != nil {
		return nil, err
	}
	return generator.GenerateAndSaveKey(path)
}

// LoadFromFile reads a model of type M from a key file
func LoadFromFile[M keys.KeyModel](loaders *keymanagement.LoaderFactory, algorithm keys.Algorithm, path string) (M, error) {
	var zero M
	loader, err := keymanagement.NewLoader[M](loaders, algorithm)
	if err != nil {
		return zero, err
	}
	return loader.LoadFromFile(path)
}

// LoadFromString decodes a model of type M from its JSON text
func LoadFromString[M keys.KeyModel](loaders *keymanagement.LoaderFactory, algorithm keys.Algorithm, content string) (M, error) {
	var zero M
	loader, err := keymanagement.NewLoader[M](loaders, algorithm)
	if err != nil {
		return zero, err
	}
	return loader.LoadFromString(content)
}

// LoadFromBase64 decodes a model of type M from Base64 encoded JSON
func LoadFromBase64[M keys.KeyModel](loaders *keymanagement.LoaderFactory, algorithm keys.Algorithm, encoded string) (M, error) {
	var zero M
	loader, err := keymanagement.NewLoader[M](loaders, algorithm)
	if err != nil {
		return zero, err
	}
	return loader.LoadFromBase64(encoded)
}

// LoadFromStream decodes a model of type M read from r
func LoadFromStream[M keys.KeyModel](loaders *keymanagement.LoaderFactory, algorithm keys.Algorithm, r io.Reader) (M, error) {
	var zero M
	loader, err := keymanagement.NewLoader[M](loaders, algorithm)
	if err != nil {
		return zero, err
	}
	return loader.LoadFromStream(r)
}

// cryptoKeyService implements keys.CryptoKeyService on top of the generator and loader factories
type cryptoKeyService struct {
	generators *keymanagement.GeneratorFactory
	loaders    *keymanagement.LoaderFactory
	repository keys.KeyGenerationRepository
	logger     logger.Logger
}

// NewCryptoKeyService creates a new cryptoKeyService instance.
// repository may be nil, in which case generated keys are not recorded.
func NewCryptoKeyService(
	generators *keymanagement.GeneratorFactory,
	loaders *keymanagement.LoaderFactory,
	repository keys.KeyGenerationRepository,
	logger logger.Logger,
) (keys.CryptoKeyService, error) {
	if generators == nil || loaders == nil {
		return nil, fmt.Errorf("generator and loader factories are required")
	}
	return &cryptoKeyService{
		generators: generators,
		loaders:    loaders,
		repository: repository,
		logger:     logger,
	}, nil
}

func (s *cryptoKeyService) GenerateKeyOnly(algorithm keys.Algorithm) (keys.KeyModel, error) {
	switch algorithm {
	case keys.AlgorithmAES:
		return asKeyModel(GenerateKeyOnly[*keys.SymmetricKeyModel](s.generators, algorithm))
	case keys.AlgorithmRSA:
		return asKeyModel(GenerateKeyOnly[*keys.RsaKeyModel](s.generators, algorithm))
	case keys.AlgorithmECC:
		return asKeyModel(GenerateKeyOnly[*keys.EccKeyModel](s.generators, algorithm))
	}
	return nil, keys.NewUnsupportedError("generate key", algorithm, "KeyModel")
}

// GenerateAndSaveKey writes a new key file and records it when a repository is configured.
// A recording failure is returned even though the key file was written.
func (s *cryptoKeyService) GenerateAndSaveKey(ctx context.Context, algorithm keys.Algorithm, path string) (*keys.KeyGenerationResult, error) {
	var result *keys.KeyGenerationResult
	var err error

	switch algorithm {
	case keys.AlgorithmAES:
		result, err = GenerateAndSaveKey[*keys.SymmetricKeyModel](s.generators, algorithm, path)
	case keys.AlgorithmRSA:
		result, err = GenerateAndSaveKey[*keys.RsaKeyModel](s.generators, algorithm, path)
	case keys.AlgorithmECC:
		result, err = GenerateAndSaveKey[*keys.EccKeyModel](s.generators, algorithm, path)
	default:
		return nil, keys.NewUnsupportedError("generate key", algorithm, "KeyModel")
	}
	if err != nil {
		return nil, err
	}

	result.ID = uuid.New().String()
	if s.repository == nil {
		return result, nil
	}

	if err := s.repository.Create(ctx, result); err != nil {
		s.logger.Error("Failed to record generated key ", result.KeyFilePath, ": ", err)
		return result, fmt.Errorf("key file %s was written but could not be recorded: %w", result.KeyFilePath, err)
	}
	return result, nil
}

func (s *cryptoKeyService) LoadFromFile(algorithm keys.Algorithm, path string) (keys.KeyModel, error) {
	switch algorithm {
	case keys.AlgorithmAES:
		return asKeyModel(LoadFromFile[*keys.SymmetricKeyModel](s.loaders, algorithm, path))
	case keys.AlgorithmRSA:
		return asKeyModel(LoadFromFile[*keys.RsaKeyModel](s.loaders, algorithm, path))
	case keys.AlgorithmECC:
		return asKeyModel(LoadFromFile[*keys.EccKeyModel](s.loaders, algorithm, path))
	}
	return nil, keys.NewUnsupportedError("load key", algorithm, "KeyModel")
}

func (s *cryptoKeyService) LoadFromString(algorithm keys.Algorithm, content string) (keys.KeyModel, error) {
	switch algorithm {
	case keys.AlgorithmAES:
		return asKeyModel(LoadFromString[*keys.SymmetricKeyModel](s.loaders, algorithm, content))
	case keys.AlgorithmRSA:
		return asKeyModel(LoadFromString[*keys.RsaKeyModel](s.loaders, algorithm, content))
	case keys.AlgorithmECC:
		return asKeyModel(LoadFromString[*keys.EccKeyModel](s.loaders, algorithm, content))
	}
	return nil, keys.NewUnsupportedError("load key", algorithm, "KeyModel")
}

func (s *cryptoKeyService) LoadFromBase64(algorithm keys.Algorithm, encoded string) (keys.KeyModel, error) {
	switch algorithm {
	case keys.AlgorithmAES:
		return asKeyModel(LoadFromBase64[*keys.SymmetricKeyModel](s.loaders, algorithm, encoded))
	case keys.AlgorithmRSA:
		return asKeyModel(LoadFromBase64[*keys.RsaKeyModel](s.loaders, algorithm, encoded))
	case keys.AlgorithmECC:
		return asKeyModel(LoadFromBase64[*keys.EccKeyModel](s.loaders, algorithm, encoded))
	}
	return nil, keys.NewUnsupportedError("load key", algorithm, "KeyModel")
}

func (s *cryptoKeyService) LoadFromStream(algorithm keys.Algorithm, r io.Reader) (keys.KeyModel, error) {
	switch algorithm {
	case keys.AlgorithmAES:
		return asKeyModel(LoadFromStream[*keys.SymmetricKeyModel](s.loaders, algorithm, r))
	case keys.AlgorithmRSA:
		return asKeyModel(LoadFromStream[*keys.RsaKeyModel](s.loaders, algorithm, r))
	case keys.AlgorithmECC:
		return asKeyModel(LoadFromStream[*keys.EccKeyModel](s.loaders, algorithm, r))
	}
	return nil, keys.NewUnsupportedError("load key", algorithm, "KeyModel")
}

// ListGenerated returns the recorded generation results. Without a repository the list is empty.
func (s *cryptoKeyService) ListGenerated(ctx context.Context, query *keys.KeyGenerationQuery) ([]*keys.KeyGenerationResult, error) {
	if s.repository == nil {
		return []*keys.KeyGenerationResult{}, nil
	}
	if query == nil {
		query = &keys.KeyGenerationQuery{}
	}
	return s.repository.List(ctx, query)
}

// asKeyModel keeps a failed typed result from turning into a non-nil interface
func asKeyModel[M keys.KeyModel](model M, err error) (keys.KeyModel, error) {
	if err != nil {
		return nil, err
	}
	return model, nil
}
