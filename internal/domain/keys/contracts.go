package keys

import (
	"context"
	"io"
)

// KeyGenerator produces fresh key material of model type M
type KeyGenerator[M KeyModel] interface {
	// GenerateKeyOnly creates a new model without side effects
	GenerateKeyOnly() (M, error)

	// GenerateAndSaveKey creates a new model and writes it as indented JSON.
	// An empty path selects a random file name under the algorithm directory.
	GenerateAndSaveKey(path string) (*KeyGenerationResult, error)
}

// KeyLoader turns serialized key material back into model type M.
// Every entry point goes through the same decoding and validation.
type KeyLoader[M KeyModel] interface {
	LoadFromFile(path string) (M, error)
	LoadFromString(content string) (M, error)
	LoadFromBase64(encoded string) (M, error)
	LoadFromStream(r io.Reader) (M, error)
}

// CryptoService dispatches an operation to the algorithm selected by the caller.
// The key model must match the algorithm, otherwise ErrUnsupported is returned.
type CryptoService interface {
	Encrypt(data []byte, algorithm Algorithm, key KeyModel) ([]byte, error)
	Decrypt(data []byte, algorithm Algorithm, key KeyModel) ([]byte, error)
	Sign(data []byte, algorithm Algorithm, key KeyModel) ([]byte, error)
	// Verify reports false without an error for a well-formed signature that does not match
	Verify(data, signature []byte, algorithm Algorithm, key KeyModel) (bool, error)
}

// CryptoKeyService is the algorithm-selected facade over generators and loaders
type CryptoKeyService interface {
	GenerateKeyOnly(algorithm Algorithm) (KeyModel, error)
	GenerateAndSaveKey(ctx context.Context, algorithm Algorithm, path string) (*KeyGenerationResult, error)
	LoadFromFile(algorithm Algorithm, path string) (KeyModel, error)
	LoadFromString(algorithm Algorithm, content string) (KeyModel, error)
	LoadFromBase64(algorithm Algorithm, encoded string) (KeyModel, error)
	LoadFromStream(algorithm Algorithm, r io.Reader) (KeyModel, error)
	ListGenerated(ctx context.Context, query *KeyGenerationQuery) ([]*KeyGenerationResult, error)
}

// KeyGenerationRepository records key files written by generators
type KeyGenerationRepository interface {
	Create(ctx context.Context, result *KeyGenerationResult) error
	List(ctx context.Context, query *KeyGenerationQuery) ([]*KeyGenerationResult, error)
	GetByID(ctx context.Context, id string) (*KeyGenerationResult, error)
	DeleteByID(ctx context.Context, id string) error
}
