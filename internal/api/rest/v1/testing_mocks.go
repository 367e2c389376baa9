//go:build unit
// +build unit

package v1

import (
	"context"
	"io"

	"github.com/rexmax1018/CryptoSuite48/internal/domain/keys"

	"github.com/stretchr/testify/mock"
)

// MockCryptoService is a mock implementation of keys.CryptoService
type MockCryptoService struct {
	mock.Mock
}

func (m *MockCryptoService) Encrypt(data []byte, algorithm keys.Algorithm, key keys.KeyModel) ([]byte, error) {
	args := m.Called(data, algorithm, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockCryptoService) Decrypt(data []byte, algorithm keys.Algorithm, key keys.KeyModel) ([]byte, error) {
	args := m.Called(data, algorithm, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockCryptoService) Sign(data []byte, algorithm keys.Algorithm, key keys.KeyModel) ([]byte, error) {
	args := m.Called(data, algorithm, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockCryptoService) Verify(data, signature []byte, algorithm keys.Algorithm, key keys.KeyModel) (bool, error) {
	args := m.Called(data, signature, algorithm, key)
	return args.Bool(0), args.Error(1)
}

// MockCryptoKeyService is a mock implementation of keys.CryptoKeyService
type MockCryptoKeyService struct {
	mock.Mock
}

func (m *MockCryptoKeyService) modelResult(args mock.Arguments) (keys.KeyModel, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(keys.KeyModel), args.Error(1)
}

func (m *MockCryptoKeyService) GenerateKeyOnly(algorithm keys.Algorithm) (keys.KeyModel, error) {
	return m.modelResult(m.Called(algorithm))
}

func (m *MockCryptoKeyService) GenerateAndSaveKey(ctx context.Context, algorithm keys.Algorithm, path string) (*keys.KeyGenerationResult, error) {
	args := m.Called(ctx, algorithm, path)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*keys.KeyGenerationResult), args.Error(1)
}

func (m *MockCryptoKeyService) LoadFromFile(algorithm keys.Algorithm, path string) (keys.KeyModel, error) {
	return m.modelResult(m.Called(algorithm, path))
}

func (m *MockCryptoKeyService) LoadFromString(algorithm keys.Algorithm, content string) (keys.KeyModel, error) {
	return m.modelResult(m.Called(algorithm, content))
}

func (m *MockCryptoKeyService) LoadFromBase64(algorithm keys.Algorithm, encoded string) (keys.KeyModel, error) {
	return m.modelResult(m.Called(algorithm, encoded))
}

func (m *MockCryptoKeyService) LoadFromStream(algorithm keys.Algorithm, r io.Reader) (keys.KeyModel, error) {
	return m.modelResult(m.Called(algorithm, r))
}

func (m *MockCryptoKeyService) ListGenerated(ctx context.Context, query *keys.KeyGenerationQuery) ([]*keys.KeyGenerationResult, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*keys.KeyGenerationResult), args.Error(1)
}
