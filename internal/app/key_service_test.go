//go:build unit
// +build unit

package app

import (
	"context"
	"encoding/base64"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/rexmax1018/CryptoSuite48/internal/domain/keys"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockKeyGenerationRepository struct {
	mock.Mock
}

func (m *mockKeyGenerationRepository) Create(ctx context.Context, result *keys.KeyGenerationResult) error {
	args := m.Called(ctx, result)
	return args.Error(0)
}

func (m *mockKeyGenerationRepository) List(ctx context.Context, query *keys.KeyGenerationQuery) ([]*keys.KeyGenerationResult, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*keys.KeyGenerationResult), args.Error(1)
}

func (m *mockKeyGenerationRepository) GetByID(ctx context.Context, id string) (*keys.KeyGenerationResult, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*keys.KeyGenerationResult), args.Error(1)
}

func (m *mockKeyGenerationRepository) DeleteByID(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestGenericHelpers(t *testing.T) {
	services := SetupTestServices(t, nil)

	t.Run("MatchingModel", func(t *testing.T) {
		result, err := GenerateAndSaveKey[*keys.EccKeyModel](services.Generators, keys.AlgorithmECC, "")
		require.NoError(t, err)

		model, err := LoadFromFile[*keys.EccKeyModel](services.Loaders, keys.AlgorithmECC, result.KeyFilePath)
		require.NoError(t, err)
		assert.Equal(t, keys.CurveNistP256, model.Curve)

		content, err := os.ReadFile(result.KeyFilePath)
		require.NoError(t, err)

		fromString, err := LoadFromString[*keys.EccKeyModel](services.Loaders, keys.AlgorithmECC, string(content))
		require.NoError(t, err)
		assert.Equal(t, model, fromString)

		fromBase64, err := LoadFromBase64[*keys.EccKeyModel](services.Loaders, keys.AlgorithmECC, base64.StdEncoding.EncodeToString(content))
		require.NoError(t, err)
		assert.Equal(t, model, fromBase64)

		fromStream, err := LoadFromStream[*keys.EccKeyModel](services.Loaders, keys.AlgorithmECC, strings.NewReader(string(content)))
		require.NoError(t, err)
		assert.Equal(t, model, fromStream)
	})

	t.Run("MismatchedModel", func(t *testing.T) {
		_, err := GenerateKeyOnly[*keys.RsaKeyModel](services.Generators, keys.AlgorithmAES)
		assert.ErrorIs(t, err, keys.ErrUnsupported)

		_, err = GenerateAndSaveKey[*keys.SymmetricKeyModel](services.Generators, keys.AlgorithmECC, "")
		assert.ErrorIs(t, err, keys.ErrUnsupported)

		_, err = LoadFromFile[*keys.EccKeyModel](services.Loaders, keys.AlgorithmRSA, "unused.json")
		assert.ErrorIs(t, err, keys.ErrUnsupported)

		_, err = LoadFromString[*keys.SymmetricKeyModel](services.Loaders, keys.AlgorithmECC, "{}")
		assert.ErrorIs(t, err, keys.ErrUnsupported)

		_, err = LoadFromBase64[*keys.RsaKeyModel](services.Loaders, keys.AlgorithmAES, "e30=")
		assert.ErrorIs(t, err, keys.ErrUnsupported)

		_, err = LoadFromStream[*keys.RsaKeyModel](services.Loaders, keys.AlgorithmECC, strings.NewReader("{}"))
		assert.ErrorIs(t, err, keys.ErrUnsupported)
	})
}

func TestCryptoKeyService_WithoutRepository(t *testing.T) {
	services := SetupTestServices(t, nil)
	svc := services.CryptoKeyService
	ctx := context.Background()

	for _, algorithm := range keys.Algorithms {
		t.Run(string(algorithm), func(t *testing.T) {
			model, err := svc.GenerateKeyOnly(algorithm)
			require.NoError(t, err)
			assert.Equal(t, algorithm, model.Algorithm())

			result, err := svc.GenerateAndSaveKey(ctx, algorithm, "")
			require.NoError(t, err)
			_, err = uuid.Parse(result.ID)
			assert.NoError(t, err)
			assert.Equal(t, filepath.Join(services.Store.Root(), algorithm.Directory(), result.KeyFileName), result.KeyFilePath)

			loaded, err := svc.LoadFromFile(algorithm, result.KeyFilePath)
			require.NoError(t, err)
			assert.Equal(t, algorithm, loaded.Algorithm())

			content, err := os.ReadFile(result.KeyFilePath)
			require.NoError(t, err)

			_, err = svc.LoadFromString(algorithm, string(content))
			assert.NoError(t, err)
			_, err = svc.LoadFromBase64(algorithm, base64.StdEncoding.EncodeToString(content))
			assert.NoError(t, err)
			_, err = svc.LoadFromStream(algorithm, strings.NewReader(string(content)))
			assert.NoError(t, err)
		})
	}

	t.Run("UnknownAlgorithm", func(t *testing.T) {
		_, err := svc.GenerateKeyOnly("DES")
		assert.ErrorIs(t, err, keys.ErrUnsupported)
		_, err = svc.GenerateAndSaveKey(ctx, "DES", "")
		assert.ErrorIs(t, err, keys.ErrUnsupported)
		_, err = svc.LoadFromFile("DES", "x")
		assert.ErrorIs(t, err, keys.ErrUnsupported)
		_, err = svc.LoadFromString("DES", "{}")
		assert.ErrorIs(t, err, keys.ErrUnsupported)
		_, err = svc.LoadFromBase64("DES", "e30=")
		assert.ErrorIs(t, err, keys.ErrUnsupported)
		_, err = svc.LoadFromStream("DES", strings.NewReader("{}"))
		assert.ErrorIs(t, err, keys.ErrUnsupported)
	})

	t.Run("FailedLoadReturnsNilModel", func(t *testing.T) {
		model, err := svc.LoadFromString(keys.AlgorithmAES, "not json")
		assert.ErrorIs(t, err, keys.ErrMalformedKey)
		assert.Nil(t, model)
	})

	t.Run("ListWithoutRepository", func(t *testing.T) {
		results, err := svc.ListGenerated(ctx, nil)
		require.NoError(t, err)
		assert.Empty(t, results)
	})
}

func TestCryptoKeyService_WithRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("RecordsResult", func(t *testing.T) {
		repo := new(mockKeyGenerationRepository)
		repo.On("Create", ctx, mock.AnythingOfType("*keys.KeyGenerationResult")).Return(nil).Once()
		services := SetupTestServices(t, repo)

		result, err := services.CryptoKeyService.GenerateAndSaveKey(ctx, keys.AlgorithmAES, "recorded.json")
		require.NoError(t, err)
		assert.Equal(t, "recorded.json", result.KeyFileName)

		repo.AssertExpectations(t)
		recorded := repo.Calls[0].Arguments.Get(1).(*keys.KeyGenerationResult)
		assert.Equal(t, result.ID, recorded.ID)
	})

	t.Run("RecordingFailureIsReported", func(t *testing.T) {
		repo := new(mockKeyGenerationRepository)
		repo.On("Create", ctx, mock.Anything).Return(errors.New("database is locked"))
		services := SetupTestServices(t, repo)

		result, err := services.CryptoKeyService.GenerateAndSaveKey(ctx, keys.AlgorithmECC, "")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "was written but could not be recorded")
		require.NotNil(t, result)
		assert.FileExists(t, result.KeyFilePath)
	})

	t.Run("GenerationFailureIsNotRecorded", func(t *testing.T) {
		repo := new(mockKeyGenerationRepository)
		services := SetupTestServices(t, repo)

		_, err := services.CryptoKeyService.GenerateAndSaveKey(ctx, "DES", "")
		assert.ErrorIs(t, err, keys.ErrUnsupported)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("ListDelegates", func(t *testing.T) {
		repo := new(mockKeyGenerationRepository)
		query := &keys.KeyGenerationQuery{Algorithm: keys.AlgorithmRSA}
		expected := []*keys.KeyGenerationResult{keys.NewKeyGenerationResult(keys.AlgorithmRSA, "a.pem", "/k/RSA/a.pem")}
		repo.On("List", ctx, query).Return(expected, nil)
		services := SetupTestServices(t, repo)

		results, err := services.CryptoKeyService.ListGenerated(ctx, query)
		require.NoError(t, err)
		assert.Equal(t, expected, results)
	})
}
