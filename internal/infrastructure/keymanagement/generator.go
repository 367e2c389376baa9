package keymanagement

import (
	"encoding/json"
	"fmt"

	"github.com/rexmax1018/CryptoSuite48/internal/domain/keys"
	"github.com/rexmax1018/CryptoSuite48/internal/infrastructure/keystore"
	"github.com/rexmax1018/CryptoSuite48/internal/pkg/logger"
)

// Key file extensions. RSA files keep the .pem extension although they hold JSON.
const (
	AESKeyFileExtension = ".json"
	RSAKeyFileExtension = ".pem"
	ECCKeyFileExtension = ".json"
)

// saveModel serializes model as indented JSON and writes it atomically.
// The result is only returned once the file is complete.
func saveModel(store *keystore.Store, algorithm keys.Algorithm, ext, path string, model keys.KeyModel, logger logger.Logger) (*keys.KeyGenerationResult, error) {
	data, err := json.MarshalIndent(model, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to serialize %s: %w", model.ModelName(), err)
	}

	fileName, fullPath := store.Resolve(algorithm, path, ext)
	if err := store.Write(fullPath, data); err != nil {
		return nil, err
	}

	result := keys.NewKeyGenerationResult(algorithm, fileName, fullPath)
	logger.Info("Generated key file ", result.String())
	return result, nil
}
