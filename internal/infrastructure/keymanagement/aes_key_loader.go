package keymanagement

import (
	"encoding/json"

	"github.com/rexmax1018/CryptoSuite48/internal/domain/keys"
	"github.com/rexmax1018/CryptoSuite48/internal/pkg/logger"
)

// NewAESKeyLoader creates a loader of SymmetricKeyModel documents
func NewAESKeyLoader(logger logger.Logger) (keys.KeyLoader[*keys.SymmetricKeyModel], error) {
	return &keyLoader[*keys.SymmetricKeyModel]{
		algorithm: keys.AlgorithmAES,
		decode:    decodeSymmetricKey,
		logger:    logger,
	}, nil
}

func decodeSymmetricKey(data []byte) (*keys.SymmetricKeyModel, error) {
	var model keys.SymmetricKeyModel
	if err := json.Unmarshal(data, &model); err != nil {
		return nil, malformed(err)
	}
	if err := model.Validate(); err != nil {
		return nil, malformed(err)
	}
	return &model, nil
}
