package keymanagement

import (
	"encoding/json"
	"time"

	"github.com/rexmax1018/CryptoSuite48/internal/domain/cryptoalg"
	"github.com/rexmax1018/CryptoSuite48/internal/domain/keys"
	"github.com/rexmax1018/CryptoSuite48/internal/pkg/logger"
)

type rsaKeyDocument struct {
	PublicKey  *string    `json:"PublicKey"`
	PrivateKey *string    `json:"PrivateKey"`
	KeySize    *int       `json:"KeySize"`
	CreatedAt  *time.Time `json:"CreatedAt"`
}

// NewRSAKeyLoader creates a loader of RsaKeyModel documents.
// The PEM content is parsed with processor before the model is returned.
func NewRSAKeyLoader(processor cryptoalg.RSAProcessor, logger logger.Logger) (keys.KeyLoader[*keys.RsaKeyModel], error) {
	return &keyLoader[*keys.RsaKeyModel]{
		algorithm: keys.AlgorithmRSA,
		decode: func(data []byte) (*keys.RsaKeyModel, error) {
			return decodeRSAKey(data, processor)
		},
		logger: logger,
	}, nil
}

func decodeRSAKey(data []byte, processor cryptoalg.RSAProcessor) (*keys.RsaKeyModel, error) {
	var doc rsaKeyDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, malformed(err)
	}
	if doc.PublicKey == nil || *doc.PublicKey == "" {
		return nil, keys.MalformedKeyf("RSA key document has no PublicKey")
	}

	model := &keys.RsaKeyModel{PublicKey: *doc.PublicKey}
	if doc.PrivateKey != nil {
		model.PrivateKey = *doc.PrivateKey
	}
	if doc.KeySize != nil {
		model.KeySize = *doc.KeySize
	}
	if doc.CreatedAt != nil {
		model.CreatedAt = doc.CreatedAt.UTC()
	}

	material, err := processor.ParseKeyMaterial(model.PrivateKey, model.PublicKey)
	if err != nil {
		return nil, malformed(err)
	}
	if bits := material.PublicKey().N.BitLen(); model.KeySize > 0 && bits != model.KeySize {
		return nil, keys.MalformedKeyf("RSA key document declares %d bits but the key has %d", model.KeySize, bits)
	}
	return model, nil
}
