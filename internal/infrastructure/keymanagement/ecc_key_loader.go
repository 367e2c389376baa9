package keymanagement

import (
	"encoding/json"
	"time"

	"github.com/rexmax1018/CryptoSuite48/internal/domain/cryptoalg"
	"github.com/rexmax1018/CryptoSuite48/internal/domain/keys"
	"github.com/rexmax1018/CryptoSuite48/internal/pkg/logger"
)

type eccKeyDocument struct {
	PublicKey  *string        `json:"PublicKey"`
	PrivateKey *string        `json:"PrivateKey"`
	Curve      *keys.EccCurve `json:"Curve"`
	CreatedAt  *time.Time     `json:"CreatedAt"`
}

// NewECCKeyLoader creates a loader of EccKeyModel documents.
// The PEM content must lie on the declared curve.
func NewECCKeyLoader(processor cryptoalg.ECDSAProcessor, logger logger.Logger) (keys.KeyLoader[*keys.EccKeyModel], error) {
	return &keyLoader[*keys.EccKeyModel]{
		algorithm: keys.AlgorithmECC,
		decode: func(data []byte) (*keys.EccKeyModel, error) {
			return decodeECCKey(data, processor)
		},
		logger: logger,
	}, nil
}

func decodeECCKey(data []byte, processor cryptoalg.ECDSAProcessor) (*keys.EccKeyModel, error) {
	var doc eccKeyDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, malformed(err)
	}
	if doc.PublicKey == nil || *doc.PublicKey == "" {
		return nil, keys.MalformedKeyf("ECC key document has no PublicKey")
	}
	if doc.Curve == nil {
		return nil, keys.MalformedKeyf("ECC key document has no Curve")
	}

	model := &keys.EccKeyModel{PublicKey: *doc.PublicKey, Curve: *doc.Curve}
	if doc.PrivateKey != nil {
		model.PrivateKey = *doc.PrivateKey
	}
	if doc.CreatedAt != nil {
		model.CreatedAt = doc.CreatedAt.UTC()
	}

	if _, err := processor.ParseKeyMaterial(model.PrivateKey, model.PublicKey, model.Curve); err != nil {
		return nil, malformed(err)
	}
	return model, nil
}
