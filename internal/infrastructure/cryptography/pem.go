package cryptography

import (
	"encoding/pem"
	"strings"

	"github.com/rexmax1018/CryptoSuite48/internal/domain/keys"
)

// PEM block types
const (
	pemTypePrivateKey    = "PRIVATE KEY"
	pemTypePublicKey     = "PUBLIC KEY"
	pemTypeRSAPrivateKey = "RSA PRIVATE KEY"
	pemTypeRSAPublicKey  = "RSA PUBLIC KEY"
	pemTypeECPrivateKey  = "EC PRIVATE KEY"
)

func encodePEM(blockType string, der []byte) string {
	return string(pem.EncodeToMemory(&pem.Block{Type: blockType, Bytes: der}))
}

// decodePEM returns the first block of data. Key holders carry exactly one block per field.
func decodePEM(data, what string) (*pem.Block, error) {
	block, _ := pem.Decode([]byte(strings.TrimSpace(data)))
	if block == nil {
		return nil, keys.MalformedKeyf("failed to parse PEM block containing the %s", what)
	}
	return block, nil
}
