//go:build unit
// +build unit

package keys

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSymmetricKeyModelJSON(t *testing.T) {
	model := &SymmetricKeyModel{Key: make([]byte, 16), IV: make([]byte, 16)}
	model.Key[0], model.IV[15] = 255, 7

	data, err := json.Marshal(model)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), `{"Key":[255,0,`))

	var decoded SymmetricKeyModel
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, model.Key, decoded.Key)
	assert.Equal(t, model.IV, decoded.IV)
	assert.NoError(t, decoded.Validate())

	t.Run("Base64Fields", func(t *testing.T) {
		var fromBase64 SymmetricKeyModel
		require.NoError(t, json.Unmarshal([]byte(`{"Key":"AAAAAAAAAAAAAAAAAAAAAA==","IV":"AAAAAAAAAAAAAAAAAAAAAA=="}`), &fromBase64))
		assert.Len(t, fromBase64.Key, 16)
	})

	t.Run("MissingField", func(t *testing.T) {
		var missing SymmetricKeyModel
		assert.Error(t, json.Unmarshal([]byte(`{"Key":[1,2]}`), &missing))
	})

	t.Run("Validate", func(t *testing.T) {
		assert.ErrorIs(t, (&SymmetricKeyModel{Key: make([]byte, 20), IV: make([]byte, 16)}).Validate(), ErrMalformedKey)
		assert.ErrorIs(t, (&SymmetricKeyModel{Key: make([]byte, 32), IV: make([]byte, 8)}).Validate(), ErrMalformedKey)
	})
}

func TestEccCurveJSON(t *testing.T) {
	var model EccKeyModel
	require.NoError(t, json.Unmarshal([]byte(`{"PublicKey":"p","Curve":"Secp256k1"}`), &model))
	assert.Equal(t, CurveSecp256k1, model.Curve)

	require.NoError(t, json.Unmarshal([]byte(`{"Curve":2}`), &model))
	assert.Equal(t, CurveNistP521, model.Curve)

	err := json.Unmarshal([]byte(`{"Curve":"brainpoolP256r1"}`), &model)
	assert.ErrorIs(t, err, ErrUnsupported)

	err = json.Unmarshal([]byte(`{"Curve":9}`), &model)
	assert.ErrorIs(t, err, ErrUnsupported)

	data, err := json.Marshal(&EccKeyModel{Curve: CurveNistP384})
	require.NoError(t, err)
	assert.Contains(t, string(data), `"Curve":"NistP384"`)
}

func TestParseAlgorithm(t *testing.T) {
	for _, algorithm := range Algorithms {
		parsed, err := ParseAlgorithm(string(algorithm))
		require.NoError(t, err)
		assert.Equal(t, algorithm, parsed)
	}

	_, err := ParseAlgorithm("DES")
	assert.ErrorIs(t, err, ErrUnsupported)
}

func TestUnsupportedError(t *testing.T) {
	err := NewUnsupportedError("encrypt", AlgorithmECC, "EccKeyModel")
	assert.True(t, errors.Is(err, ErrUnsupported))
	assert.Equal(t, "encrypt: unsupported algorithm or key model: ECC -> EccKeyModel", err.Error())

	var target *UnsupportedError
	require.ErrorAs(t, error(err), &target)
	assert.Equal(t, "encrypt", target.Operation)
}

func TestModelName(t *testing.T) {
	assert.Equal(t, "<nil>", ModelName(nil))
	assert.Equal(t, "RsaKeyModel", ModelName(&RsaKeyModel{}))
	assert.Equal(t, AlgorithmECC, (&EccKeyModel{}).Algorithm())
	assert.True(t, (&RsaKeyModel{PrivateKey: "x"}).HasPrivateKey())
	assert.False(t, (&EccKeyModel{}).HasPrivateKey())
}

func TestKeyGenerationResult(t *testing.T) {
	result := NewKeyGenerationResult(AlgorithmRSA, "abc.pem", "/keys/RSA/abc.pem")
	result.CreatedAt = time.Date(2024, 3, 5, 14, 7, 9, 0, time.UTC)
	assert.Equal(t, "[RSA] abc.pem @ /keys/RSA/abc.pem (UTC 2024-03-05 14:07:09)", result.String())

	assert.Error(t, result.Validate())
	result.ID = uuid.NewString()
	assert.NoError(t, result.Validate())

	result.Algorithm = "DES"
	assert.Error(t, result.Validate())
}

func TestKeyGenerationQuery(t *testing.T) {
	assert.NoError(t, (&KeyGenerationQuery{}).Validate())
	assert.NoError(t, (&KeyGenerationQuery{Algorithm: AlgorithmAES, Limit: 5, Offset: 2}).Validate())
	assert.Error(t, (&KeyGenerationQuery{Algorithm: "DES"}).Validate())
	assert.Error(t, (&KeyGenerationQuery{Limit: -1}).Validate())
}
