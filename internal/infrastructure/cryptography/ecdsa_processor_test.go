//go:build unit
// +build unit

package cryptography

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/x509"
	"encoding/pem"
	"math/big"
	"testing"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/rexmax1018/CryptoSuite48/internal/domain/cryptoalg"
	"github.com/rexmax1018/CryptoSuite48/internal/domain/keys"
	"github.com/rexmax1018/CryptoSuite48/internal/pkg/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupECDSAProcessor(t *testing.T) cryptoalg.ECDSAProcessor {
	t.Helper()
	logger := testutil.SetupTestLogger(t)
	processor, err := NewECDSAProcessor(logger)
	require.NoError(t, err)
	return processor
}

func TestECDSAProcessor(t *testing.T) {
	processor := setupECDSAProcessor(t)

	for _, curve := range keys.EccCurves {
		t.Run(string(curve), func(t *testing.T) {
			priv, pub, err := processor.GenerateKeys(curve)
			require.NoError(t, err)

			domain, err := ResolveCurve(curve)
			require.NoError(t, err)
			assert.Equal(t, domain.Params().BitSize, pub.Curve.Params().BitSize)
			assert.True(t, pub.Curve.IsOnCurve(pub.X, pub.Y))

			msg := []byte("Hello ECC!")
			sig, err := processor.Sign(msg, curve, priv)
			require.NoError(t, err)

			valid, err := processor.Verify(msg, sig, curve, pub)
			require.NoError(t, err)
			assert.True(t, valid)

			valid, err = processor.Verify([]byte("Hello ECC?"), sig, curve, pub)
			require.NoError(t, err)
			assert.False(t, valid)

			privatePEM, err := processor.EncodePrivateKeyPEM(curve, priv)
			require.NoError(t, err)
			publicPEM, err := processor.EncodePublicKeyPEM(curve, pub)
			require.NoError(t, err)

			material, err := processor.ParseKeyMaterial(privatePEM, publicPEM, curve)
			require.NoError(t, err)
			pair, ok := material.(*cryptoalg.ECKeyPair)
			require.True(t, ok)
			assert.Equal(t, curve, pair.CurveName())
			assert.Equal(t, 0, priv.D.Cmp(pair.Private.D))

			material, err = processor.ParseKeyMaterial("", publicPEM, curve)
			require.NoError(t, err)
			public, ok := material.(*cryptoalg.ECPublicKey)
			require.True(t, ok)
			assert.Equal(t, 0, pub.X.Cmp(public.Public.X))
			assert.Equal(t, 0, pub.Y.Cmp(public.Public.Y))

			// a signature from the reparsed key verifies against the original public key
			sig, err = processor.Sign(msg, curve, pair.Private)
			require.NoError(t, err)
			valid, err = processor.Verify(msg, sig, curve, pub)
			require.NoError(t, err)
			assert.True(t, valid)
		})
	}

	t.Run("UnknownCurve", func(t *testing.T) {
		_, _, err := processor.GenerateKeys(keys.EccCurve("Curve25519"))
		assert.ErrorIs(t, err, keys.ErrUnsupported)
	})

	t.Run("CurveMismatch", func(t *testing.T) {
		priv, pub, err := processor.GenerateKeys(keys.CurveNistP256)
		require.NoError(t, err)

		_, err = processor.Sign([]byte("msg"), keys.CurveNistP384, priv)
		assert.ErrorIs(t, err, keys.ErrMalformedKey)

		privatePEM, err := processor.EncodePrivateKeyPEM(keys.CurveNistP256, priv)
		require.NoError(t, err)
		publicPEM, err := processor.EncodePublicKeyPEM(keys.CurveNistP256, pub)
		require.NoError(t, err)

		_, err = processor.ParseKeyMaterial(privatePEM, publicPEM, keys.CurveSecp256k1)
		assert.ErrorIs(t, err, keys.ErrMalformedKey)
	})

	t.Run("GarbageSignature", func(t *testing.T) {
		for _, curve := range []keys.EccCurve{keys.CurveNistP256, keys.CurveSecp256k1} {
			_, pub, err := processor.GenerateKeys(curve)
			require.NoError(t, err)

			valid, err := processor.Verify([]byte("msg"), []byte{0x30, 0x01, 0x00}, curve, pub)
			assert.NoError(t, err)
			assert.False(t, valid)
		}
	})

	t.Run("SignWithInvalidPrivateKey", func(t *testing.T) {
		invalidPriv := &ecdsa.PrivateKey{
			D: new(big.Int).SetInt64(0),
			PublicKey: ecdsa.PublicKey{
				Curve: elliptic.P256(),
			},
		}
		_, err := processor.Sign([]byte("Invalid signing"), keys.CurveNistP256, invalidPriv)
		assert.Error(t, err)
	})

	t.Run("VerifyWithNilPublicKey", func(t *testing.T) {
		_, err := processor.Verify([]byte("msg"), []byte("sig"), keys.CurveNistP256, nil)
		assert.Error(t, err)
	})

	t.Run("SEC1PrivateKeyTolerated", func(t *testing.T) {
		priv, _, err := processor.GenerateKeys(keys.CurveNistP384)
		require.NoError(t, err)
		der, err := x509.MarshalECPrivateKey(priv)
		require.NoError(t, err)

		sec1 := string(pem.EncodeToMemory(&pem.Block{Type: "EC PRIVATE KEY", Bytes: der}))
		material, err := processor.ParseKeyMaterial(sec1, "", keys.CurveNistP384)
		require.NoError(t, err)
		assert.IsType(t, &cryptoalg.ECKeyPair{}, material)
	})

	t.Run("MalformedPEM", func(t *testing.T) {
		_, err := processor.ParseKeyMaterial("", "", keys.CurveNistP256)
		assert.ErrorIs(t, err, keys.ErrMalformedKey)

		_, err = processor.ParseKeyMaterial("", "-----BEGIN PUBLIC KEY-----\nAAAA\n-----END PUBLIC KEY-----\n", keys.CurveNistP256)
		assert.ErrorIs(t, err, keys.ErrMalformedKey)
	})
}

func TestSecp256k1Encoding(t *testing.T) {
	key, err := secp256k1.GeneratePrivateKey()
	require.NoError(t, err)
	priv := key.ToECDSA()

	t.Run("PKCS8", func(t *testing.T) {
		der, err := marshalSecp256k1PKCS8(priv)
		require.NoError(t, err)

		_, err = x509.ParsePKCS8PrivateKey(der)
		assert.Error(t, err)

		parsed, err := parseSecp256k1PKCS8(der)
		require.NoError(t, err)
		assert.Equal(t, 0, priv.D.Cmp(parsed.D))
		assert.Equal(t, 0, priv.X.Cmp(parsed.X))
	})

	t.Run("PKIX", func(t *testing.T) {
		der, err := marshalSecp256k1PKIX(&priv.PublicKey)
		require.NoError(t, err)

		parsed, err := parseSecp256k1PKIX(der)
		require.NoError(t, err)
		assert.Equal(t, 0, priv.X.Cmp(parsed.X))
		assert.Equal(t, 0, priv.Y.Cmp(parsed.Y))
	})

	t.Run("RejectsNISTStructures", func(t *testing.T) {
		nist, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
		require.NoError(t, err)
		der, err := x509.MarshalPKCS8PrivateKey(nist)
		require.NoError(t, err)

		_, err = parseSecp256k1PKCS8(der)
		assert.Error(t, err)
	})
}

func TestCurveDomains(t *testing.T) {
	for _, curve := range keys.EccCurves {
		domain, err := ResolveCurve(curve)
		require.NoError(t, err)
		assert.Equal(t, 1, domain.Cofactor)
		assert.NotEmpty(t, domain.OID)

		name, err := curveNameOf(domain.Curve)
		require.NoError(t, err)
		assert.Equal(t, curve, name)
	}

	p256, err := ResolveCurve(keys.CurveNistP256)
	require.NoError(t, err)
	assert.Equal(t, 32, p256.ByteSize())

	p521, err := ResolveCurve(keys.CurveNistP521)
	require.NoError(t, err)
	assert.Equal(t, 66, p521.ByteSize())
}
