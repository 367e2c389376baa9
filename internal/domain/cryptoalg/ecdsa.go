package cryptoalg

import (
	"crypto/ecdsa"

	"github.com/rexmax1018/CryptoSuite48/internal/domain/keys"
)

// ECKeyMaterial is the outcome of parsing an elliptic-curve key holder: *ECKeyPair or *ECPublicKey.
type ECKeyMaterial interface {
	PublicKey() *ecdsa.PublicKey
	CurveName() keys.EccCurve
	ecKeyMaterial()
}

// ECKeyPair carries a private key and the curve it lives on
type ECKeyPair struct {
	Curve   keys.EccCurve
	Private *ecdsa.PrivateKey
}

func (k *ECKeyPair) PublicKey() *ecdsa.PublicKey { return &k.Private.PublicKey }
func (k *ECKeyPair) CurveName() keys.EccCurve    { return k.Curve }
func (*ECKeyPair) ecKeyMaterial()                {}

// ECPublicKey carries only a public key; it can verify
type ECPublicKey struct {
	Curve  keys.EccCurve
	Public *ecdsa.PublicKey
}

func (k *ECPublicKey) PublicKey() *ecdsa.PublicKey { return k.Public }
func (k *ECPublicKey) CurveName() keys.EccCurve    { return k.Curve }
func (*ECPublicKey) ecKeyMaterial()                {}

// ECDSAProcessor handles elliptic curve (ECDSA) cryptographic operations.
// ECDSA is used for digital signatures but NOT for encryption.
type ECDSAProcessor interface {
	// GenerateKeys generates a key pair on the named curve.
	GenerateKeys(curve keys.EccCurve) (*ecdsa.PrivateKey, *ecdsa.PublicKey, error)

	// Sign signs the SHA-256 digest of message and returns an ASN.1 DER signature.
	Sign(message []byte, curve keys.EccCurve, privateKey *ecdsa.PrivateKey) ([]byte, error)

	// Verify checks an ASN.1 DER signature. Mismatching or unparseable signatures report false.
	Verify(message, signature []byte, curve keys.EccCurve, publicKey *ecdsa.PublicKey) (bool, error)

	// EncodePrivateKeyPEM encodes the private key as a PKCS#8 "PRIVATE KEY" block.
	EncodePrivateKeyPEM(curve keys.EccCurve, privateKey *ecdsa.PrivateKey) (string, error)

	// EncodePublicKeyPEM encodes the public key as an SPKI "PUBLIC KEY" block.
	EncodePublicKeyPEM(curve keys.EccCurve, publicKey *ecdsa.PublicKey) (string, error)

	// ParseKeyMaterial parses the PEM pair of an ECC key holder and checks it lies on curve.
	ParseKeyMaterial(privatePEM, publicPEM string, curve keys.EccCurve) (ECKeyMaterial, error)
}
