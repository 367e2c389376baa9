package cryptoalg

import "crypto/rsa"

// RSAKeyMaterial is the outcome of parsing an RSA key holder: *RSAKeyPair or *RSAPublicKey.
type RSAKeyMaterial interface {
	PublicKey() *rsa.PublicKey
	rsaKeyMaterial()
}

// RSAKeyPair carries a private key and the public key derived from it
type RSAKeyPair struct {
	Private *rsa.PrivateKey
}

func (k *RSAKeyPair) PublicKey() *rsa.PublicKey { return &k.Private.PublicKey }
func (*RSAKeyPair) rsaKeyMaterial()             {}

// RSAPublicKey carries only a public key; it can encrypt and verify
type RSAPublicKey struct {
	Public *rsa.PublicKey
}

func (k *RSAPublicKey) PublicKey() *rsa.PublicKey { return k.Public }
func (*RSAPublicKey) rsaKeyMaterial()             {}

// RSAProcessor handles RSA asymmetric cryptographic operations.
// RSA supports both encryption/decryption AND digital signatures.
type RSAProcessor interface {
	// GenerateKeys generates an RSA key pair with the specified bit size.
	GenerateKeys(keySize int) (*rsa.PrivateKey, *rsa.PublicKey, error)

	// Encrypt encrypts one PKCS#1 v1.5 block. Plaintext longer than the modulus size minus 11 bytes is rejected.
	Encrypt(plainText []byte, publicKey *rsa.PublicKey) ([]byte, error)

	// Decrypt decrypts one PKCS#1 v1.5 block.
	Decrypt(ciphertext []byte, privateKey *rsa.PrivateKey) ([]byte, error)

	// Sign signs the SHA-256 digest of data with PKCS#1 v1.5.
	Sign(data []byte, privateKey *rsa.PrivateKey) ([]byte, error)

	// Verify reports whether signature matches data. A mismatch is not an error.
	Verify(data []byte, signature []byte, publicKey *rsa.PublicKey) (bool, error)

	// EncodePrivateKeyPEM encodes the private key as a PKCS#8 "PRIVATE KEY" block.
	EncodePrivateKeyPEM(privateKey *rsa.PrivateKey) (string, error)

	// EncodePublicKeyPEM encodes the public key as an SPKI "PUBLIC KEY" block.
	EncodePublicKeyPEM(publicKey *rsa.PublicKey) (string, error)

	// ParseKeyMaterial parses the PEM pair of an RSA key holder.
	// An empty privatePEM yields *RSAPublicKey, otherwise *RSAKeyPair checked against publicPEM.
	ParseKeyMaterial(privatePEM, publicPEM string) (RSAKeyMaterial, error)
}
