package cryptography

import (
	"crypto/ecdsa"
	"crypto/rand"
	"crypto/sha256"
	"crypto/x509"
	"errors"
	"fmt"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	secpecdsa "github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"
	"github.com/rexmax1018/CryptoSuite48/internal/domain/cryptoalg"
	"github.com/rexmax1018/CryptoSuite48/internal/domain/keys"
	"github.com/rexmax1018/CryptoSuite48/internal/pkg/logger"
)

// ecdsaProcessor struct that implements the ECDSAProcessor interface
type ecdsaProcessor struct {
	logger logger.Logger
}

// NewECDSAProcessor creates and returns a new instance of ecdsaProcessor
func NewECDSAProcessor(logger logger.Logger) (cryptoalg.ECDSAProcessor, error) {
	return &ecdsaProcessor{
		logger: logger,
	}, nil
}

// GenerateKeys generates a key pair on the named curve. Secp256k1 keys come from the decred implementation.
func (e *ecdsaProcessor) GenerateKeys(curve keys.EccCurve) (*ecdsa.PrivateKey, *ecdsa.PublicKey, error) {
	domain, err := ResolveCurve(curve)
	if err != nil {
		return nil, nil, err
	}

	var privateKey *ecdsa.PrivateKey
	if domain.Name == keys.CurveSecp256k1 {
		key, err := secp256k1.GeneratePrivateKey()
		if err != nil {
			return nil, nil, fmt.Errorf("failed to generate elliptic curve keys: %w", err)
		}
		privateKey = key.ToECDSA()
	} else {
		privateKey, err = ecdsa.GenerateKey(domain.Curve, rand.Reader)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to generate elliptic curve keys: %w", err)
		}
	}

	e.logger.Info("Generated EC key pair on ", curve)
	return privateKey, &privateKey.PublicKey, nil
}

func checkCurve(expected keys.EccCurve, key *ecdsa.PublicKey) error {
	actual, err := curveNameOf(key.Curve)
	if err != nil {
		return err
	}
	if actual != expected {
		return keys.MalformedKeyf("key lies on %s, declared curve is %s", actual, expected)
	}
	return nil
}

// Sign hashes message with SHA-256 and returns an ASN.1 DER encoded signature.
func (e *ecdsaProcessor) Sign(message []byte, curve keys.EccCurve, privateKey *ecdsa.PrivateKey) ([]byte, error) {
	if privateKey == nil {
		return nil, errors.New("private key cannot be nil")
	}
	if privateKey.D == nil || privateKey.D.Sign() == 0 {
		return nil, errors.New("invalid private key: D cannot be zero")
	}
	if err := checkCurve(curve, &privateKey.PublicKey); err != nil {
		return nil, err
	}

	hash := sha256.Sum256(message)

	var signature []byte
	if curve == keys.CurveSecp256k1 {
		key, err := toSecp256k1PrivateKey(privateKey)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", keys.ErrMalformedKey, err)
		}
		signature = secpecdsa.Sign(key, hash[:]).Serialize()
	} else {
		var err error
		signature, err = ecdsa.SignASN1(rand.Reader, privateKey, hash[:])
		if err != nil {
			return nil, fmt.Errorf("failed to sign message: %w", err)
		}
	}

	e.logger.Info("ECDSA signing succeeded")
	return signature, nil
}

// Verify reports false for a signature that does not match or cannot be parsed.
func (e *ecdsaProcessor) Verify(message, signature []byte, curve keys.EccCurve, publicKey *ecdsa.PublicKey) (bool, error) {
	if publicKey == nil {
		return false, errors.New("public key cannot be nil")
	}
	if err := checkCurve(curve, publicKey); err != nil {
		return false, err
	}

	hash := sha256.Sum256(message)

	var valid bool
	if curve == keys.CurveSecp256k1 {
		key, err := toSecp256k1PublicKey(publicKey)
		if err != nil {
			return false, fmt.Errorf("%w: %v", keys.ErrMalformedKey, err)
		}
		sig, err := secpecdsa.ParseDERSignature(signature)
		if err == nil {
			valid = sig.Verify(hash[:], key)
		}
	} else {
		valid = ecdsa.VerifyASN1(publicKey, hash[:], signature)
	}

	e.logger.Info("ECDSA verification finished, valid: ", valid)
	return valid, nil
}

func (e *ecdsaProcessor) EncodePrivateKeyPEM(curve keys.EccCurve, privateKey *ecdsa.PrivateKey) (string, error) {
	if privateKey == nil {
		return "", errors.New("private key cannot be nil")
	}
	if err := checkCurve(curve, &privateKey.PublicKey); err != nil {
		return "", err
	}

	var (
		der []byte
		err error
	)
	if curve == keys.CurveSecp256k1 {
		der, err = marshalSecp256k1PKCS8(privateKey)
	} else {
		der, err = x509.MarshalPKCS8PrivateKey(privateKey)
	}
	if err != nil {
		return "", fmt.Errorf("failed to marshal private key: %w", err)
	}
	return encodePEM(pemTypePrivateKey, der), nil
}

func (e *ecdsaProcessor) EncodePublicKeyPEM(curve keys.EccCurve, publicKey *ecdsa.PublicKey) (string, error) {
	if publicKey == nil {
		return "", errors.New("public key cannot be nil")
	}
	if err := checkCurve(curve, publicKey); err != nil {
		return "", err
	}

	var (
		der []byte
		err error
	)
	if curve == keys.CurveSecp256k1 {
		der, err = marshalSecp256k1PKIX(publicKey)
	} else {
		der, err = x509.MarshalPKIXPublicKey(publicKey)
	}
	if err != nil {
		return "", fmt.Errorf("failed to marshal public key: %w", err)
	}
	return encodePEM(pemTypePublicKey, der), nil
}

// ParseKeyMaterial accepts PKCS#8 or SEC 1 private keys and SPKI public keys on any supported curve,
// then requires the key to lie on curve.
func (e *ecdsaProcessor) ParseKeyMaterial(privatePEM, publicPEM string, curve keys.EccCurve) (cryptoalg.ECKeyMaterial, error) {
	if _, err := ResolveCurve(curve); err != nil {
		return nil, err
	}

	if privatePEM == "" {
		if publicPEM == "" {
			return nil, keys.MalformedKeyf("ECC key holder carries neither a private nor a public key")
		}
		publicKey, err := parseECPublicKey(publicPEM)
		if err != nil {
			return nil, err
		}
		if err := checkCurve(curve, publicKey); err != nil {
			return nil, err
		}
		return &cryptoalg.ECPublicKey{Curve: curve, Public: publicKey}, nil
	}

	privateKey, err := parseECPrivateKey(privatePEM)
	if err != nil {
		return nil, err
	}
	if err := checkCurve(curve, &privateKey.PublicKey); err != nil {
		return nil, err
	}

	if publicPEM != "" {
		publicKey, err := parseECPublicKey(publicPEM)
		if err != nil {
			return nil, err
		}
		if privateKey.X.Cmp(publicKey.X) != 0 || privateKey.Y.Cmp(publicKey.Y) != 0 {
			return nil, keys.MalformedKeyf("EC public key does not belong to the private key")
		}
	}
	return &cryptoalg.ECKeyPair{Curve: curve, Private: privateKey}, nil
}

func parseECPrivateKey(data string) (*ecdsa.PrivateKey, error) {
	block, err := decodePEM(data, "private key")
	if err != nil {
		return nil, err
	}

	if block.Type == pemTypeECPrivateKey {
		if privateKey, err := x509.ParseECPrivateKey(block.Bytes); err == nil {
			return privateKey, nil
		}
		privateKey, err := parseSecp256k1ECPrivateKey(block.Bytes)
		if err != nil {
			return nil, fmt.Errorf("%w: unable to parse SEC 1 private key: %v", keys.ErrMalformedKey, err)
		}
		return privateKey, nil
	}

	parsed, err := x509.ParsePKCS8PrivateKey(block.Bytes)
	if err != nil {
		privateKey, k1Err := parseSecp256k1PKCS8(block.Bytes)
		if k1Err != nil {
			return nil, fmt.Errorf("%w: unable to parse PKCS#8 private key: %v", keys.ErrMalformedKey, err)
		}
		return privateKey, nil
	}
	privateKey, ok := parsed.(*ecdsa.PrivateKey)
	if !ok {
		return nil, keys.MalformedKeyf("private key is not of type ECDSA")
	}
	return privateKey, nil
}

func parseECPublicKey(data string) (*ecdsa.PublicKey, error) {
	block, err := decodePEM(data, "public key")
	if err != nil {
		return nil, err
	}

	parsed, err := x509.ParsePKIXPublicKey(block.Bytes)
	if err != nil {
		publicKey, k1Err := parseSecp256k1PKIX(block.Bytes)
		if k1Err != nil {
			return nil, fmt.Errorf("%w: unable to parse public key: %v", keys.ErrMalformedKey, err)
		}
		return publicKey, nil
	}
	publicKey, ok := parsed.(*ecdsa.PublicKey)
	if !ok {
		return nil, keys.MalformedKeyf("public key is not of type ECDSA")
	}
	return publicKey, nil
}
