package cryptography

import (
	"crypto"
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha256"
	"crypto/x509"
	"errors"
	"fmt"

	"github.com/rexmax1018/CryptoSuite48/internal/domain/cryptoalg"
	"github.com/rexmax1018/CryptoSuite48/internal/domain/keys"
	"github.com/rexmax1018/CryptoSuite48/internal/pkg/logger"
)

// rsaProcessor struct that implements the RSAProcessor interface
type rsaProcessor struct {
	logger logger.Logger
}

// NewRSAProcessor creates and returns a new instance of rsaProcessor
func NewRSAProcessor(logger logger.Logger) (cryptoalg.RSAProcessor, error) {
	return &rsaProcessor{
		logger: logger,
	}, nil
}

// GenerateKeys generates an RSA key pair with the specified bit size.
func (r *rsaProcessor) GenerateKeys(keySize int) (*rsa.PrivateKey, *rsa.PublicKey, error) {
	privateKey, err := rsa.GenerateKey(rand.Reader, keySize)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to generate RSA keys: %w", err)
	}
	r.logger.Info("Generated RSA key pair of ", keySize, " bits")
	return privateKey, &privateKey.PublicKey, nil
}

// Encrypt encrypts a single PKCS#1 v1.5 block; there is no chunking.
func (r *rsaProcessor) Encrypt(plainText []byte, publicKey *rsa.PublicKey) ([]byte, error) {
	if publicKey == nil {
		return nil, errors.New("public key cannot be nil")
	}

	encrypted, err := rsa.EncryptPKCS1v15(rand.Reader, publicKey, plainText)
	if err != nil {
		return nil, fmt.Errorf("failed to encrypt data: %w", err)
	}

	r.logger.Info("RSA encryption succeeded")
	return encrypted, nil
}

func (r *rsaProcessor) Decrypt(ciphertext []byte, privateKey *rsa.PrivateKey) ([]byte, error) {
	if privateKey == nil {
		return nil, errors.New("private key cannot be nil")
	}

	decrypted, err := rsa.DecryptPKCS1v15(rand.Reader, privateKey, ciphertext)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to decrypt data: %w", keys.ErrMalformedEncoding, err)
	}

	r.logger.Info("RSA decryption succeeded")
	return decrypted, nil
}

func (r *rsaProcessor) Sign(data []byte, privateKey *rsa.PrivateKey) ([]byte, error) {
	if privateKey == nil {
		return nil, errors.New("private key cannot be nil")
	}

	hashed := sha256.Sum256(data)
	signature, err := rsa.SignPKCS1v15(rand.Reader, privateKey, crypto.SHA256, hashed[:])
	if err != nil {
		return nil, fmt.Errorf("failed to sign data: %w", err)
	}

	r.logger.Info("RSA signing succeeded")
	return signature, nil
}

func (r *rsaProcessor) Verify(data []byte, signature []byte, publicKey *rsa.PublicKey) (bool, error) {
	if publicKey == nil {
		return false, errors.New("public key cannot be nil")
	}

	hashed := sha256.Sum256(data)
	if err := rsa.VerifyPKCS1v15(publicKey, crypto.SHA256, hashed[:], signature); err != nil {
		r.logger.Info("RSA signature rejected")
		return false, nil
	}

	r.logger.Info("RSA signature verified successfully")
	return true, nil
}

func (r *rsaProcessor) EncodePrivateKeyPEM(privateKey *rsa.PrivateKey) (string, error) {
	der, err := x509.MarshalPKCS8PrivateKey(privateKey)
	if err != nil {
		return "", fmt.Errorf("failed to marshal private key: %w", err)
	}
	return encodePEM(pemTypePrivateKey, der), nil
}

func (r *rsaProcessor) EncodePublicKeyPEM(publicKey *rsa.PublicKey) (string, error) {
	der, err := x509.MarshalPKIXPublicKey(publicKey)
	if err != nil {
		return "", fmt.Errorf("failed to marshal public key: %w", err)
	}
	return encodePEM(pemTypePublicKey, der), nil
}

// ParseKeyMaterial accepts PKCS#8 or PKCS#1 private keys and SPKI or PKCS#1 public keys.
func (r *rsaProcessor) ParseKeyMaterial(privatePEM, publicPEM string) (cryptoalg.RSAKeyMaterial, error) {
	if privatePEM == "" {
		if publicPEM == "" {
			return nil, keys.MalformedKeyf("RSA key holder carries neither a private nor a public key")
		}
		publicKey, err := parseRSAPublicKey(publicPEM)
		if err != nil {
			return nil, err
		}
		return &cryptoalg.RSAPublicKey{Public: publicKey}, nil
	}

	privateKey, err := parseRSAPrivateKey(privatePEM)
	if err != nil {
		return nil, err
	}

	if publicPEM != "" {
		publicKey, err := parseRSAPublicKey(publicPEM)
		if err != nil {
			return nil, err
		}
		if !privateKey.PublicKey.Equal(publicKey) {
			return nil, keys.MalformedKeyf("RSA public key does not belong to the private key")
		}
	}
	return &cryptoalg.RSAKeyPair{Private: privateKey}, nil
}

func parseRSAPrivateKey(data string) (*rsa.PrivateKey, error) {
	block, err := decodePEM(data, "private key")
	if err != nil {
		return nil, err
	}

	if block.Type == pemTypeRSAPrivateKey {
		privateKey, err := x509.ParsePKCS1PrivateKey(block.Bytes)
		if err != nil {
			return nil, fmt.Errorf("%w: unable to parse PKCS#1 private key: %v", keys.ErrMalformedKey, err)
		}
		return privateKey, nil
	}

	parsed, err := x509.ParsePKCS8PrivateKey(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("%w: unable to parse PKCS#8 private key: %v", keys.ErrMalformedKey, err)
	}
	privateKey, ok := parsed.(*rsa.PrivateKey)
	if !ok {
		return nil, keys.MalformedKeyf("private key is not of type RSA")
	}
	return privateKey, nil
}

func parseRSAPublicKey(data string) (*rsa.PublicKey, error) {
	block, err := decodePEM(data, "public key")
	if err != nil {
		return nil, err
	}

	if block.Type == pemTypeRSAPublicKey {
		publicKey, err := x509.ParsePKCS1PublicKey(block.Bytes)
		if err != nil {
			return nil, fmt.Errorf("%w: unable to parse PKCS#1 public key: %v", keys.ErrMalformedKey, err)
		}
		return publicKey, nil
	}

	parsed, err := x509.ParsePKIXPublicKey(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("%w: unable to parse public key: %v", keys.ErrMalformedKey, err)
	}
	publicKey, ok := parsed.(*rsa.PublicKey)
	if !ok {
		return nil, keys.MalformedKeyf("public key is not of type RSA")
	}
	return publicKey, nil
}
