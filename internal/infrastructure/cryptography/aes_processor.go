package cryptography

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"fmt"

	"github.com/rexmax1018/CryptoSuite48/internal/domain/cryptoalg"
	"github.com/rexmax1018/CryptoSuite48/internal/domain/keys"
	"github.com/rexmax1018/CryptoSuite48/internal/pkg/codec"
	"github.com/rexmax1018/CryptoSuite48/internal/pkg/logger"
)

// aesProcessor struct that implements the AESProcessor interface
type aesProcessor struct {
	logger logger.Logger
}

// NewAESProcessor creates and returns a new instance of aesProcessor
func NewAESProcessor(logger logger.Logger) (cryptoalg.AESProcessor, error) {
	return &aesProcessor{
		logger: logger,
	}, nil
}

func (a *aesProcessor) GenerateKey(keySize int) ([]byte, error) {
	switch keySize {
	case keys.AESKeySize128, keys.AESKeySize192, keys.AESKeySize256:
	default:
		return nil, fmt.Errorf("%w: AES key size %d bytes", keys.ErrUnsupported, keySize)
	}

	key := make([]byte, keySize)
	if _, err := rand.Read(key); err != nil {
		return nil, fmt.Errorf("failed to generate AES key: %w", err)
	}
	a.logger.Info("Generated AES key of ", keySize*8, " bits")
	return key, nil
}

func (a *aesProcessor) GenerateIV() ([]byte, error) {
	iv := make([]byte, aes.BlockSize)
	if _, err := rand.Read(iv); err != nil {
		return nil, fmt.Errorf("failed to generate IV: %w", err)
	}
	return iv, nil
}

func newCBCBlock(key, iv []byte) (cipher.Block, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", keys.ErrMalformedKey, err)
	}
	if len(iv) != aes.BlockSize {
		return nil, keys.MalformedKeyf("IV must be %d bytes, got %d", aes.BlockSize, len(iv))
	}
	return block, nil
}

func (a *aesProcessor) Encrypt(data, key, iv []byte) ([]byte, error) {
	block, err := newCBCBlock(key, iv)
	if err != nil {
		return nil, err
	}

	padded, err := codec.PadPKCS7(data, aes.BlockSize)
	if err != nil {
		return nil, fmt.Errorf("failed to pad plaintext: %w", err)
	}

	ciphertext := make([]byte, len(padded))
	cipher.NewCBCEncrypter(block, iv).CryptBlocks(ciphertext, padded)

	a.logger.Info("AES encryption succeeded")
	return ciphertext, nil
}

func (a *aesProcessor) Decrypt(ciphertext, key, iv []byte) ([]byte, error) {
	block, err := newCBCBlock(key, iv)
	if err != nil {
		return nil, err
	}

	if len(ciphertext) == 0 || len(ciphertext)%aes.BlockSize != 0 {
		return nil, fmt.Errorf("%w: ciphertext length %d is not a positive multiple of the block size", keys.ErrMalformedEncoding, len(ciphertext))
	}

	plaintext := make([]byte, len(ciphertext))
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(plaintext, ciphertext)

	unpadded, err := codec.UnpadPKCS7(plaintext)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt data: %w", err)
	}

	a.logger.Info("AES decryption succeeded")
	return unpadded, nil
}
