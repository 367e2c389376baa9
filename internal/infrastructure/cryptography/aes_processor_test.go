//go:build unit
// +build unit

package cryptography

import (
	"testing"

	"github.com/rexmax1018/CryptoSuite48/internal/domain/cryptoalg"
	"github.com/rexmax1018/CryptoSuite48/internal/domain/keys"
	"github.com/rexmax1018/CryptoSuite48/internal/pkg/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	TestAESKey128 = 16
	TestAESKey256 = 32
)

func setupAESProcessor(t *testing.T) cryptoalg.AESProcessor {
	t.Helper()
	logger := testutil.SetupTestLogger(t)
	processor, err := NewAESProcessor(logger)
	require.NoError(t, err)
	return processor
}

func TestAESProcessor(t *testing.T) {
	processor := setupAESProcessor(t)

	newKeyAndIV := func(t *testing.T, size int) ([]byte, []byte) {
		key, err := processor.GenerateKey(size)
		require.NoError(t, err)
		iv, err := processor.GenerateIV()
		require.NoError(t, err)
		return key, iv
	}

	t.Run("EncryptDecrypt", func(t *testing.T) {
		key, iv := newKeyAndIV(t, TestAESKey256)
		plainText := []byte("Hello from CryptoSuite!")

		ciphertext, err := processor.Encrypt(plainText, key, iv)
		require.NoError(t, err)
		assert.Len(t, ciphertext, 32)

		decrypted, err := processor.Decrypt(ciphertext, key, iv)
		require.NoError(t, err)
		assert.Equal(t, plainText, decrypted)
	})

	t.Run("EmptyPlaintext", func(t *testing.T) {
		key, iv := newKeyAndIV(t, TestAESKey128)

		ciphertext, err := processor.Encrypt([]byte{}, key, iv)
		require.NoError(t, err)
		assert.Len(t, ciphertext, keys.AESBlockSize)

		decrypted, err := processor.Decrypt(ciphertext, key, iv)
		require.NoError(t, err)
		assert.Empty(t, decrypted)
	})

	t.Run("Deterministic", func(t *testing.T) {
		key, iv := newKeyAndIV(t, TestAESKey128)

		first, err := processor.Encrypt([]byte("same input"), key, iv)
		require.NoError(t, err)
		second, err := processor.Encrypt([]byte("same input"), key, iv)
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})

	t.Run("EncryptionWithInvalidKey", func(t *testing.T) {
		_, iv := newKeyAndIV(t, TestAESKey128)

		_, err := processor.Encrypt([]byte("This is a test."), []byte("shortkey"), iv)
		assert.ErrorIs(t, err, keys.ErrMalformedKey)
	})

	t.Run("EncryptionWithInvalidIV", func(t *testing.T) {
		key, _ := newKeyAndIV(t, TestAESKey128)

		_, err := processor.Encrypt([]byte("This is a test."), key, []byte("short"))
		assert.ErrorIs(t, err, keys.ErrMalformedKey)
	})

	t.Run("GenerateKey", func(t *testing.T) {
		for _, size := range []int{keys.AESKeySize128, keys.AESKeySize192, keys.AESKeySize256} {
			key, err := processor.GenerateKey(size)
			require.NoError(t, err)
			assert.Len(t, key, size)
		}

		_, err := processor.GenerateKey(20)
		assert.ErrorIs(t, err, keys.ErrUnsupported)
	})

	t.Run("DecryptWithWrongKey", func(t *testing.T) {
		key, iv := newKeyAndIV(t, TestAESKey128)

		plainText := []byte("Test decryption with wrong key.")
		ciphertext, err := processor.Encrypt(plainText, key, iv)
		require.NoError(t, err)

		wrongKey, err := processor.GenerateKey(TestAESKey128)
		require.NoError(t, err)

		decrypted, err := processor.Decrypt(ciphertext, wrongKey, iv)
		if err == nil {
			assert.NotEqual(t, plainText, decrypted)
		} else {
			assert.Error(t, err)
		}
	})

	t.Run("DecryptShortCiphertext", func(t *testing.T) {
		key, iv := newKeyAndIV(t, TestAESKey128)

		_, err := processor.Decrypt([]byte("short"), key, iv)
		assert.ErrorIs(t, err, keys.ErrMalformedEncoding)

		_, err = processor.Decrypt(make([]byte, 17), key, iv)
		assert.ErrorIs(t, err, keys.ErrMalformedEncoding)

		_, err = processor.Decrypt(nil, key, iv)
		assert.ErrorIs(t, err, keys.ErrMalformedEncoding)
	})
}
