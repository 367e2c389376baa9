package cryptoalg

// AESProcessor handles AES symmetric encryption operations.
// AES does not sign. Use RSA or ECDSA for digital signatures.
type AESProcessor interface {
	// GenerateKey generates a random AES key of 16, 24 or 32 bytes.
	GenerateKey(keySize int) ([]byte, error)

	// GenerateIV generates a random block sized initialization vector.
	GenerateIV() ([]byte, error)

	// Encrypt pads plaintext with PKCS#7 and encrypts it in CBC mode.
	Encrypt(data, key, iv []byte) ([]byte, error)

	// Decrypt reverses Encrypt. A wrong key usually surfaces as a padding error.
	Decrypt(ciphertext, key, iv []byte) ([]byte, error)
}
