// Package validators holds the custom go-playground validations shared by settings and request DTOs.
package validators

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/rexmax1018/CryptoSuite48/internal/domain/keys"
)

// AESKeySizes are the accepted AES key sizes in bits
var AESKeySizes = []int{128, 192, 256}

// RSAKeySizes are the accepted RSA modulus sizes in bits
var RSAKeySizes = []int{1024, 2048, 3072, 4096}

func contains(sizes []int, size int) bool {
	for _, s := range sizes {
		if s == size {
			return true
		}
	}
	return false
}

// IsValidAESKeySize reports whether bits is an AES key size
func IsValidAESKeySize(bits int) bool {
	return contains(AESKeySizes, bits)
}

// IsValidRSAKeySize reports whether bits is a supported RSA modulus size
func IsValidRSAKeySize(bits int) bool {
	return contains(RSAKeySizes, bits)
}

// AESKeySizeValidation validates an AES key size field given in bits.
func AESKeySizeValidation(fl validator.FieldLevel) bool {
	return IsValidAESKeySize(int(fl.Field().Int()))
}

// RSAKeySizeValidation validates an RSA key size field given in bits.
func RSAKeySizeValidation(fl validator.FieldLevel) bool {
	return IsValidRSAKeySize(int(fl.Field().Int()))
}

// EccCurveValidation validates a curve name.
func EccCurveValidation(fl validator.FieldLevel) bool {
	_, err := keys.ParseEccCurve(fl.Field().String())
	return err == nil
}

// AlgorithmValidation validates an algorithm selector.
func AlgorithmValidation(fl validator.FieldLevel) bool {
	_, err := keys.ParseAlgorithm(fl.Field().String())
	return err == nil
}

// Register adds the custom validations to validate under their tag names
func Register(validate *validator.Validate) error {
	validations := map[string]validator.Func{
		"aes_key_size": AESKeySizeValidation,
		"rsa_key_size": RSAKeySizeValidation,
		"ecc_curve":    EccCurveValidation,
		"algorithm":    AlgorithmValidation,
	}
	for tag, fn := range validations {
		if err := validate.RegisterValidation(tag, fn); err != nil {
			return fmt.Errorf("failed to register %s validation: %w", tag, err)
		}
	}
	return nil
}
