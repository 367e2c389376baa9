package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/rexmax1018/CryptoSuite48/internal/domain/keys"
	"github.com/rexmax1018/CryptoSuite48/internal/pkg/codec"
	"github.com/rexmax1018/CryptoSuite48/internal/pkg/validators"
)

// Defaults of the CryptoSuite section
const (
	DefaultKeyDirectory = "Key"
	DefaultAESKeySize   = 256
	DefaultRSAKeySize   = 2048
	DefaultEccCurve     = "NistP256"
	DefaultTextEncoding = "UTF8"
)

// AESSettings selects the AES key size in bits and the text encoding of AES payloads
type AESSettings struct {
	KeySize  int    `mapstructure:"KeySize" json:"KeySize" validate:"aes_key_size"`
	Encoding string `mapstructure:"Encoding" json:"Encoding" validate:"required,oneof=UTF8 UTF16 UTF32 ASCII"`
}

// RSASettings selects the RSA modulus size in bits and the text encoding of RSA payloads
type RSASettings struct {
	KeySize  int    `mapstructure:"KeySize" json:"KeySize" validate:"rsa_key_size"`
	Encoding string `mapstructure:"Encoding" json:"Encoding" validate:"required,oneof=UTF8 UTF16 UTF32 ASCII"`
}

// ECCSettings selects the curve new ECC keys are generated on
type ECCSettings struct {
	Curve    string `mapstructure:"Curve" json:"Curve" validate:"ecc_curve"`
	Encoding string `mapstructure:"Encoding" json:"Encoding" validate:"required,oneof=UTF8 UTF16 UTF32 ASCII"`
}

// CryptoSettings is the read-only configuration snapshot consumed by generators and loaders
type CryptoSettings struct {
	KeyDirectory     string      `mapstructure:"KeyDirectory" json:"KeyDirectory" validate:"required"`
	AES              AESSettings `mapstructure:"AES" json:"AES"`
	RSA              RSASettings `mapstructure:"RSA" json:"RSA"`
	ECC              ECCSettings `mapstructure:"ECC" json:"ECC"`
	UseURLSafeBase64 bool        `mapstructure:"UseUrlSafeBase64" json:"UseUrlSafeBase64"`
}

// DefaultCryptoSettings returns the settings used when no file overrides them
func DefaultCryptoSettings() CryptoSettings {
	return CryptoSettings{
		KeyDirectory:     DefaultKeyDirectory,
		AES:              AESSettings{KeySize: DefaultAESKeySize, Encoding: DefaultTextEncoding},
		RSA:              RSASettings{KeySize: DefaultRSAKeySize, Encoding: DefaultTextEncoding},
		ECC:              ECCSettings{Curve: DefaultEccCurve, Encoding: DefaultTextEncoding},
		UseURLSafeBase64: true,
	}
}

func newValidator() (*validator.Validate, error) {
	validate := validator.New()
	if err := validators.Register(validate); err != nil {
		return nil, fmt.Errorf("failed to register validators: %w", err)
	}
	return validate, nil
}

// Validate checks key sizes, curve and encodings
func (s *CryptoSettings) Validate() error {
	validate, err := newValidator()
	if err != nil {
		return err
	}

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for CryptoSettings: %w", err)
	}
	return nil
}

// EncoderFor returns the codec bound to the Base64 toggle and the text encoding of algorithm
func (s *CryptoSettings) EncoderFor(algorithm keys.Algorithm) *codec.Encoder {
	encoding := s.AES.Encoding
	switch algorithm {
	case keys.AlgorithmRSA:
		encoding = s.RSA.Encoding
	case keys.AlgorithmECC:
		encoding = s.ECC.Encoding
	}
	return codec.NewEncoder(s.UseURLSafeBase64, codec.TextEncoding(encoding))
}
