package keys

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// KeyModel is the closed set of key models: *SymmetricKeyModel, *RsaKeyModel and *EccKeyModel.
// Callers switch on the concrete type to reach the material.
type KeyModel interface {
	// Algorithm is the algorithm family the model belongs to
	Algorithm() Algorithm
	// ModelName is the type name used in error messages
	ModelName() string

	keyModel()
}

// ModelName returns the model name of a possibly nil KeyModel
func ModelName(model KeyModel) string {
	if model == nil {
		return "<nil>"
	}
	return model.ModelName()
}

// SymmetricKeyModel holds an AES key and the CBC initialization vector
type SymmetricKeyModel struct {
	Key []byte
	IV  []byte
}

func (*SymmetricKeyModel) Algorithm() Algorithm { return AlgorithmAES }
func (*SymmetricKeyModel) ModelName() string    { return "SymmetricKeyModel" }
func (*SymmetricKeyModel) keyModel()            {}

// Validate checks the key and IV lengths
func (m *SymmetricKeyModel) Validate() error {
	switch len(m.Key) {
	case AESKeySize128, AESKeySize192, AESKeySize256:
	default:
		return MalformedKeyf("AES key must be 16, 24 or 32 bytes, got %d", len(m.Key))
	}
	if len(m.IV) != AESBlockSize {
		return MalformedKeyf("AES IV must be %d bytes, got %d", AESBlockSize, len(m.IV))
	}
	return nil
}

// byteArray is a byte slice that serializes as a JSON array of integers.
type byteArray []byte

func (b byteArray) MarshalJSON() ([]byte, error) {
	ints := make([]int, len(b))
	for i, v := range b {
		ints[i] = int(v)
	}
	return json.Marshal(ints)
}

// UnmarshalJSON accepts an integer array or a Base64 string
func (b *byteArray) UnmarshalJSON(data []byte) error {
	var encoded string
	if err := json.Unmarshal(data, &encoded); err == nil {
		decoded, err := base64.StdEncoding.DecodeString(encoded)
		if err != nil {
			return fmt.Errorf("invalid base64 byte sequence: %w", err)
		}
		*b = decoded
		return nil
	}

	var ints []int
	if err := json.Unmarshal(data, &ints); err != nil {
		return err
	}
	out := make([]byte, len(ints))
	for i, v := range ints {
		if v < 0 || v > 255 {
			return fmt.Errorf("byte value %d at index %d out of range", v, i)
		}
		out[i] = byte(v)
	}
	*b = out
	return nil
}

type symmetricKeyJSON struct {
	Key *byteArray `json:"Key"`
	IV  *byteArray `json:"IV"`
}

// MarshalJSON writes Key and IV as integer arrays
func (m SymmetricKeyModel) MarshalJSON() ([]byte, error) {
	key, iv := byteArray(m.Key), byteArray(m.IV)
	return json.Marshal(symmetricKeyJSON{Key: &key, IV: &iv})
}

// UnmarshalJSON requires both Key and IV
func (m *SymmetricKeyModel) UnmarshalJSON(data []byte) error {
	var raw symmetricKeyJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw.Key == nil || raw.IV == nil {
		return fmt.Errorf("both Key and IV are required")
	}
	m.Key, m.IV = *raw.Key, *raw.IV
	return nil
}

// RsaKeyModel holds a PEM encoded RSA key pair. An empty PrivateKey marks a public-key-only holder.
type RsaKeyModel struct {
	PublicKey  string    `json:"PublicKey"`
	PrivateKey string    `json:"PrivateKey"`
	KeySize    int       `json:"KeySize"`
	CreatedAt  time.Time `json:"CreatedAt"`
}

func (*RsaKeyModel) Algorithm() Algorithm { return AlgorithmRSA }
func (*RsaKeyModel) ModelName() string    { return "RsaKeyModel" }
func (*RsaKeyModel) keyModel()            {}

// HasPrivateKey reports whether the model can decrypt and sign
func (m *RsaKeyModel) HasPrivateKey() bool {
	return m.PrivateKey != ""
}

// EccKeyModel holds a PEM encoded elliptic-curve key pair bound to a curve
type EccKeyModel struct {
	PublicKey  string    `json:"PublicKey"`
	PrivateKey string    `json:"PrivateKey"`
	Curve      EccCurve  `json:"Curve"`
	CreatedAt  time.Time `json:"CreatedAt"`
}

func (*EccKeyModel) Algorithm() Algorithm { return AlgorithmECC }
func (*EccKeyModel) ModelName() string    { return "EccKeyModel" }
func (*EccKeyModel) keyModel()            {}

// HasPrivateKey reports whether the model can sign
func (m *EccKeyModel) HasPrivateKey() bool {
	return m.PrivateKey != ""
}

// KeyGenerationResult describes a key file written by a generator
type KeyGenerationResult struct {
	ID          string    `json:"id" validate:"required,uuid"`
	Algorithm   Algorithm `json:"algorithm" validate:"required,oneof=AES RSA ECC"`
	KeyFileName string    `json:"keyFileName" validate:"required"`
	KeyFilePath string    `json:"keyFilePath" validate:"required"`
	CreatedAt   time.Time `json:"createdAt" validate:"required"`
}

// NewKeyGenerationResult creates a result stamped with the current UTC time
func NewKeyGenerationResult(algorithm Algorithm, fileName, fullPath string) *KeyGenerationResult {
	return &KeyGenerationResult{
		Algorithm:   algorithm,
		KeyFileName: fileName,
		KeyFilePath: fullPath,
		CreatedAt:   time.Now().UTC(),
	}
}

// Validate checks that a result is complete enough to be recorded
func (r *KeyGenerationResult) Validate() error {
	validate := validator.New()
	if err := validate.Struct(r); err != nil {
		return fmt.Errorf("validation failed for KeyGenerationResult: %w", err)
	}
	return nil
}

func (r *KeyGenerationResult) String() string {
	return fmt.Sprintf("[%s] %s @ %s (UTC %s)", r.Algorithm, r.KeyFileName, r.KeyFilePath, r.CreatedAt.UTC().Format("2006-01-02 15:04:05"))
}

// KeyGenerationQuery filters recorded generation results
type KeyGenerationQuery struct {
	Algorithm Algorithm `validate:"omitempty,oneof=AES RSA ECC"`
	Limit     int       `validate:"omitempty,gt=0"`
	Offset    int       `validate:"omitempty,gte=0"`
}

// Validate checks the filter values
func (q *KeyGenerationQuery) Validate() error {
	validate := validator.New()
	if err := validate.Struct(q); err != nil {
		return fmt.Errorf("validation failed for KeyGenerationQuery: %w", err)
	}
	return nil
}
