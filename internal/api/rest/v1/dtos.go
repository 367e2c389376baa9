package v1

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rexmax1018/CryptoSuite48/internal/domain/keys"
	"github.com/rexmax1018/CryptoSuite48/internal/pkg/validators"
)

func newValidator() (*validator.Validate, error) {
	validate := validator.New()
	if err := validators.Register(validate); err != nil {
		return nil, err
	}
	return validate, nil
}

func validateStruct(name string, s interface{}) error {
	validate, err := newValidator()
	if err != nil {
		return err
	}
	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for %s: %w", name, err)
	}
	return nil
}

// GenerateKeyRequest asks for a new key of Algorithm, optionally written to Path
type GenerateKeyRequest struct {
	Algorithm string `json:"algorithm" validate:"required,algorithm"`
	Path      string `json:"path,omitempty"`
}

// Validate checks the request fields
func (r *GenerateKeyRequest) Validate() error {
	return validateStruct("GenerateKeyRequest", r)
}

// CryptoRequest carries the payload and the Base64 encoded key document of an operation.
// The payload is either Base64 Data or Text converted with the configured text encoding.
type CryptoRequest struct {
	Algorithm string `json:"algorithm" validate:"required,algorithm"`
	Key       string `json:"key" validate:"required"`
	Data      string `json:"data,omitempty" validate:"required_without=Text"`
	Text      string `json:"text,omitempty"`
}

// Validate checks the request fields
func (r *CryptoRequest) Validate() error {
	return validateStruct("CryptoRequest", r)
}

// VerifyRequest adds the Base64 signature to a CryptoRequest
type VerifyRequest struct {
	CryptoRequest
	Signature string `json:"signature" validate:"required"`
}

// Validate checks the request fields
func (r *VerifyRequest) Validate() error {
	return validateStruct("VerifyRequest", r)
}

// KeyGenerationResponse describes a written key file
type KeyGenerationResponse struct {
	ID          string    `json:"id"`
	Algorithm   string    `json:"algorithm"`
	KeyFileName string    `json:"keyFileName"`
	KeyFilePath string    `json:"keyFilePath"`
	CreatedAt   time.Time `json:"createdAt"`
}

func newKeyGenerationResponse(result *keys.KeyGenerationResult) KeyGenerationResponse {
	return KeyGenerationResponse{
		ID:          result.ID,
		Algorithm:   string(result.Algorithm),
		KeyFileName: result.KeyFileName,
		KeyFilePath: result.KeyFilePath,
		CreatedAt:   result.CreatedAt,
	}
}

// KeyModelResponse returns a freshly generated key document in Base64 form, ready for CryptoRequest.Key
type KeyModelResponse struct {
	Algorithm string `json:"algorithm"`
	Model     string `json:"model"`
	Key       string `json:"key"`
}

// DataResponse carries the Base64 result of an operation and, for decryption, its text form
type DataResponse struct {
	Data string `json:"data"`
	Text string `json:"text,omitempty"`
}

// VerifyResponse carries the outcome of a signature check
type VerifyResponse struct {
	Valid bool `json:"valid"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Message string `json:"message"`
}
