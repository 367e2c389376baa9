package keys

import (
	"errors"
	"fmt"

	"github.com/rexmax1018/CryptoSuite48/internal/pkg/codec"
)

var (
	// ErrUnsupported is returned for an unknown algorithm, an algorithm/key model mismatch
	// or an operation the algorithm does not offer.
	ErrUnsupported = errors.New("unsupported algorithm or key model")

	// ErrMalformedKey is returned when serialized key material cannot be turned into the expected model or key.
	ErrMalformedKey = errors.New("malformed key material")

	// ErrMalformedEncoding is returned by the boundary codecs for invalid Base64, Hex or padding.
	ErrMalformedEncoding = codec.ErrMalformedEncoding
)

// UnsupportedError describes an unsupported combination of operation, algorithm and key model type.
// It matches ErrUnsupported through errors.Is.
type UnsupportedError struct {
	Operation string
	Algorithm Algorithm
	ModelType string
}

// NewUnsupportedError creates an UnsupportedError
func NewUnsupportedError(operation string, algorithm Algorithm, modelType string) *UnsupportedError {
	return &UnsupportedError{
		Operation: operation,
		Algorithm: algorithm,
		ModelType: modelType,
	}
}

func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("%s: unsupported algorithm or key model: %s -> %s", e.Operation, e.Algorithm, e.ModelType)
}

// Unwrap makes UnsupportedError match ErrUnsupported
func (e *UnsupportedError) Unwrap() error {
	return ErrUnsupported
}

// MalformedKeyf wraps ErrMalformedKey with a formatted message
func MalformedKeyf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrMalformedKey, fmt.Sprintf(format, args...))
}
