package codec

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
)

// ErrMalformedEncoding is returned for empty or invalid Base64, hex, padding or text input
var ErrMalformedEncoding = errors.New("malformed encoding")

func malformed(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrMalformedEncoding, fmt.Sprintf(format, args...))
}

// EncodeBase64 encodes data with the standard alphabet, or with the URL-safe alphabet
// and no padding when urlSafe is set.
func EncodeBase64(data []byte, urlSafe bool) (string, error) {
	if len(data) == 0 {
		return "", malformed("input data must not be empty")
	}
	if urlSafe {
		return base64.RawURLEncoding.EncodeToString(data), nil
	}
	return base64.StdEncoding.EncodeToString(data), nil
}

// DecodeBase64 decodes a string produced by EncodeBase64 with the same urlSafe flag.
// URL-safe input may carry padding.
func DecodeBase64(encoded string, urlSafe bool) ([]byte, error) {
	encoded = strings.TrimSpace(encoded)
	if encoded == "" {
		return nil, malformed("base64 string must not be empty")
	}

	var (
		decoded []byte
		err     error
	)
	if urlSafe {
		decoded, err = base64.RawURLEncoding.DecodeString(strings.TrimRight(encoded, "="))
	} else {
		decoded, err = base64.StdEncoding.DecodeString(encoded)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedEncoding, err)
	}
	return decoded, nil
}

// DecodeBase64Any accepts either alphabet with or without padding
func DecodeBase64Any(encoded string) ([]byte, error) {
	encoded = strings.TrimSpace(encoded)
	if encoded == "" {
		return nil, malformed("base64 string must not be empty")
	}
	normalized := strings.NewReplacer("-", "+", "_", "/").Replace(strings.TrimRight(encoded, "="))
	decoded, err := base64.RawStdEncoding.DecodeString(normalized)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedEncoding, err)
	}
	return decoded, nil
}
