package codec

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// EncodeHex renders data as hexadecimal, upper case when upper is set
func EncodeHex(data []byte, upper bool) (string, error) {
	if len(data) == 0 {
		return "", malformed("input data must not be empty")
	}
	encoded := hex.EncodeToString(data)
	if upper {
		encoded = strings.ToUpper(encoded)
	}
	return encoded, nil
}

// DecodeHex accepts upper or lower case digits
func DecodeHex(encoded string) ([]byte, error) {
	encoded = strings.TrimSpace(encoded)
	if encoded == "" {
		return nil, malformed("hex string must not be empty")
	}
	if len(encoded)%2 != 0 {
		return nil, malformed("hex string length must be even")
	}
	decoded, err := hex.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedEncoding, err)
	}
	return decoded, nil
}
