package codec

import "bytes"

// PadPKCS7 extends data to a multiple of blockSize. A full block is appended
// when data is already aligned.
func PadPKCS7(data []byte, blockSize int) ([]byte, error) {
	if blockSize <= 0 || blockSize > 255 {
		return nil, malformed("block size must be between 1 and 255, got %d", blockSize)
	}
	padLen := blockSize - len(data)%blockSize
	padded := make([]byte, len(data), len(data)+padLen)
	copy(padded, data)
	return append(padded, bytes.Repeat([]byte{byte(padLen)}, padLen)...), nil
}

// UnpadPKCS7 strips and checks the padding appended by PadPKCS7
func UnpadPKCS7(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, malformed("padded data must not be empty")
	}
	padLen := int(data[len(data)-1])
	if padLen == 0 || padLen > len(data) {
		return nil, malformed("invalid padding length %d", padLen)
	}
	for _, b := range data[len(data)-padLen:] {
		if int(b) != padLen {
			return nil, malformed("invalid padding bytes")
		}
	}
	out := make([]byte, len(data)-padLen)
	copy(out, data)
	return out, nil
}
