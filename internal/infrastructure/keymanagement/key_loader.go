package keymanagement

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rexmax1018/CryptoSuite48/internal/domain/keys"
	"github.com/rexmax1018/CryptoSuite48/internal/pkg/codec"
	"github.com/rexmax1018/CryptoSuite48/internal/pkg/logger"
)

// keyLoader funnels every source into decode so all four entry points share the same checks
type keyLoader[M keys.KeyModel] struct {
	algorithm keys.Algorithm
	decode    func(data []byte) (M, error)
	logger    logger.Logger
}

func (l *keyLoader[M]) LoadFromFile(path string) (M, error) {
	var zero M
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return zero, fmt.Errorf("failed to read %s key file %s: %w", l.algorithm, path, err)
	}
	l.logger.Debug("Loading ", l.algorithm, " key from ", path)
	return l.decodeDocument(data)
}

func (l *keyLoader[M]) LoadFromString(content string) (M, error) {
	return l.decodeDocument([]byte(content))
}

func (l *keyLoader[M]) LoadFromBase64(encoded string) (M, error) {
	var zero M
	data, err := codec.DecodeBase64Any(encoded)
	if err != nil {
		return zero, malformed(err)
	}
	return l.decodeDocument(data)
}

func (l *keyLoader[M]) LoadFromStream(r io.Reader) (M, error) {
	var zero M
	if r == nil {
		return zero, errors.New("key stream is nil")
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return zero, fmt.Errorf("failed to read %s key stream: %w", l.algorithm, err)
	}
	return l.decodeDocument(data)
}

// utf8BOM is written by some editors in front of JSON key files
var utf8BOM = []byte("\xEF\xBB\xBF")

func (l *keyLoader[M]) decodeDocument(data []byte) (M, error) {
	return l.decode(bytes.TrimPrefix(data, utf8BOM))
}

// malformed reports err as ErrMalformedKey, keeping its text
func malformed(err error) error {
	if errors.Is(err, keys.ErrMalformedKey) {
		return err
	}
	return fmt.Errorf("%w: %v", keys.ErrMalformedKey, err)
}
