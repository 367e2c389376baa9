// Package keystore resolves key file locations under the configured key directory
// and writes key files atomically.
package keystore

import (
	"bytes"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"

	"github.com/rexmax1018/CryptoSuite48/internal/domain/keys"
	"github.com/rexmax1018/CryptoSuite48/internal/pkg/logger"

	"github.com/natefinch/atomic"
)

const (
	fileNameAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	fileNameLength   = 8

	dirPerm = 0o700
)

// Store lays key files out as <KeyDirectory>/<ALG>/<file>
type Store struct {
	root   string
	logger logger.Logger
}

// NewStore creates a Store rooted at keyDirectory
func NewStore(keyDirectory string, logger logger.Logger) (*Store, error) {
	if keyDirectory == "" {
		return nil, errors.New("key directory cannot be empty")
	}
	return &Store{
		root:   keyDirectory,
		logger: logger,
	}, nil
}

// Root returns the key directory
func (s *Store) Root() string {
	return s.root
}

// KeyPath joins the key directory, the algorithm subdirectory and the file name
func (s *Store) KeyPath(subdir, filename string) string {
	return filepath.Join(s.root, subdir, filename)
}

// GenerateKeyFileName returns 8 random characters from [a-zA-Z0-9] followed by ext.
// The names are not secret and need no cryptographic randomness.
func GenerateKeyFileName(ext string) string {
	name := make([]byte, fileNameLength)
	for i := range name {
		name[i] = fileNameAlphabet[rand.Intn(len(fileNameAlphabet))]
	}
	return string(name) + ext
}

// Resolve picks the target of a generated key file. An empty path yields a random name
// under the algorithm directory, a relative path is placed under it and an absolute path is kept.
func (s *Store) Resolve(algorithm keys.Algorithm, path, ext string) (fileName, fullPath string) {
	switch {
	case path == "":
		fileName = GenerateKeyFileName(ext)
		fullPath = s.KeyPath(algorithm.Directory(), fileName)
	case filepath.IsAbs(path):
		fullPath = filepath.Clean(path)
		fileName = filepath.Base(fullPath)
	default:
		fullPath = s.KeyPath(algorithm.Directory(), path)
		fileName = filepath.Base(fullPath)
	}
	return fileName, fullPath
}

// Write creates missing directories and replaces path with data through a temporary
// file in the same directory, so readers never observe a partial key file.
// New files are created 0600; a replaced file keeps its mode.
func (s *Store) Write(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return fmt.Errorf("failed to create key directory %s: %w", dir, err)
	}

	if err := atomic.WriteFile(path, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("failed to write key file %s: %w", path, err)
	}

	s.logger.Info("Saved key file ", path)
	return nil
}
