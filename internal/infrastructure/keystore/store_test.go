//go:build unit
// +build unit

package keystore

import (
	"os"
	"path/filepath"
	"regexp"
	"runtime"
	"testing"

	"github.com/rexmax1018/CryptoSuite48/internal/domain/keys"
	"github.com/rexmax1018/CryptoSuite48/internal/pkg/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(t.TempDir(), testutil.SetupTestLogger(t))
	require.NoError(t, err)
	return store
}

func TestGenerateKeyFileName(t *testing.T) {
	pattern := regexp.MustCompile(`^[a-zA-Z0-9]{8}\.json$`)
	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		name := GenerateKeyFileName(".json")
		assert.Regexp(t, pattern, name)
		seen[name] = struct{}{}
	}
	assert.Greater(t, len(seen), 90)

	assert.Len(t, GenerateKeyFileName(""), 8)
}

func TestStore(t *testing.T) {
	_, err := NewStore("", testutil.SetupTestLogger(t))
	assert.Error(t, err)

	store := setupStore(t)

	t.Run("KeyPath", func(t *testing.T) {
		assert.Equal(t, filepath.Join(store.Root(), "RSA", "a.pem"), store.KeyPath("RSA", "a.pem"))
	})

	t.Run("ResolveEmpty", func(t *testing.T) {
		name, full := store.Resolve(keys.AlgorithmAES, "", ".json")
		assert.Regexp(t, `^[a-zA-Z0-9]{8}\.json$`, name)
		assert.Equal(t, filepath.Join(store.Root(), "AES", name), full)
	})

	t.Run("ResolveRelative", func(t *testing.T) {
		name, full := store.Resolve(keys.AlgorithmECC, filepath.Join("team", "k.json"), ".json")
		assert.Equal(t, "k.json", name)
		assert.Equal(t, filepath.Join(store.Root(), "ECC", "team", "k.json"), full)
	})

	t.Run("ResolveAbsolute", func(t *testing.T) {
		abs := filepath.Join(t.TempDir(), "elsewhere", "key.pem")
		name, full := store.Resolve(keys.AlgorithmRSA, abs, ".pem")
		assert.Equal(t, "key.pem", name)
		assert.Equal(t, abs, full)
	})

	t.Run("WriteCreatesDirectories", func(t *testing.T) {
		path := store.KeyPath("AES", "nested/deeper/key.json")
		require.NoError(t, store.Write(path, []byte(`{"Key":[1]}`)))

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, `{"Key":[1]}`, string(content))

		if runtime.GOOS != "windows" {
			info, err := os.Stat(path)
			require.NoError(t, err)
			assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
		}

		entries, err := os.ReadDir(filepath.Dir(path))
		require.NoError(t, err)
		assert.Len(t, entries, 1)
	})

	t.Run("WriteReplaces", func(t *testing.T) {
		path := store.KeyPath("RSA", "replace.pem")
		require.NoError(t, store.Write(path, []byte("first")))
		require.NoError(t, store.Write(path, []byte("second")))

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "second", string(content))

		entries, err := os.ReadDir(filepath.Dir(path))
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "replace.pem", entries[0].Name())
	})

	t.Run("FailedWriteLeavesNoFile", func(t *testing.T) {
		dir := store.KeyPath("AES", "readonly")
		require.NoError(t, os.MkdirAll(dir, 0o500))
		if runtime.GOOS == "windows" || os.Geteuid() == 0 {
			t.Skip("directory permissions are not enforced")
		}

		err := store.Write(filepath.Join(dir, "key.json"), []byte("z"))
		require.Error(t, err)
		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		assert.Empty(t, entries)
	})

	t.Run("WriteIntoFileFails", func(t *testing.T) {
		blocker := store.KeyPath("ECC", "blocker")
		require.NoError(t, store.Write(blocker, []byte("x")))

		err := store.Write(filepath.Join(blocker, "key.json"), []byte("y"))
		assert.Error(t, err)
	})
}
