//go:build integration
// +build integration

package persistence

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rexmax1018/CryptoSuite48/internal/domain/keys"
	"github.com/rexmax1018/CryptoSuite48/internal/pkg/config"
	"github.com/rexmax1018/CryptoSuite48/internal/pkg/testutil"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// TestPostgresDSN points at the local PostgreSQL used by the integration suite
const TestPostgresDSN = "user=postgres password=postgres host=localhost port=5432 sslmode=disable"

// TestContext holds test database and repositories
type TestContext struct {
	DB                *gorm.DB
	KeyGenerationRepo keys.KeyGenerationRepository
}

// SetupTestDB opens a migrated catalog that is removed when the test ends
func SetupTestDB(t *testing.T, dbType string) *TestContext {
	t.Helper()

	var settings config.DatabaseSettings
	cleanupFunc := func() {}

	switch dbType {
	case config.SqliteDbType:
		settings = config.DatabaseSettings{
			Type: config.SqliteDbType,
			DSN:  filepath.Join(t.TempDir(), "catalog.db"),
		}

	case config.PostgresDbType:
		uniqueDBName := "test_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:16]
		settings = config.DatabaseSettings{
			Type: config.PostgresDbType,
			DSN:  TestPostgresDSN,
			Name: uniqueDBName,
		}
		cleanupFunc = func() {
			_ = DropDatabase(TestPostgresDSN+" dbname=postgres", uniqueDBName)
		}

	default:
		t.Fatalf("Unsupported database type: %s", dbType)
	}

	db, err := NewDBConnection(settings)
	require.NoError(t, err, "Failed to create database connection")

	t.Cleanup(func() {
		_ = CloseDB(db)
		cleanupFunc()
	})

	require.NoError(t, Migrate(db), "Failed to migrate schema")

	repo, err := NewGormKeyGenerationRepository(db, testutil.SetupTestLogger(t))
	require.NoError(t, err, "Failed to create key generation repository")

	return &TestContext{
		DB:                db,
		KeyGenerationRepo: repo,
	}
}

// CreateTestResult creates a recordable result for algorithm
func CreateTestResult(t *testing.T, algorithm keys.Algorithm) *keys.KeyGenerationResult {
	t.Helper()

	name := uuid.NewString()[:8] + ".json"
	return &keys.KeyGenerationResult{
		ID:          uuid.NewString(),
		Algorithm:   algorithm,
		KeyFileName: name,
		KeyFilePath: filepath.Join("Key", algorithm.Directory(), name),
		CreatedAt:   time.Now().UTC(),
	}
}
