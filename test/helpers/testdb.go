package helpers

import (
	"path/filepath"
	"testing"

	"foodshare_backend/database"
	"foodshare_backend/internal/config"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// NewTestDB opens a throwaway SQLite database under t.TempDir() and runs the
// migrations. TranslateError is on so unique-index violations surface as
// gorm.ErrDuplicatedKey exactly like on Postgres.
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	TestConfig()

	dsn := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("Failed to open test database (%s): %v", dsn, err)
	}

	if err := database.Migrate(db); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	return db
}

// TestConfig installs an in-memory config so nothing reads config.yaml.
func TestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Server.Env = "development"
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.TTL = 60
	config.AppConfig = cfg
	return cfg
}
