package services

import (
	"path/filepath"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"contacts-http-service/config"
	"contacts-http-service/models"
)

// newTestDB opens a throwaway SQLite database with the full schema migrated
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "contacts_test.db")
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.Person{},
		&models.PhoneNumber{},
		&models.StreetAddress{},
		&models.EmailAddress{},
	))

	return db
}

func testConfig() *config.Config {
	return &config.Config{}
}
