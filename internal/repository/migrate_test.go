package repository

import (
	"strings"
	"testing"

	"projextpal-backend/internal/database"
	"projextpal-backend/internal/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// TestInitializeSkipMigrate verifies that SkipMigrate leaves a fresh database
// without a schema while the default path creates one.
func TestInitializeSkipMigrate(t *testing.T) {
	base := testutils.SetupTestSuite(t)

	const scratch = "skip_migrate_test"
	base.DB.Exec(`DROP DATABASE IF EXISTS ` + scratch)
	require.NoError(t, base.DB.Exec(`CREATE DATABASE `+scratch).Error)
	defer base.DB.Exec(`DROP DATABASE IF EXISTS ` + scratch)

	dsn := strings.Replace(base.Config.DatabaseURL, "/testdb?", "/"+scratch+"?", 1)

	skipped, err := database.Initialize(dsn, &database.Options{SkipMigrate: true})
	require.NoError(t, err)
	assert.False(t, skipped.Migrator().HasTable("projects"))
	closeDB(t, skipped)

	migrated, err := database.Initialize(dsn, nil)
	require.NoError(t, err)
	assert.True(t, migrated.Migrator().HasTable("projects"))
	closeDB(t, migrated)
}

func closeDB(t *testing.T, gdb *gorm.DB) {
	t.Helper()
	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())
}
