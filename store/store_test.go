package store

import (
	"io"
	"log"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"studenthub/models"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	// A single connection keeps the in-memory database alive and private
	// to this test.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	EnsureSchema(db, log.New(io.Discard, "", 0))
	return db
}

func TestEnsureSchemaSeedsCoursesOnce(t *testing.T) {
	db := openTestDB(t)

	var count int64
	require.NoError(t, db.Model(&models.Course{}).Count(&count).Error)
	require.EqualValues(t, 5, count)

	// Running the initializer again must not duplicate the seed set.
	EnsureSchema(db, log.New(io.Discard, "", 0))
	require.NoError(t, db.Model(&models.Course{}).Count(&count).Error)
	require.EqualValues(t, 5, count)

	var physics models.Course
	require.NoError(t, db.Where("name = ?", "Physics").First(&physics).Error)
	require.Equal(t, "Standard Course", physics.Description)
}
