package services

import (
	"path/filepath"
	"testing"

	"github.com/Ramo-11/united-masjid-help/config"
	"github.com/Ramo-11/united-masjid-help/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB points config.DB at a throwaway SQLite file for one test.
// A file DB (not :memory:) so the concurrency tests exercise real write
// locking across connections.
func setupTestDB(t *testing.T) {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "pantry_test.db") + "?_busy_timeout=5000"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, config.Migrate(db))

	prev := config.DB
	config.DB = db
	t.Cleanup(func() { config.DB = prev })
}

func seedPantry(t *testing.T, pantry string, goal float64) {
	t.Helper()
	require.NoError(t, config.DB.Create(&models.PantryGoal{Pantry: pantry, Goal: goal}).Error)
}

func seedFoodGoal(t *testing.T, pantry, category string, amount int, unit string) {
	t.Helper()
	require.NoError(t, config.DB.Create(&models.FoodItemGoal{
		Pantry: pantry, Category: category, Amount: amount, Unit: unit,
	}).Error)
}
