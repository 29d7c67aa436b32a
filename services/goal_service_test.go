package services

import (
	"testing"
	"time"

	"github.com/Ramo-11/united-masjid-help/apperrors"
	"github.com/Ramo-11/united-masjid-help/config"
	"github.com/Ramo-11/united-masjid-help/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func donationAt(t *testing.T, pantry string, amount float64, at time.Time) {
	t.Helper()
	row := models.Donation{
		Model:  gorm.Model{CreatedAt: at, UpdatedAt: at},
		Pantry: pantry,
		Amount: amount,
		Type:   DonationTypeMoney,
	}
	require.NoError(t, config.DB.Create(&row).Error)
}

func TestCurrentWeekTotalOnlyCountsThisWeek(t *testing.T) {
	setupTestDB(t)
	seedPantry(t, "almumineen", 500)

	// week of Monday 2025-01-13
	now := time.Date(2025, 1, 13, 0, 2, 0, 0, time.UTC)

	donationAt(t, "almumineen", 40, time.Date(2025, 1, 12, 23, 59, 0, 0, time.UTC)) // prior Sunday
	donationAt(t, "almumineen", 25, time.Date(2025, 1, 13, 0, 1, 0, 0, time.UTC))
	donationAt(t, "almumineen", 10, time.Date(2025, 1, 19, 23, 0, 0, 0, time.UTC)) // Sunday of this week
	donationAt(t, "almumineen", 99, time.Date(2025, 1, 20, 0, 0, 0, 0, time.UTC))  // next Monday

	total, err := CurrentWeekTotal("almumineen", now)
	require.NoError(t, err)
	assert.Equal(t, 35.0, total)
}

func TestCurrentWeekTotalIsolatesPantries(t *testing.T) {
	setupTestDB(t)
	seedPantry(t, "almumineen", 500)
	seedPantry(t, "alfajr", 300)

	now := time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC)
	donationAt(t, "almumineen", 50, now)
	donationAt(t, "alfajr", 20, now)

	total, err := CurrentWeekTotal("alfajr", now)
	require.NoError(t, err)
	assert.Equal(t, 20.0, total)
}

func TestListPantryGoals(t *testing.T) {
	setupTestDB(t)
	seedPantry(t, "alfajr", 300)
	seedPantry(t, "almumineen", 500)

	now := time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC)
	donationAt(t, "almumineen", 75, now)

	got, err := ListPantryGoals(now)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, PantryProgress{Pantry: "alfajr", Goal: 300, Current: 0}, got[0])
	assert.Equal(t, PantryProgress{Pantry: "almumineen", Goal: 500, Current: 75}, got[1])
}

func TestSetMonetaryGoal(t *testing.T) {
	setupTestDB(t)
	seedPantry(t, "almumineen", 500)

	require.NoError(t, SetMonetaryGoal("almumineen", 750))
	// setting the same value again is fine
	require.NoError(t, SetMonetaryGoal("almumineen", 750))

	var goal models.PantryGoal
	require.NoError(t, config.DB.Where("pantry = ?", "almumineen").First(&goal).Error)
	assert.Equal(t, 750.0, goal.Goal)

	assert.ErrorIs(t, SetMonetaryGoal("almumineen", -1), apperrors.ErrValidation)
	assert.ErrorIs(t, SetMonetaryGoal("nowhere", 100), apperrors.ErrNotFound)
}

func TestSetFoodItemGoalUpsertKeepsAchievements(t *testing.T) {
	setupTestDB(t)
	seedFoodGoal(t, "almumineen", "Rice", 50, "lbs")

	now := time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC)
	_, err := RecordFoodAchievement("almumineen", "Rice", 30, "Sara", now)
	require.NoError(t, err)

	// raise the target; same row, history intact
	require.NoError(t, SetFoodItemGoal("almumineen", "Rice", 80, "lbs"))

	got, err := GetFoodItemGoals("almumineen", now)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, FoodGoalProgress{Category: "Rice", Amount: 80, Unit: "lbs", Achieved: 30}, got[0])
}

func TestSetFoodItemGoalValidation(t *testing.T) {
	setupTestDB(t)

	assert.ErrorIs(t, SetFoodItemGoal("", "Rice", 50, "lbs"), apperrors.ErrValidation)
	assert.ErrorIs(t, SetFoodItemGoal("almumineen", "", 50, "lbs"), apperrors.ErrValidation)
	assert.ErrorIs(t, SetFoodItemGoal("almumineen", "Rice", -5, "lbs"), apperrors.ErrValidation)
	assert.ErrorIs(t, SetFoodItemGoal("almumineen", "Rice", 50, ""), apperrors.ErrValidation)
}

func TestDeleteFoodItemGoal(t *testing.T) {
	setupTestDB(t)
	seedFoodGoal(t, "almumineen", "Rice", 50, "lbs")
	seedFoodGoal(t, "almumineen", "Oil", 20, "bottles")

	now := time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC)
	_, err := RecordFoodAchievement("almumineen", "Rice", 10, "Sara", now)
	require.NoError(t, err)

	require.NoError(t, DeleteFoodItemGoal("almumineen", "Rice"))

	got, err := GetFoodItemGoals("almumineen", now)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Oil", got[0].Category)

	// achievements are history, they survive the goal
	var kept int64
	require.NoError(t, config.DB.Model(&models.FoodItemAchievement{}).
		Where("pantry = ? AND category = ?", "almumineen", "Rice").Count(&kept).Error)
	assert.Equal(t, int64(1), kept)

	// the unique (pantry, category) index is reusable after a hard delete
	require.NoError(t, SetFoodItemGoal("almumineen", "Rice", 60, "lbs"))

	assert.ErrorIs(t, DeleteFoodItemGoal("almumineen", "Beans"), apperrors.ErrNotFound)
}

func TestGetFoodItemGoalsZeroWhenNoAchievements(t *testing.T) {
	setupTestDB(t)
	seedFoodGoal(t, "alfajr", "Flour", 40, "bags")

	got, err := GetFoodItemGoals("alfajr", time.Now())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 0, got[0].Achieved)
}
