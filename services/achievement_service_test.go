package services

import (
	"testing"
	"time"

	"github.com/Ramo-11/united-masjid-help/apperrors"
	"github.com/Ramo-11/united-masjid-help/config"
	"github.com/Ramo-11/united-masjid-help/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordFoodAchievement(t *testing.T) {
	setupTestDB(t)
	seedFoodGoal(t, "almumineen", "Rice", 50, "lbs")

	now := time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC)
	row, err := RecordFoodAchievement("almumineen", "Rice", 30, "Sara", now)
	require.NoError(t, err)
	assert.Equal(t, "2025-01-13", row.WeekStart)
	assert.Equal(t, "Sara", row.ContributorName)

	_, err = RecordFoodAchievement("almumineen", "Rice", 0, "Sara", now)
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = RecordFoodAchievement("almumineen", "Beans", 5, "Sara", now)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestMarkFoodGoalCompleteTopsUpToTarget(t *testing.T) {
	setupTestDB(t)
	seedFoodGoal(t, "almumineen", "Rice", 50, "lbs")

	now := time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC)
	_, err := RecordFoodAchievement("almumineen", "Rice", 30, "Sara", now)
	require.NoError(t, err)

	row, err := MarkFoodGoalComplete("almumineen", "Rice", now)
	require.NoError(t, err)
	require.NotNil(t, row)
	assert.Equal(t, 20, row.Amount)
	assert.Equal(t, AdminCompleteContributor, row.ContributorName)

	got, err := GetFoodItemGoals("almumineen", now)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 50, got[0].Achieved, "top-up lands exactly on the target")

	// already complete: no-op, no new rows
	row, err = MarkFoodGoalComplete("almumineen", "Rice", now)
	require.NoError(t, err)
	assert.Nil(t, row)

	var count int64
	require.NoError(t, config.DB.Model(&models.FoodItemAchievement{}).Count(&count).Error)
	assert.Equal(t, int64(2), count)
}

func TestMarkFoodGoalCompleteNeverShrinksOvershoot(t *testing.T) {
	setupTestDB(t)
	seedFoodGoal(t, "almumineen", "Rice", 50, "lbs")

	now := time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC)
	_, err := RecordFoodAchievement("almumineen", "Rice", 60, "Sara", now)
	require.NoError(t, err)

	row, err := MarkFoodGoalComplete("almumineen", "Rice", now)
	require.NoError(t, err)
	assert.Nil(t, row)

	got, err := GetFoodItemGoals("almumineen", now)
	require.NoError(t, err)
	assert.Equal(t, 60, got[0].Achieved)
}

func TestMarkFoodGoalCompleteUnknownGoal(t *testing.T) {
	setupTestDB(t)

	_, err := MarkFoodGoalComplete("almumineen", "Rice", time.Now())
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
