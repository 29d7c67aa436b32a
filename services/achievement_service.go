package services

import (
	"errors"
	"time"

	"github.com/Ramo-11/united-masjid-help/apperrors"
	"github.com/Ramo-11/united-masjid-help/config"
	"github.com/Ramo-11/united-masjid-help/models"

	"gorm.io/gorm"
)

// AdminCompleteContributor marks synthetic rows inserted when an admin
// closes out a goal for the week.
const AdminCompleteContributor = "Admin Complete"

// RecordFoodAchievement appends one contribution toward a category goal,
// bucketed into the week containing now.
func RecordFoodAchievement(pantry, category string, amount int, contributor string, now time.Time) (*models.FoodItemAchievement, error) {
	if amount <= 0 {
		return nil, apperrors.Validation("amount must be greater than zero")
	}

	var goal models.FoodItemGoal
	err := config.DB.Where("pantry = ? AND category = ?", pantry, category).First(&goal).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NotFound("food goal")
	}
	if err != nil {
		return nil, err
	}

	row := models.FoodItemAchievement{
		Pantry:          pantry,
		Category:        category,
		Amount:          amount,
		WeekStart:       WeekStartDate(now),
		ContributorName: contributor,
	}
	if err := config.DB.Create(&row).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

// MarkFoodGoalComplete tops the current week's achieved sum up to exactly
// the target with one synthetic row. Already at or past target is a no-op
// and returns nil; the top-up never overshoots.
func MarkFoodGoalComplete(pantry, category string, now time.Time) (*models.FoodItemAchievement, error) {
	var created *models.FoodItemAchievement
	week := WeekStartDate(now)

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		var goal models.FoodItemGoal
		err := tx.Where("pantry = ? AND category = ?", pantry, category).First(&goal).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NotFound("food goal")
		}
		if err != nil {
			return err
		}

		// write-lock the goal row so two admins completing at once cannot
		// both top up
		if err := tx.Model(&goal).Update("updated_at", time.Now()).Error; err != nil {
			return err
		}

		var achieved int
		err = tx.Model(&models.FoodItemAchievement{}).
			Select("COALESCE(SUM(amount), 0)").
			Where("pantry = ? AND category = ? AND week_start = ?", pantry, category, week).
			Scan(&achieved).Error
		if err != nil {
			return err
		}

		remaining := goal.Amount - achieved
		if remaining <= 0 {
			return nil
		}

		row := models.FoodItemAchievement{
			Pantry:          pantry,
			Category:        category,
			Amount:          remaining,
			WeekStart:       week,
			ContributorName: AdminCompleteContributor,
		}
		if err := tx.Create(&row).Error; err != nil {
			return err
		}
		created = &row
		return nil
	})
	return created, err
}
