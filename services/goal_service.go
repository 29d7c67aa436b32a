package services

import (
	"errors"
	"time"

	"github.com/Ramo-11/united-masjid-help/apperrors"
	"github.com/Ramo-11/united-masjid-help/config"
	"github.com/Ramo-11/united-masjid-help/models"

	"gorm.io/gorm"
)

// PantryProgress is one pantry's weekly goal next to its live total.
type PantryProgress struct {
	Pantry  string  `json:"pantry"`
	Goal    float64 `json:"goal"`
	Current float64 `json:"current"`
}

// FoodGoalProgress is one category goal next to this week's achieved sum.
type FoodGoalProgress struct {
	Category string `json:"category"`
	Amount   int    `json:"amount"`
	Unit     string `json:"unit"`
	Achieved int    `json:"achieved"`
}

// CurrentWeekTotal sums the donation ledger for the week containing now.
// Recomputed on every call; nothing is cached.
func CurrentWeekTotal(pantry string, now time.Time) (float64, error) {
	start := StartOfWeek(now)
	end := start.AddDate(0, 0, 7)

	var total float64
	err := config.DB.Model(&models.Donation{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("pantry = ? AND created_at >= ? AND created_at < ?", pantry, start, end).
		Scan(&total).Error
	return total, err
}

// ListPantryGoals returns every configured pantry with its goal and
// current-week total.
func ListPantryGoals(now time.Time) ([]PantryProgress, error) {
	var goals []models.PantryGoal
	if err := config.DB.Order("pantry ASC").Find(&goals).Error; err != nil {
		return nil, err
	}

	out := make([]PantryProgress, 0, len(goals))
	for _, g := range goals {
		current, err := CurrentWeekTotal(g.Pantry, now)
		if err != nil {
			return nil, err
		}
		out = append(out, PantryProgress{Pantry: g.Pantry, Goal: g.Goal, Current: current})
	}
	return out, nil
}

// SetMonetaryGoal overwrites a pantry's weekly goal. Idempotent. The UI
// enforces a positive goal but the service re-checks, it does not trust
// the caller.
func SetMonetaryGoal(pantry string, goal float64) error {
	if goal < 0 {
		return apperrors.Validation("goal must be zero or greater")
	}
	res := config.DB.Model(&models.PantryGoal{}).Where("pantry = ?", pantry).Update("goal", goal)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperrors.NotFound("pantry")
	}
	return nil
}

// SetFoodItemGoal upserts the target for (pantry, category). An existing
// goal keeps its row; only target and unit change, so achievement history
// for the category is preserved.
func SetFoodItemGoal(pantry, category string, amount int, unit string) error {
	if pantry == "" || category == "" {
		return apperrors.Validation("pantry and category are required")
	}
	if amount < 0 {
		return apperrors.Validation("amount must be zero or greater")
	}
	if unit == "" {
		return apperrors.Validation("unit is required")
	}

	var goal models.FoodItemGoal
	err := config.DB.Where("pantry = ? AND category = ?", pantry, category).First(&goal).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		goal = models.FoodItemGoal{Pantry: pantry, Category: category, Amount: amount, Unit: unit}
		return config.DB.Create(&goal).Error
	}
	if err != nil {
		return err
	}

	goal.Amount = amount
	goal.Unit = unit
	return config.DB.Save(&goal).Error
}

// DeleteFoodItemGoal removes the goal row. Achievements are historical fact
// and survive; with no goal left the category simply stops appearing in
// GetFoodItemGoals. Hard delete so the (pantry, category) unique index
// stays reusable.
func DeleteFoodItemGoal(pantry, category string) error {
	res := config.DB.Unscoped().
		Where("pantry = ? AND category = ?", pantry, category).
		Delete(&models.FoodItemGoal{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperrors.NotFound("food goal")
	}
	return nil
}

// GetFoodItemGoals lists a pantry's category goals with this week's
// achieved sums. Goals with no achievement rows report zero.
func GetFoodItemGoals(pantry string, now time.Time) ([]FoodGoalProgress, error) {
	var goals []models.FoodItemGoal
	if err := config.DB.Where("pantry = ?", pantry).Order("category ASC").Find(&goals).Error; err != nil {
		return nil, err
	}

	type categorySum struct {
		Category string
		Total    int
	}
	var sums []categorySum
	err := config.DB.Model(&models.FoodItemAchievement{}).
		Select("category, COALESCE(SUM(amount), 0) AS total").
		Where("pantry = ? AND week_start = ?", pantry, WeekStartDate(now)).
		Group("category").
		Scan(&sums).Error
	if err != nil {
		return nil, err
	}

	achieved := make(map[string]int, len(sums))
	for _, s := range sums {
		achieved[s.Category] = s.Total
	}

	out := make([]FoodGoalProgress, 0, len(goals))
	for _, g := range goals {
		out = append(out, FoodGoalProgress{
			Category: g.Category,
			Amount:   g.Amount,
			Unit:     g.Unit,
			Achieved: achieved[g.Category],
		})
	}
	return out, nil
}
