package models

import (
    "gorm.io/gorm"
)

// FoodItemAchievement is one append-only contribution toward a food goal.
// Progress for a week is always the SUM over the (pantry, category,
// week_start) bucket; rows are never rewritten to hold running totals.
type FoodItemAchievement struct {
    gorm.Model
    Pantry          string `gorm:"index:idx_achievement_bucket;not null" json:"pantry"`
    Category        string `gorm:"index:idx_achievement_bucket;not null" json:"category"`
    Amount          int    `gorm:"not null" json:"amount"`
    WeekStart       string `gorm:"index:idx_achievement_bucket;not null" json:"week_start"` // Monday, YYYY-MM-DD
    ContributorName string `json:"contributor_name,omitempty"`
}
