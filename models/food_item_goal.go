package models

import (
    "gorm.io/gorm"
)

// FoodItemGoal is a pantry's weekly target for one item category.
// Upserting replaces the target and unit; achievement history is untouched.
type FoodItemGoal struct {
    gorm.Model
    Pantry   string `gorm:"uniqueIndex:idx_pantry_category;not null" json:"pantry"`
    Category string `gorm:"uniqueIndex:idx_pantry_category;not null" json:"category"`
    Amount   int    `gorm:"not null" json:"amount"` // weekly target, in Unit
    Unit     string `gorm:"not null" json:"unit"`
}
