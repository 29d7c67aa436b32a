package models

import (
    "gorm.io/gorm"
)

// PantryGoal is a pantry's weekly monetary target in dollars. Rows are
// created once at bootstrap and only ever overwritten by admins.
type PantryGoal struct {
    gorm.Model
    Pantry string  `gorm:"uniqueIndex;not null" json:"pantry"`
    Goal   float64 `gorm:"not null;default:500" json:"goal"`
}
