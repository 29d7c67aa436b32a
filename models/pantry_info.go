package models

import (
    "gorm.io/gorm"
)

// PantryInfo is the authoritative directory record for one pantry site.
// Every view that needs a pantry's display name or address reads this table
// instead of re-declaring literals.
type PantryInfo struct {
    gorm.Model
    Pantry  string `gorm:"uniqueIndex;not null" json:"pantry"`
    Name    string `gorm:"not null" json:"name"`
    Address string `json:"address"`
    Hours   string `json:"hours"`
    Notes   string `json:"notes,omitempty"`
}
