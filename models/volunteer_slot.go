package models

import (
    "time"
)

// VolunteerSlot is a scheduled opportunity with fixed capacity. IDs are
// client-generated strings. Completed slots stay around for history but are
// hidden from public listings.
type VolunteerSlot struct {
    ID            string    `gorm:"primaryKey" json:"id"`
    Date          string    `gorm:"index;not null" json:"date"` // YYYY-MM-DD
    Time          string    `gorm:"not null" json:"time"`
    Location      string    `gorm:"not null" json:"location"`
    Address       string    `json:"address"`
    Type          string    `gorm:"not null" json:"type"`
    MaxVolunteers int       `gorm:"not null" json:"maxVolunteers"`
    Pantry        string    `json:"pantry,omitempty"` // only meaningful for item-donation slots
    Completed     bool      `gorm:"not null;default:false" json:"completed"`
    CreatedAt     time.Time `json:"created_at"`
    UpdatedAt     time.Time `json:"-"`
}
