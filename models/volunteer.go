package models

import (
    "gorm.io/gorm"
)

// Volunteer is one signup against a slot. Deleting a slot removes its
// signups in the same transaction.
type Volunteer struct {
    gorm.Model
    SlotID string        `gorm:"index;not null" json:"slotId"`
    Slot   VolunteerSlot `gorm:"foreignKey:SlotID;constraint:OnDelete:CASCADE" json:"-"`
    Name   string        `gorm:"not null" json:"name"`
    Email  string        `gorm:"not null" json:"email"`
    Phone  string        `gorm:"not null" json:"phone"`
}
