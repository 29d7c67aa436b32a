package models

import (
    "gorm.io/gorm"
)

// ExternalLink is a shared youtube/facebook link shown in the gallery.
type ExternalLink struct {
    gorm.Model
    URL         string `gorm:"not null" json:"url"`
    Title       string `gorm:"not null" json:"title"`
    Description string `json:"description"`
    Type        string `gorm:"not null" json:"type"` // "youtube" | "facebook"
}
