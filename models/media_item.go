package models

import (
    "gorm.io/gorm"
)

// MediaItem is one uploaded gallery file. Files uploaded together share a
// GroupID and are listed as one album.
type MediaItem struct {
    gorm.Model
    StorageKey   string `gorm:"not null" json:"-"` // S3 object key
    URL          string `gorm:"not null" json:"url"`
    ThumbnailURL string `json:"thumbnail_url,omitempty"`
    Type         string `gorm:"not null" json:"type"` // "image" | "video"
    Title        string `json:"title"`
    Description  string `json:"description"`
    GroupID      string `gorm:"index;not null" json:"group_id"`
}
