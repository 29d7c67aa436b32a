package services

import (
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/Ramo-11/united-masjid-help/apperrors"
	"github.com/Ramo-11/united-masjid-help/config"
	"github.com/Ramo-11/united-masjid-help/models"
	"github.com/Ramo-11/united-masjid-help/utils"

	"gorm.io/gorm"
)

// MediaGroupItem is one file inside an album.
type MediaGroupItem struct {
	ID           uint   `json:"id"`
	URL          string `json:"url"`
	ThumbnailURL string `json:"thumbnail_url,omitempty"`
	Type         string `json:"type"`
}

// MediaGroup is an album of files uploaded together.
type MediaGroup struct {
	GroupID     string           `json:"group_id"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	CreatedAt   time.Time        `json:"created_at"`
	Items       []MediaGroupItem `json:"items"`
}

// ListMediaGroups returns the gallery grouped into albums, newest first.
func ListMediaGroups() ([]MediaGroup, error) {
	var rows []models.MediaItem
	if err := config.DB.Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, err
	}

	var groups []MediaGroup
	index := map[string]int{}
	for _, r := range rows {
		i, ok := index[r.GroupID]
		if !ok {
			groups = append(groups, MediaGroup{
				GroupID:     r.GroupID,
				Title:       r.Title,
				Description: r.Description,
				CreatedAt:   r.CreatedAt,
			})
			i = len(groups) - 1
			index[r.GroupID] = i
		}
		groups[i].Items = append(groups[i].Items, MediaGroupItem{
			ID:           r.ID,
			URL:          r.URL,
			ThumbnailURL: r.ThumbnailURL,
			Type:         r.Type,
		})
	}
	return groups, nil
}

// UploadMediaGroup pushes each base64 payload to S3 and records the album
// rows in one transaction. A storage failure before the insert leaves no
// dangling rows.
func UploadMediaGroup(title, description string, payloads []string) ([]MediaGroupItem, error) {
	if len(payloads) == 0 {
		return nil, apperrors.Validation("no files provided")
	}

	groupID := strconv.FormatInt(time.Now().UnixMilli(), 10)

	var rows []models.MediaItem
	for _, data := range payloads {
		url, key, contentType, err := utils.UploadBase64MediaToS3(data, "gallery")
		if err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternal, err)
		}
		mediaType := "image"
		if strings.HasPrefix(contentType, "video/") {
			mediaType = "video"
		}
		rows = append(rows, models.MediaItem{
			StorageKey:  key,
			URL:         url,
			Type:        mediaType,
			Title:       title,
			Description: description,
			GroupID:     groupID,
		})
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		for i := range rows {
			if err := tx.Create(&rows[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	out := make([]MediaGroupItem, 0, len(rows))
	for _, r := range rows {
		out = append(out, MediaGroupItem{ID: r.ID, URL: r.URL, Type: r.Type})
	}
	return out, nil
}

// DeleteMediaGroup removes an album's stored objects and rows. Object
// deletes are best effort; the rows go in one transaction either way.
func DeleteMediaGroup(groupID string) error {
	var rows []models.MediaItem
	if err := config.DB.Where("group_id = ?", groupID).Find(&rows).Error; err != nil {
		return err
	}
	if len(rows) == 0 {
		return apperrors.NotFound("media group")
	}

	for _, r := range rows {
		if err := utils.DeleteFromS3(r.StorageKey); err != nil {
			log.Printf("leaving orphaned object %s: %v", r.StorageKey, err)
		}
	}

	return config.DB.Unscoped().Where("group_id = ?", groupID).Delete(&models.MediaItem{}).Error
}
