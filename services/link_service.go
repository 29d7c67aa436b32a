package services

import (
	"fmt"
	"net/url"
	"regexp"
	"time"

	"github.com/Ramo-11/united-masjid-help/apperrors"
	"github.com/Ramo-11/united-masjid-help/config"
	"github.com/Ramo-11/united-masjid-help/models"
)

var youtubeIDPattern = regexp.MustCompile(`(?:youtu\.be/|v/|u/\w/|embed/|watch\?v=|&v=)([^#&?]{11})`)

// LinkRecord is an external link with its embed URLs resolved.
type LinkRecord struct {
	ID          uint      `json:"id"`
	URL         string    `json:"url"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Type        string    `json:"type"`
	EmbedURL    string    `json:"embedUrl,omitempty"`
	Thumbnail   string    `json:"thumbnail,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// ListExternalLinks returns gallery links newest first with youtube and
// facebook embed enrichment.
func ListExternalLinks() ([]LinkRecord, error) {
	var rows []models.ExternalLink
	if err := config.DB.Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]LinkRecord, 0, len(rows))
	for _, r := range rows {
		rec := LinkRecord{
			ID:          r.ID,
			URL:         r.URL,
			Title:       r.Title,
			Description: r.Description,
			Type:        r.Type,
			CreatedAt:   r.CreatedAt,
		}
		switch r.Type {
		case "youtube":
			if id := youtubeVideoID(r.URL); id != "" {
				rec.EmbedURL = "https://www.youtube.com/embed/" + id
				rec.Thumbnail = fmt.Sprintf("https://img.youtube.com/vi/%s/maxresdefault.jpg", id)
			}
		case "facebook":
			rec.EmbedURL = fmt.Sprintf(
				"https://www.facebook.com/plugins/post.php?href=%s&width=500&show_text=true",
				url.QueryEscape(r.URL),
			)
		}
		out = append(out, rec)
	}
	return out, nil
}

// AddExternalLink stores a new youtube or facebook link.
func AddExternalLink(rawURL, title, description, linkType string) (*models.ExternalLink, error) {
	if rawURL == "" || title == "" {
		return nil, apperrors.Validation("url and title are required")
	}
	if linkType != "youtube" && linkType != "facebook" {
		return nil, apperrors.Validation("type must be youtube or facebook")
	}
	if _, err := url.ParseRequestURI(rawURL); err != nil {
		return nil, apperrors.Validation("url is not valid")
	}

	link := models.ExternalLink{URL: rawURL, Title: title, Description: description, Type: linkType}
	if err := config.DB.Create(&link).Error; err != nil {
		return nil, err
	}
	return &link, nil
}

// DeleteExternalLink removes one link.
func DeleteExternalLink(id uint) error {
	res := config.DB.Unscoped().Delete(&models.ExternalLink{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperrors.NotFound("external link")
	}
	return nil
}

func youtubeVideoID(rawURL string) string {
	m := youtubeIDPattern.FindStringSubmatch(rawURL)
	if len(m) == 2 {
		return m[1]
	}
	return ""
}
