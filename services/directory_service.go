package services

import (
	"github.com/Ramo-11/united-masjid-help/config"
	"github.com/Ramo-11/united-masjid-help/models"
)

// PantryDirectory returns the authoritative per-pantry site records keyed
// by pantry, matching the shape the public pages consume.
func PantryDirectory() (map[string]models.PantryInfo, error) {
	var rows []models.PantryInfo
	if err := config.DB.Order("pantry ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make(map[string]models.PantryInfo, len(rows))
	for _, r := range rows {
		out[r.Pantry] = r
	}
	return out, nil
}
