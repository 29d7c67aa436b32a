package services

import (
	"encoding/json"
	"errors"
	"math"
	"time"

	"github.com/Ramo-11/united-masjid-help/apperrors"
	"github.com/Ramo-11/united-masjid-help/config"
	"github.com/Ramo-11/united-masjid-help/models"

	"gorm.io/gorm"
)

const (
	DonationTypeMoney = "money"
	DonationTypeItems = "items"

	// cents-level slack when re-deriving an item donation's total
	amountTolerance = 0.005
)

// DonationRecord is a ledger row with its item detail decoded.
type DonationRecord struct {
	ID        uint                  `json:"id"`
	Pantry    string                `json:"pantry"`
	Amount    float64               `json:"amount"`
	Type      string                `json:"type"`
	Items     []models.DonationItem `json:"items,omitempty"`
	CreatedAt time.Time             `json:"created_at"`
}

// RecordDonation appends one immutable donation row. For item donations the
// amount is checked against the sum of the item values instead of trusting
// the client-side total.
func RecordDonation(pantry string, amount float64, kind string, items []models.DonationItem) (*models.Donation, error) {
	if pantry == "" {
		return nil, apperrors.Validation("pantry is required")
	}
	if amount <= 0 {
		return nil, apperrors.Validation("amount must be greater than zero")
	}

	switch kind {
	case DonationTypeMoney:
		if len(items) > 0 {
			return nil, apperrors.Validation("money donations must not carry item detail")
		}
	case DonationTypeItems:
		if len(items) == 0 {
			return nil, apperrors.Validation("item donations require at least one item")
		}
		var sum float64
		for _, it := range items {
			if it.Name == "" {
				return nil, apperrors.Validation("every item needs a name")
			}
			if it.Value <= 0 {
				return nil, apperrors.Validation("item %q must have a value greater than zero", it.Name)
			}
			sum += it.Value
		}
		if math.Abs(sum-amount) > amountTolerance {
			return nil, apperrors.Validation("amount %.2f does not match item values totaling %.2f", amount, sum)
		}
	default:
		return nil, apperrors.Validation("type must be %q or %q", DonationTypeMoney, DonationTypeItems)
	}

	if err := requireConfiguredPantry(pantry); err != nil {
		return nil, err
	}

	donation := models.Donation{Pantry: pantry, Amount: amount, Type: kind}
	if kind == DonationTypeItems {
		raw, err := json.Marshal(items)
		if err != nil {
			return nil, err
		}
		donation.Items = string(raw)
	}

	if err := config.DB.Create(&donation).Error; err != nil {
		return nil, err
	}
	return &donation, nil
}

// ListDonations returns donation history newest first. Pantry "" or "all"
// means every pantry.
func ListDonations(pantry string) ([]DonationRecord, error) {
	q := config.DB.Order("created_at DESC")
	if pantry != "" && pantry != "all" {
		q = q.Where("pantry = ?", pantry)
	}

	var rows []models.Donation
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]DonationRecord, 0, len(rows))
	for i := range rows {
		items, err := rows[i].ItemList()
		if err != nil {
			return nil, err
		}
		out = append(out, DonationRecord{
			ID:        rows[i].ID,
			Pantry:    rows[i].Pantry,
			Amount:    rows[i].Amount,
			Type:      rows[i].Type,
			Items:     items,
			CreatedAt: rows[i].CreatedAt,
		})
	}
	return out, nil
}

// ClearDonations hard-deletes the ledger for one pantry, or everything when
// pantry is "all". Week totals shrink accordingly; that side effect is the
// point of the admin purge.
func ClearDonations(pantry string) error {
	if pantry == "all" {
		return config.DB.Session(&gorm.Session{AllowGlobalUpdate: true}).
			Unscoped().Delete(&models.Donation{}).Error
	}
	return config.DB.Unscoped().Where("pantry = ?", pantry).Delete(&models.Donation{}).Error
}

// requireConfiguredPantry rejects writes against pantries that were never
// bootstrapped.
func requireConfiguredPantry(pantry string) error {
	var goal models.PantryGoal
	err := config.DB.Where("pantry = ?", pantry).First(&goal).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.NotFound("pantry")
	}
	return err
}
