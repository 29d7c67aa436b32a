package models

import (
    "encoding/json"

    "gorm.io/gorm"
)

// Donation is one immutable ledger entry. Weekly totals are always derived
// by summing these rows, never stored.
type Donation struct {
    gorm.Model
    Pantry string  `gorm:"index;not null" json:"pantry"`
    Amount float64 `gorm:"not null" json:"amount"`
    Type   string  `gorm:"not null" json:"type"` // "money" | "items"
    Items  string  `gorm:"type:text" json:"-"`   // JSON-encoded []DonationItem, empty for money
}

// DonationItem is one line of an item donation, stored inside Donation.Items.
type DonationItem struct {
    Name  string  `json:"name"`
    Value float64 `json:"value"`
}

// ItemList decodes the stored item detail. Empty for money donations.
func (d *Donation) ItemList() ([]DonationItem, error) {
    if d.Items == "" {
        return nil, nil
    }
    var items []DonationItem
    if err := json.Unmarshal([]byte(d.Items), &items); err != nil {
        return nil, err
    }
    return items, nil
}
