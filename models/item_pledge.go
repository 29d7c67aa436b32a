package models

import (
    "encoding/json"

    "gorm.io/gorm"
)

// ItemPledge is a volunteer's promise to deliver specific item quantities.
// Completing a pledge credits achievements for the week it is fulfilled in,
// not the week of the planned delivery date.
type ItemPledge struct {
    gorm.Model
    Pantry       string `gorm:"index;not null" json:"pantry"`
    Name         string `gorm:"not null" json:"name"`
    Email        string `gorm:"not null" json:"email"`
    Phone        string `json:"phone"`
    Items        string `gorm:"type:text;not null" json:"-"` // JSON-encoded []PledgeItem
    DeliveryDate string `json:"date"`                        // YYYY-MM-DD
    DeliveryTime string `json:"time"`
    Notes        string `json:"notes,omitempty"`
    Completed    bool   `gorm:"not null;default:false" json:"completed"`
}

// PledgeItem is one category/amount pair inside a pledge.
type PledgeItem struct {
    Category string `json:"category"`
    Amount   int    `json:"amount"`
    Unit     string `json:"unit"`
}

// ItemList decodes the stored pledge items.
func (p *ItemPledge) ItemList() ([]PledgeItem, error) {
    var items []PledgeItem
    if err := json.Unmarshal([]byte(p.Items), &items); err != nil {
        return nil, err
    }
    return items, nil
}
