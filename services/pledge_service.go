package services

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/Ramo-11/united-masjid-help/apperrors"
	"github.com/Ramo-11/united-masjid-help/config"
	"github.com/Ramo-11/united-masjid-help/models"

	"gorm.io/gorm"
)

// PledgeRecord is a pledge with its item list decoded.
type PledgeRecord struct {
	ID           uint                `json:"id"`
	Pantry       string              `json:"pantry"`
	Name         string              `json:"name"`
	Email        string              `json:"email"`
	Phone        string              `json:"phone"`
	Items        []models.PledgeItem `json:"items"`
	DeliveryDate string              `json:"date"`
	DeliveryTime string              `json:"time"`
	Notes        string              `json:"notes,omitempty"`
	Completed    bool                `json:"completed"`
	CreatedAt    time.Time           `json:"created_at"`
}

// CreateItemPledge records a volunteer's promise to deliver item
// quantities. Nothing is credited to the week buckets until the pledge is
// marked fulfilled.
func CreateItemPledge(pantry, name, email, phone string, items []models.PledgeItem, deliveryDate, deliveryTime, notes string) (*models.ItemPledge, error) {
	if name == "" || email == "" {
		return nil, apperrors.Validation("name and email are required")
	}
	if len(items) == 0 {
		return nil, apperrors.Validation("a pledge requires at least one item")
	}
	for _, it := range items {
		if it.Category == "" {
			return nil, apperrors.Validation("every pledged item needs a category")
		}
		if it.Amount <= 0 {
			return nil, apperrors.Validation("pledged amount for %q must be greater than zero", it.Category)
		}
	}
	if err := requireConfiguredPantry(pantry); err != nil {
		return nil, err
	}

	raw, err := json.Marshal(items)
	if err != nil {
		return nil, err
	}

	pledge := models.ItemPledge{
		Pantry:       pantry,
		Name:         name,
		Email:        email,
		Phone:        phone,
		Items:        string(raw),
		DeliveryDate: deliveryDate,
		DeliveryTime: deliveryTime,
		Notes:        notes,
	}
	if err := config.DB.Create(&pledge).Error; err != nil {
		return nil, err
	}
	return &pledge, nil
}

// ListItemPledges returns pledges newest first, pending and completed.
func ListItemPledges() ([]PledgeRecord, error) {
	var rows []models.ItemPledge
	if err := config.DB.Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]PledgeRecord, 0, len(rows))
	for i := range rows {
		items, err := rows[i].ItemList()
		if err != nil {
			return nil, err
		}
		out = append(out, PledgeRecord{
			ID:           rows[i].ID,
			Pantry:       rows[i].Pantry,
			Name:         rows[i].Name,
			Email:        rows[i].Email,
			Phone:        rows[i].Phone,
			Items:        items,
			DeliveryDate: rows[i].DeliveryDate,
			DeliveryTime: rows[i].DeliveryTime,
			Notes:        rows[i].Notes,
			Completed:    rows[i].Completed,
			CreatedAt:    rows[i].CreatedAt,
		})
	}
	return out, nil
}

// CompleteItemPledge credits one achievement per pledged item and flips the
// pledge to completed, all in a single transaction. Credits land in the
// week the pledge is fulfilled, not the week of its planned delivery date.
// A pledge completes exactly once; a second call gets Conflict.
func CompleteItemPledge(id uint, now time.Time) error {
	week := WeekStartDate(now)

	return config.DB.Transaction(func(tx *gorm.DB) error {
		var pledge models.ItemPledge
		err := tx.First(&pledge, id).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NotFound("pledge")
		}
		if err != nil {
			return err
		}
		if pledge.Completed {
			return apperrors.Conflict("pledge already completed")
		}

		items, err := pledge.ItemList()
		if err != nil {
			return err
		}
		for _, it := range items {
			if err := creditAchievement(tx, pledge.Pantry, it.Category, it.Amount, week, pledge.Name); err != nil {
				return err
			}
		}

		return tx.Model(&pledge).Update("completed", true).Error
	})
}

// creditAchievement adds amount to the contributor's row in the
// (pantry, category, week) bucket, inserting one when none exists. The
// increment is a single UPDATE so concurrent credits cannot lose writes;
// a duplicate insert under a true race is harmless because progress is
// always the SUM over the bucket.
func creditAchievement(tx *gorm.DB, pantry, category string, amount int, week, contributor string) error {
	if amount <= 0 {
		return apperrors.Validation("achievement amount must be greater than zero")
	}

	res := tx.Model(&models.FoodItemAchievement{}).
		Where("pantry = ? AND category = ? AND week_start = ? AND contributor_name = ?",
			pantry, category, week, contributor).
		Update("amount", gorm.Expr("amount + ?", amount))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected > 0 {
		return nil
	}

	return tx.Create(&models.FoodItemAchievement{
		Pantry:          pantry,
		Category:        category,
		Amount:          amount,
		WeekStart:       week,
		ContributorName: contributor,
	}).Error
}
