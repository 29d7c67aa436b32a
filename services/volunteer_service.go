package services

import (
	"errors"
	"time"

	"github.com/Ramo-11/united-masjid-help/apperrors"
	"github.com/Ramo-11/united-masjid-help/config"
	"github.com/Ramo-11/united-masjid-help/models"

	"gorm.io/gorm"
)

// SlotWithCount is a slot with its live signup count for listings.
type SlotWithCount struct {
	models.VolunteerSlot
	SignupCount int64 `json:"signupCount"`
}

// VolunteerWithSlot is a signup joined with its slot's schedule info for
// the admin roster.
type VolunteerWithSlot struct {
	ID        uint      `json:"id"`
	SlotID    string    `json:"slotId"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"created_at"`
	Date      string    `json:"date"`
	Time      string    `json:"time"`
	Location  string    `json:"location"`
	Type      string    `json:"type"`
}

// ListSlots returns slots ordered by date with signup counts. The public
// listing excludes completed slots; the admin listing includes them.
func ListSlots(includeCompleted bool) ([]SlotWithCount, error) {
	q := config.DB.Order("date ASC")
	if !includeCompleted {
		q = q.Where("completed = ?", false)
	}

	var slots []models.VolunteerSlot
	if err := q.Find(&slots).Error; err != nil {
		return nil, err
	}

	out := make([]SlotWithCount, 0, len(slots))
	for _, s := range slots {
		var count int64
		if err := config.DB.Model(&models.Volunteer{}).Where("slot_id = ?", s.ID).Count(&count).Error; err != nil {
			return nil, err
		}
		out = append(out, SlotWithCount{VolunteerSlot: s, SignupCount: count})
	}
	return out, nil
}

// AddSlot creates a new slot.
func AddSlot(slot models.VolunteerSlot) error {
	if err := validateSlotFields(slot); err != nil {
		return err
	}
	if slot.ID == "" {
		return apperrors.Validation("slot id is required")
	}
	err := config.DB.Create(&slot).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return apperrors.Conflict("slot already exists")
	}
	return err
}

// UpdateSlot overwrites a slot's schedule fields. The completed flag is not
// touched here; MarkSlotComplete owns that transition.
func UpdateSlot(id string, slot models.VolunteerSlot) error {
	if err := validateSlotFields(slot); err != nil {
		return err
	}
	res := config.DB.Model(&models.VolunteerSlot{}).Where("id = ?", id).Updates(map[string]any{
		"date":           slot.Date,
		"time":           slot.Time,
		"location":       slot.Location,
		"address":        slot.Address,
		"type":           slot.Type,
		"max_volunteers": slot.MaxVolunteers,
		"pantry":         slot.Pantry,
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperrors.NotFound("slot")
	}
	return nil
}

// DeleteSlot removes a slot and cascades its signups in one transaction.
func DeleteSlot(id string) error {
	return config.DB.Transaction(func(tx *gorm.DB) error {
		res := tx.Unscoped().Where("id = ?", id).Delete(&models.VolunteerSlot{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return apperrors.NotFound("slot")
		}
		return tx.Unscoped().Where("slot_id = ?", id).Delete(&models.Volunteer{}).Error
	})
}

// MarkSlotComplete archives a slot. One-way; completed slots never reopen.
func MarkSlotComplete(id string) error {
	res := config.DB.Model(&models.VolunteerSlot{}).Where("id = ?", id).Update("completed", true)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperrors.NotFound("slot")
	}
	return nil
}

// RegisterVolunteer signs someone up against a slot, holding the capacity
// invariant under concurrency. The transaction's first statement is a write
// on the slot row, which takes its row lock, so simultaneous registrations
// for the same slot serialize before the count below instead of both
// passing a stale check.
func RegisterVolunteer(slotID, name, email, phone string) (*models.Volunteer, error) {
	if slotID == "" {
		return nil, apperrors.Validation("slotId is required")
	}
	if name == "" || email == "" || phone == "" {
		return nil, apperrors.Validation("name, email and phone are required")
	}

	var signup *models.Volunteer
	err := config.DB.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.VolunteerSlot{}).Where("id = ?", slotID).Update("updated_at", time.Now())
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return apperrors.NotFound("slot")
		}

		var slot models.VolunteerSlot
		if err := tx.Where("id = ?", slotID).First(&slot).Error; err != nil {
			return err
		}
		if slot.Completed {
			return apperrors.Conflict("slot is no longer active")
		}

		var count int64
		if err := tx.Model(&models.Volunteer{}).Where("slot_id = ?", slotID).Count(&count).Error; err != nil {
			return err
		}
		if count >= int64(slot.MaxVolunteers) {
			return apperrors.ErrCapacityExceeded
		}

		rec := models.Volunteer{SlotID: slotID, Name: name, Email: email, Phone: phone}
		if err := tx.Create(&rec).Error; err != nil {
			return err
		}
		signup = &rec
		return nil
	})
	if err != nil {
		return nil, err
	}
	return signup, nil
}

// ListVolunteers returns every signup joined with its slot for the admin
// roster, ordered by slot date then signup time.
func ListVolunteers() ([]VolunteerWithSlot, error) {
	var rows []VolunteerWithSlot
	err := config.DB.Model(&models.Volunteer{}).
		Select("volunteers.id, volunteers.slot_id, volunteers.name, volunteers.email, volunteers.phone, volunteers.created_at, volunteer_slots.date, volunteer_slots.time, volunteer_slots.location, volunteer_slots.type").
		Joins("JOIN volunteer_slots ON volunteer_slots.id = volunteers.slot_id").
		Order("volunteer_slots.date ASC, volunteers.created_at ASC").
		Scan(&rows).Error
	return rows, err
}

// ClearSignups removes signups for one slot, or every signup when slotID is
// "all". Slots themselves are untouched.
func ClearSignups(slotID string) error {
	if slotID == "all" {
		return config.DB.Session(&gorm.Session{AllowGlobalUpdate: true}).
			Unscoped().Delete(&models.Volunteer{}).Error
	}
	return config.DB.Unscoped().Where("slot_id = ?", slotID).Delete(&models.Volunteer{}).Error
}

func validateSlotFields(slot models.VolunteerSlot) error {
	if slot.Date == "" || slot.Time == "" || slot.Location == "" || slot.Type == "" {
		return apperrors.Validation("date, time, location and type are required")
	}
	if slot.MaxVolunteers <= 0 {
		return apperrors.Validation("maxVolunteers must be greater than zero")
	}
	return nil
}
