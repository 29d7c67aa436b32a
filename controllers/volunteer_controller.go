package controllers

import (
	"log"
	"net/http"

	"github.com/Ramo-11/united-masjid-help/models"
	"github.com/Ramo-11/united-masjid-help/services"
	"github.com/Ramo-11/united-masjid-help/utils"

	"github.com/gin-gonic/gin"
)

// GetSlots lists open slots with signup counts. Completed slots stay out
// of the public view.
func GetSlots(c *gin.Context) {
	slots, err := services.ListSlots(false)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, slots)
}

// GetSlotsAdmin lists every slot including completed ones (admin).
func GetSlotsAdmin(c *gin.Context) {
	slots, err := services.ListSlots(true)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, slots)
}

type slotRequest struct {
	ID            string `json:"id"`
	Date          string `json:"date" binding:"required"`
	Time          string `json:"time" binding:"required"`
	Location      string `json:"location" binding:"required"`
	Address       string `json:"address"`
	Type          string `json:"type" binding:"required"`
	MaxVolunteers int    `json:"maxVolunteers" binding:"required"`
	Pantry        string `json:"pantry"`
}

func (r slotRequest) toModel() models.VolunteerSlot {
	return models.VolunteerSlot{
		ID:            r.ID,
		Date:          r.Date,
		Time:          r.Time,
		Location:      r.Location,
		Address:       r.Address,
		Type:          r.Type,
		MaxVolunteers: r.MaxVolunteers,
		Pantry:        r.Pantry,
	}
}

// AddSlot creates a slot (admin).
func AddSlot(c *gin.Context) {
	var req slotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	if err := services.AddSlot(req.toModel()); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// UpdateSlot overwrites a slot's schedule fields (admin).
func UpdateSlot(c *gin.Context) {
	var req slotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	if err := services.UpdateSlot(c.Param("id"), req.toModel()); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// DeleteSlot removes a slot and its signups (admin).
func DeleteSlot(c *gin.Context) {
	if err := services.DeleteSlot(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// CompleteSlot archives a slot (admin). One-way.
func CompleteSlot(c *gin.Context) {
	if err := services.MarkSlotComplete(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// RegisterVolunteer signs a volunteer up against a slot. A full slot gets
// SLOT_FULL, never a silent insert.
func RegisterVolunteer(c *gin.Context) {
	var req struct {
		SlotID string `json:"slotId" binding:"required"`
		Name   string `json:"name" binding:"required"`
		Email  string `json:"email" binding:"required,email"`
		Phone  string `json:"phone" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	signup, err := services.RegisterVolunteer(req.SlotID, req.Name, req.Email, req.Phone)
	if err != nil {
		respondError(c, err)
		return
	}

	// best effort; a mail hiccup never fails a successful signup
	go func(slotID string) {
		slots, err := services.ListSlots(true)
		if err != nil {
			return
		}
		for _, s := range slots {
			if s.ID == slotID {
				if err := utils.SendSignupConfirmation(req.Email, req.Name, s.Date, s.Time, s.Location); err != nil {
					log.Printf("signup confirmation email failed: %v", err)
				}
				return
			}
		}
	}(signup.SlotID)

	c.JSON(http.StatusOK, gin.H{"success": true, "volunteer": signup})
}

// GetVolunteers returns the signup roster joined with slot info (admin).
func GetVolunteers(c *gin.Context) {
	volunteers, err := services.ListVolunteers()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, volunteers)
}

// ClearVolunteers removes signups for :slotId, or every signup for "all"
// (admin).
func ClearVolunteers(c *gin.Context) {
	if err := services.ClearSignups(c.Param("slotId")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
