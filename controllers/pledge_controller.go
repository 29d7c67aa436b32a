package controllers

import (
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/Ramo-11/united-masjid-help/apperrors"
	"github.com/Ramo-11/united-masjid-help/models"
	"github.com/Ramo-11/united-masjid-help/services"
	"github.com/Ramo-11/united-masjid-help/utils"

	"github.com/gin-gonic/gin"
)

// CreateItemPledge records a promise to deliver item quantities to a
// pantry.
func CreateItemPledge(c *gin.Context) {
	var req struct {
		Pantry string              `json:"pantry" binding:"required"`
		Name   string              `json:"name" binding:"required"`
		Email  string              `json:"email" binding:"required,email"`
		Phone  string              `json:"phone"`
		Items  []models.PledgeItem `json:"items" binding:"required"`
		Date   string              `json:"date"`
		Time   string              `json:"time"`
		Notes  string              `json:"notes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	pledge, err := services.CreateItemPledge(req.Pantry, req.Name, req.Email, req.Phone, req.Items, req.Date, req.Time, req.Notes)
	if err != nil {
		respondError(c, err)
		return
	}

	go func() {
		directory, err := services.PantryDirectory()
		if err != nil {
			return
		}
		pantryName := req.Pantry
		if info, ok := directory[req.Pantry]; ok {
			pantryName = info.Name
		}
		if err := utils.SendPledgeConfirmation(req.Email, req.Name, pantryName, req.Date); err != nil {
			log.Printf("pledge confirmation email failed: %v", err)
		}
	}()

	c.JSON(http.StatusOK, gin.H{"success": true, "pledge": pledge})
}

// GetItemPledges lists pledges for the admin dashboard.
func GetItemPledges(c *gin.Context) {
	pledges, err := services.ListItemPledges()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, pledges)
}

// CompleteItemPledge marks a pledge fulfilled, crediting its items to the
// current week (admin).
func CompleteItemPledge(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		respondError(c, apperrors.Validation("pledge id must be numeric"))
		return
	}

	if err := services.CompleteItemPledge(uint(id), time.Now()); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
