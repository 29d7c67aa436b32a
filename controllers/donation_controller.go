package controllers

import (
	"net/http"
	"time"

	"github.com/Ramo-11/united-masjid-help/models"
	"github.com/Ramo-11/united-masjid-help/services"

	"github.com/gin-gonic/gin"
)

// GetPantries returns every pantry's weekly goal and live total.
func GetPantries(c *gin.Context) {
	pantries, err := services.ListPantryGoals(time.Now())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, pantries)
}

// GetPantryAddresses returns the pantry directory keyed by pantry.
func GetPantryAddresses(c *gin.Context) {
	directory, err := services.PantryDirectory()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, directory)
}

// UpdateGoal overwrites one pantry's weekly monetary goal (admin).
func UpdateGoal(c *gin.Context) {
	var req struct {
		Goal float64 `json:"goal"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	if err := services.SetMonetaryGoal(c.Param("pantry"), req.Goal); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// RecordDonation appends one donation and answers with the refreshed
// weekly total, pushing the same snapshot to live subscribers.
func RecordDonation(c *gin.Context) {
	var req struct {
		Pantry string                `json:"pantry" binding:"required"`
		Amount float64               `json:"amount" binding:"required"`
		Type   string                `json:"type" binding:"required"`
		Items  []models.DonationItem `json:"items"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	now := time.Now()
	if _, err := services.RecordDonation(req.Pantry, req.Amount, req.Type, req.Items); err != nil {
		respondError(c, err)
		return
	}

	current, err := services.CurrentWeekTotal(req.Pantry, now)
	if err != nil {
		respondError(c, err)
		return
	}

	services.Progress.BroadcastProgress(req.Pantry, gin.H{"pantry": req.Pantry, "current": current})

	c.JSON(http.StatusOK, gin.H{"success": true, "current": current})
}

// GetDonationHistory lists donations, optionally filtered by ?pantry=.
func GetDonationHistory(c *gin.Context) {
	donations, err := services.ListDonations(c.Query("pantry"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, donations)
}

// ClearDonations purges the ledger for :pantry, or everything for "all"
// (admin).
func ClearDonations(c *gin.Context) {
	if err := services.ClearDonations(c.Param("pantry")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
