package controllers

import (
	"net/http"
	"time"

	"github.com/Ramo-11/united-masjid-help/services"

	"github.com/gin-gonic/gin"
)

// GetFoodGoals lists a pantry's category goals with this week's progress.
func GetFoodGoals(c *gin.Context) {
	goals, err := services.GetFoodItemGoals(c.Param("pantry"), time.Now())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, goals)
}

// SetFoodGoal upserts one category goal for a pantry (admin).
func SetFoodGoal(c *gin.Context) {
	var req struct {
		Category string `json:"category" binding:"required"`
		Amount   int    `json:"amount"`
		Unit     string `json:"unit" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	if err := services.SetFoodItemGoal(c.Param("pantry"), req.Category, req.Amount, req.Unit); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// DeleteFoodGoal removes one category goal; achievement history stays
// (admin).
func DeleteFoodGoal(c *gin.Context) {
	if err := services.DeleteFoodItemGoal(c.Param("pantry"), c.Param("category")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// RecordFoodAchievement appends one contribution toward a category goal
// (admin).
func RecordFoodAchievement(c *gin.Context) {
	var req struct {
		Pantry      string `json:"pantry" binding:"required"`
		Category    string `json:"category" binding:"required"`
		Amount      int    `json:"amount" binding:"required"`
		Contributor string `json:"contributor"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	row, err := services.RecordFoodAchievement(req.Pantry, req.Category, req.Amount, req.Contributor, time.Now())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "achievement": row})
}

// CompleteFoodGoal tops the category up to exactly its target for this
// week (admin).
func CompleteFoodGoal(c *gin.Context) {
	row, err := services.MarkFoodGoalComplete(c.Param("pantry"), c.Param("category"), time.Now())
	if err != nil {
		respondError(c, err)
		return
	}
	if row == nil {
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "goal already met"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "achievement": row})
}
