package controllers

import (
	"net/http"

	"github.com/Ramo-11/united-masjid-help/services"

	"github.com/gin-gonic/gin"
)

// VerifyAdmin checks the shared admin secret and answers with a signed
// token the dashboard sends on later requests.
func VerifyAdmin(c *gin.Context) {
	var req struct {
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	token, err := services.AuthenticateAdmin(req.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid password"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "token": token})
}

// CheckAdmin reports whether the presented token is valid. Reaching this
// handler means the middleware already accepted it.
func CheckAdmin(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"authenticated": true})
}

// Logout exists for dashboard compatibility. Tokens are stateless; the
// client discards its copy.
func Logout(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"success": true})
}
