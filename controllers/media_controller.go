package controllers

import (
	"net/http"
	"strconv"

	"github.com/Ramo-11/united-masjid-help/apperrors"
	"github.com/Ramo-11/united-masjid-help/services"

	"github.com/gin-gonic/gin"
)

// GetMedia returns the gallery grouped into albums.
func GetMedia(c *gin.Context) {
	groups, err := services.ListMediaGroups()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, groups)
}

// UploadMedia stores a batch of base64 files as one album (admin).
func UploadMedia(c *gin.Context) {
	var req struct {
		Title       string   `json:"title"`
		Description string   `json:"description"`
		Files       []string `json:"files" binding:"required"` // "data:<mime>;base64,<data>"
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	media, err := services.UploadMediaGroup(req.Title, req.Description, req.Files)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "media": media})
}

// DeleteMediaGroup removes one album and its stored files (admin).
func DeleteMediaGroup(c *gin.Context) {
	if err := services.DeleteMediaGroup(c.Param("groupId")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// GetExternalLinks lists shared youtube/facebook links with embed URLs.
func GetExternalLinks(c *gin.Context) {
	links, err := services.ListExternalLinks()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, links)
}

// AddExternalLink stores a new shared link (admin).
func AddExternalLink(c *gin.Context) {
	var req struct {
		URL         string `json:"url" binding:"required"`
		Title       string `json:"title" binding:"required"`
		Description string `json:"description"`
		Type        string `json:"type" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	link, err := services.AddExternalLink(req.URL, req.Title, req.Description, req.Type)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "link": link})
}

// DeleteExternalLink removes one shared link (admin).
func DeleteExternalLink(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		respondError(c, apperrors.Validation("link id must be numeric"))
		return
	}

	if err := services.DeleteExternalLink(uint(id)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
