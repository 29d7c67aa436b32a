package controllers

import (
	"errors"
	"net/http"

	"github.com/Ramo-11/united-masjid-help/apperrors"

	"github.com/gin-gonic/gin"
)

// respondError maps service errors to status codes. Callers only need to
// distinguish the typed taxonomy; anything else is a 500.
func respondError(c *gin.Context, err error) {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		c.JSON(appErr.StatusCode, gin.H{"error": appErr.Message, "code": appErr.Code})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}

// respondBindingError maps a body-binding failure to a 400 with field
// detail where the validator provides it.
func respondBindingError(c *gin.Context, err error) {
	respondError(c, apperrors.FromBinding(err))
}
