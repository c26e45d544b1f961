package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// APIRoot returns the static welcome payload. No side effects.
func APIRoot(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Welcome to the API root"})
}
