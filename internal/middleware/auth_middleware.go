package middleware

import (
	"net/http"
	"strings"

	"napoli_club_backend/internal/services"

	"github.com/gin-gonic/gin"
)

// Context keys set by TokenAuth for downstream handlers.
const (
	ContextUserID   = "userID"
	ContextUsername = "username"
	ContextIsStaff  = "isStaff"
)

// TokenAuth creates a Gin middleware that authenticates requests with an
// opaque bearer token. Both "Bearer <key>" and the legacy "Token <key>"
// header forms are accepted.
func TokenAuth(authService services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		scheme := ""
		if len(parts) == 2 {
			scheme = strings.ToLower(parts[0])
		}
		if scheme != "bearer" && scheme != "token" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header format. Use Bearer <token>"})
			c.Abort()
			return
		}

		user, err := authService.FindUserByToken(parts[1])
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			c.Abort()
			return
		}

		// Set user information in the context for downstream handlers
		c.Set(ContextUserID, user.ID)
		c.Set(ContextUsername, user.Username)
		c.Set(ContextIsStaff, user.IsStaff)

		c.Next()
	}
}

// StaffOnly creates a Gin middleware that rejects non-staff callers. It
// must run after TokenAuth.
func StaffOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		isStaffRaw, exists := c.Get(ContextIsStaff)
		if !exists {
			c.JSON(http.StatusForbidden, gin.H{"error": "User role not found. Ensure TokenAuth runs first."})
			c.Abort()
			return
		}

		isStaff, ok := isStaffRaw.(bool)
		if !ok || !isStaff {
			c.JSON(http.StatusForbidden, gin.H{"error": "You do not have permission to perform this action."})
			c.Abort()
			return
		}

		c.Next()
	}
}
