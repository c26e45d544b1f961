package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"napoli_club_backend/internal/services"
	"napoli_club_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// AuthHandler holds the authentication service.
type AuthHandler struct {
	authService services.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(as services.AuthService) *AuthHandler {
	return &AuthHandler{authService: as}
}

// Login handles user login: authenticate the credentials and return the
// user's token with the derived role and display name. Wrong username and
// wrong password both yield the same generic 400.
func (h *AuthHandler) Login(c *gin.Context) {
	var req services.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "Login: Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid credentials"})
		return
	}

	resp, err := h.authService.Login(req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid credentials"})
			return
		}
		utils.LogError(err, "Login: Error from authService.Login")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to login.", "Internal error"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// RegisterPlayerAsUser creates a login account for a player. Staff only;
// the route is gated by TokenAuth + StaffOnly. An unexpected failure here
// is the one path that returns the raw error text to the caller.
func (h *AuthHandler) RegisterPlayerAsUser(c *gin.Context) {
	idStr := c.Param("id")
	playerID, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid player ID format.", err.Error()))
		return
	}

	err = h.authService.RegisterPlayerAsUser(playerID)
	if err != nil {
		if errors.Is(err, services.ErrPlayerNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Player not found."})
			return
		}
		if errors.Is(err, services.ErrUserAlreadyExists) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "User already exists for this player."})
			return
		}
		utils.LogError(err, "RegisterPlayerAsUser: Error from authService.RegisterPlayerAsUser for ID "+idStr)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "User registered successfully."})
}
