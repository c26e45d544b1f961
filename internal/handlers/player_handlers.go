package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"napoli_club_backend/internal/models"
	"napoli_club_backend/internal/services"
	"napoli_club_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// PlayerHandler holds the player service.
type PlayerHandler struct {
	playerService services.PlayerService
}

// NewPlayerHandler creates a new PlayerHandler.
func NewPlayerHandler(ps services.PlayerService) *PlayerHandler {
	return &PlayerHandler{playerService: ps}
}

// respondFieldErrors writes the field->messages validation object with a
// 400 status. Duplicate id_number failures take the same shape.
func respondFieldErrors(c *gin.Context, fieldErrs services.FieldErrors) {
	c.JSON(http.StatusBadRequest, fieldErrs)
}

// CreatePlayer handles the creation of a new player.
func (h *PlayerHandler) CreatePlayer(c *gin.Context) {
	var req services.CreatePlayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "CreatePlayer: Failed to bind JSON")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	player, err := h.playerService.CreatePlayer(req)
	if err != nil {
		var fieldErrs services.FieldErrors
		if errors.As(err, &fieldErrs) {
			respondFieldErrors(c, fieldErrs)
			return
		}
		utils.LogError(err, "CreatePlayer: Error from playerService.CreatePlayer")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to create player.", "Internal error"))
		return
	}
	c.JSON(http.StatusCreated, player)
}

// GetPlayers handles fetching all players, optionally filtered by exact
// id_number.
func (h *PlayerHandler) GetPlayers(c *gin.Context) {
	var pIDNumber *string
	if idNumber := c.Query("id_number"); idNumber != "" {
		pIDNumber = &idNumber
	}

	players, err := h.playerService.GetPlayers(pIDNumber)
	if err != nil {
		utils.LogError(err, "GetPlayers: Error from playerService.GetPlayers")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch players.", "Internal error"))
		return
	}

	if players == nil {
		players = []models.Player{}
	}
	c.JSON(http.StatusOK, players)
}

// GetPlayerByID handles fetching a single player by ID.
func (h *PlayerHandler) GetPlayerByID(c *gin.Context) {
	idStr := c.Param("id")
	playerID, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid player ID format.", err.Error()))
		return
	}

	player, err := h.playerService.GetPlayerByID(playerID)
	if err != nil {
		if errors.Is(err, services.ErrPlayerNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Player not found.", err.Error()))
			return
		}
		utils.LogError(err, "GetPlayerByID: Error from playerService.GetPlayerByID for ID "+idStr)
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch player.", "Internal error"))
		return
	}
	c.JSON(http.StatusOK, player)
}

// UpdatePlayer handles updating a player. Both full (PUT) and partial
// (PATCH) updates go through here; absent fields keep their values.
func (h *PlayerHandler) UpdatePlayer(c *gin.Context) {
	idStr := c.Param("id")
	playerID, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid player ID format.", err.Error()))
		return
	}

	var req services.UpdatePlayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "UpdatePlayer: Failed to bind JSON for ID "+idStr)
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	player, err := h.playerService.UpdatePlayer(playerID, req)
	if err != nil {
		var fieldErrs services.FieldErrors
		if errors.As(err, &fieldErrs) {
			respondFieldErrors(c, fieldErrs)
			return
		}
		if errors.Is(err, services.ErrPlayerNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Player not found.", err.Error()))
			return
		}
		utils.LogError(err, "UpdatePlayer: Error from playerService.UpdatePlayer for ID "+idStr)
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to update player.", "Internal error"))
		return
	}
	c.JSON(http.StatusOK, player)
}

// DeletePlayer handles deleting a player. Owned documents are removed by
// the cascade on the documents table.
func (h *PlayerHandler) DeletePlayer(c *gin.Context) {
	idStr := c.Param("id")
	playerID, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid player ID format.", err.Error()))
		return
	}

	err = h.playerService.DeletePlayer(playerID)
	if err != nil {
		if errors.Is(err, services.ErrPlayerNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Player not found.", err.Error()))
			return
		}
		utils.LogError(err, "DeletePlayer: Error from playerService.DeletePlayer for ID "+idStr)
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to delete player.", "Internal error"))
		return
	}
	c.Status(http.StatusNoContent)
}
