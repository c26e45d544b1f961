package router

import (
	"napoli_club_backend/internal/handlers"
	"napoli_club_backend/internal/middleware"

	"github.com/gin-gonic/gin"
)

// SetupPlayerRoutes sets up the player routes. Player CRUD is open; only
// registering a player as a user requires an authenticated staff caller.
func SetupPlayerRoutes(engine *gin.Engine, playerHandler *handlers.PlayerHandler, authHandler *handlers.AuthHandler, tokenAuth gin.HandlerFunc) {
	engine.GET("/players/", playerHandler.GetPlayers)
	engine.POST("/players/", playerHandler.CreatePlayer)
	engine.GET("/players/:id/", playerHandler.GetPlayerByID)
	engine.PUT("/players/:id/", playerHandler.UpdatePlayer)
	engine.PATCH("/players/:id/", playerHandler.UpdatePlayer)
	engine.DELETE("/players/:id/", playerHandler.DeletePlayer)

	engine.POST("/players/:id/register/", tokenAuth, middleware.StaffOnly(), authHandler.RegisterPlayerAsUser)
}

// SetupDocumentRoutes sets up the document routes. Listing and retrieval
// are open; upload and delete require an authenticated caller.
func SetupDocumentRoutes(engine *gin.Engine, documentHandler *handlers.DocumentHandler, tokenAuth gin.HandlerFunc) {
	engine.GET("/documents/", documentHandler.GetDocuments)
	engine.POST("/documents/upload/", tokenAuth, documentHandler.UploadDocument)
	engine.GET("/documents/:id/", documentHandler.GetDocumentByID)
	engine.DELETE("/documents/:id/", tokenAuth, documentHandler.DeleteDocument)
}

// SetupLegacyDataRoutes keeps the old /data/ paths working as aliases of
// the player endpoints.
func SetupLegacyDataRoutes(engine *gin.Engine, playerHandler *handlers.PlayerHandler) {
	engine.GET("/data/", playerHandler.GetPlayers)
	engine.POST("/data/", playerHandler.CreatePlayer)
	engine.GET("/data/:id/", playerHandler.GetPlayerByID)
	engine.PUT("/data/:id/", playerHandler.UpdatePlayer)
	engine.PATCH("/data/:id/", playerHandler.UpdatePlayer)
	engine.DELETE("/data/:id/", playerHandler.DeletePlayer)
}
