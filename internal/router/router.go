package router

import (
	"database/sql"

	"napoli_club_backend/internal/handlers"
	"napoli_club_backend/internal/middleware"
	"napoli_club_backend/internal/repositories"
	"napoli_club_backend/internal/services"

	"github.com/gin-gonic/gin"
)

// Setup initializes the routing for the application.
func Setup(engine *gin.Engine, db *sql.DB, store services.FileStore, mediaRoot string) {
	// Initialize Repositories
	playerRepo := repositories.NewPlayerRepository(db)
	documentRepo := repositories.NewDocumentRepository(db)
	authRepo := repositories.NewAuthRepository(db)

	// Initialize Services
	playerService := services.NewPlayerService(playerRepo, db)
	documentService := services.NewDocumentService(documentRepo, playerRepo, store, db)
	authService := services.NewAuthService(authRepo, playerRepo, db)

	// Initialize Handlers
	playerHandler := handlers.NewPlayerHandler(playerService)
	documentHandler := handlers.NewDocumentHandler(documentService)
	authHandler := handlers.NewAuthHandler(authService)

	tokenAuth := middleware.TokenAuth(authService)

	engine.GET("/", handlers.APIRoot)
	engine.POST("/login/", authHandler.Login)

	SetupPlayerRoutes(engine, playerHandler, authHandler, tokenAuth)
	SetupDocumentRoutes(engine, documentHandler, tokenAuth)
	SetupLegacyDataRoutes(engine, playerHandler)

	// Uploaded document files are served straight from the media root.
	engine.Static("/media", mediaRoot)
}
