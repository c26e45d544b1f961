package main

import (
	"log"

	"napoli_club_backend/internal/config"
	"napoli_club_backend/internal/database"
	"napoli_club_backend/internal/router"
	"napoli_club_backend/internal/storage"
	"napoli_club_backend/pkg/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	// Initialize Logger
	utils.InitLogger()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize Database
	db, err := database.InitDB(cfg.DSN())
	if err != nil {
		utils.LogError(err, "Failed to initialize database")
		log.Fatalf("Failed to initialize database: %v", err)
	}
	utils.LogInfo("Database initialized", map[string]interface{}{"configured_from_env": true})

	if err := database.RunMigrations(db, cfg.MigrationsPath); err != nil {
		utils.LogError(err, "Failed to apply migrations")
		log.Fatalf("Failed to apply migrations: %v", err)
	}

	store, err := storage.NewLocalStorage(cfg.MediaRoot)
	if err != nil {
		utils.LogError(err, "Failed to initialize media storage")
		log.Fatalf("Failed to initialize media storage: %v", err)
	}

	engine := gin.Default()

	// Add GinLogger middleware for request logging
	engine.Use(utils.GinLogger())

	// CORS configuration
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.AllowedOrigins()
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	corsConfig.AllowCredentials = true
	engine.Use(cors.New(corsConfig))

	// Setup all application routes
	router.Setup(engine, db, store, cfg.MediaRoot)

	utils.LogInfo("Server starting", map[string]interface{}{"port": cfg.Port, "configured_from_env": true})
	if err := engine.Run(":" + cfg.Port); err != nil {
		utils.LogError(err, "Failed to start server")
		log.Fatalf("Failed to start server: %v", err)
	}
}
