package main

import (
	"context"
	"log"
	"time"

	"pokehub-backend/internal/api/routes"
	"pokehub-backend/internal/config"
	"pokehub-backend/internal/database"
	"pokehub-backend/internal/formats"
	"pokehub-backend/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	_ "pokehub-backend/docs" // This is needed for swag
)

//	@title			PokeHub Team API
//	@version		1.0
//	@description	Backend for the PokeHub team builder: saved teams, format legality checks and the live validation feed used by the editor.

//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT

//	@host		localhost:7008
//	@BasePath	/api/v1

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Type "Bearer" followed by a space and JWT token.

func main() {
	// Load environment variables from .env file in development
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	logger.Setup(cfg.LogLevel)

	db, err := database.Initialize(cfg.DatabaseURL, nil)
	if err != nil {
		logrus.Fatal("Failed to initialize database:", err)
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	source := formats.EmbeddedSource()
	if cfg.GameDataDir != "" {
		logrus.WithField("dir", cfg.GameDataDir).Info("Using game data from disk")
		source = formats.DirSource(cfg.GameDataDir)
	}
	registry := formats.NewRegistry(source)

	if cfg.PreloadRulesets {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		err := registry.Load(ctx)
		cancel()
		if err != nil {
			logrus.Fatal("Failed to load format rules:", err)
		}
	}

	router, err := routes.SetupRoutes(db, cfg, registry)
	if err != nil {
		logrus.Fatal("Failed to set up routes:", err)
	}

	logrus.Infof("Starting server on port %s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		logrus.Fatal("Failed to start server:", err)
	}
}
