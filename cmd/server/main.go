package main

import (
	"context"
	"log"

	"capi-onboarding-backend/internal/api/routes"
	"capi-onboarding-backend/internal/bootstrap"
	"capi-onboarding-backend/internal/config"
	"capi-onboarding-backend/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	_ "capi-onboarding-backend/docs" // This is needed for swag
)

//	@title			CAPI Onboarding Tracker API
//	@version		1.0
//	@description	Backend API of the CAPI onboarding tracker: clients, platform instances, step and checklist progress, notes, the step catalog and assistant tips.

//	@host		localhost:3001
//	@BasePath	/api

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Type "Bearer" followed by a space and JWT token.

func main() {
	// Load environment variables from .env file in development
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system environment variables")
	}

	// Initialize configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	// Set up logging
	logger.Setup(cfg.LogLevel, logger.FileOptions{
		Path:       cfg.LogFile,
		MaxSizeMB:  cfg.LogFileMaxSizeMB,
		MaxBackups: cfg.LogFileMaxBackups,
		MaxAgeDays: cfg.LogFileMaxAgeDays,
	})

	cat, err := bootstrap.LoadCatalog(cfg)
	if err != nil {
		logrus.Fatal("Failed to load step catalog:", err)
	}

	// Initialize the progress store
	store, err := bootstrap.OpenStore(context.Background(), cfg, nil)
	if err != nil {
		logrus.Fatal("Failed to initialize store:", err)
	}

	// Set Gin mode
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize router
	router, err := routes.SetupRoutes(store, cat, cfg, nil)
	if err != nil {
		logrus.Fatal("Failed to configure routes:", err)
	}

	// Start server
	port := cfg.Port
	if port == "" {
		port = "3001"
	}

	logrus.WithFields(logrus.Fields{
		"environment": cfg.Environment,
		"store":       store.Driver,
	}).Infof("Starting server on port %s", port)
	if err := router.Run(":" + port); err != nil {
		logrus.Fatal("Failed to start server:", err)
	}
}
