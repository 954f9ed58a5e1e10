package main

import (
	"log"
	"os"
	"time"

	"projextpal-backend/internal/api/routes"
	"projextpal-backend/internal/cache"
	"projextpal-backend/internal/config"
	"projextpal-backend/internal/database"
	"projextpal-backend/internal/notify"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	_ "projextpal-backend/docs" // This is needed for swag
)

//	@title			ProjeXtPal Backend API
//	@version		1.0
//	@description	Multi tenant project, programme and portfolio management API with pluggable delivery methodologies.

//	@contact.name	API Support
//	@contact.email	support@projextpal.io

//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT

//	@host		localhost:7010
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

	// Initialize configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	// Set up logging
	setupLogging(cfg.LogLevel)

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL, nil)
	if err != nil {
		logrus.Fatal("Failed to initialize database:", err)
	}

	// Optional read cache; analytics and catalog degrade gracefully without it
	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPassword, 0, 5*time.Minute)
	if cacheClient != nil {
		defer cacheClient.Close()
	}

	// Notification hub for websocket subscribers and domain events
	hub := notify.NewHub(cfg.AllowedOrigins...)

	// Set Gin mode
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize router
	router := routes.SetupRoutes(db, cfg, cacheClient, hub)

	// Start server
	port := cfg.Port
	if port == "" {
		port = "7010"
	}

	logrus.Infof("Starting server on port %s", port)
	if err := router.Run(":" + port); err != nil {
		logrus.Fatal("Failed to start server:", err)
	}
}

func setupLogging(level string) {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)

	switch level {
	case "debug":
		logrus.SetLevel(logrus.DebugLevel)
	case "info":
		logrus.SetLevel(logrus.InfoLevel)
	case "warn":
		logrus.SetLevel(logrus.WarnLevel)
	case "error":
		logrus.SetLevel(logrus.ErrorLevel)
	default:
		logrus.SetLevel(logrus.InfoLevel)
	}
}
