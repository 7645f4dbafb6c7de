package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"unigather-backend/internal/config"
	"unigather-backend/internal/database"
	"unigather-backend/internal/httpapi"
	"unigather-backend/pkg/logger"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using system environment variables")
	}

	logger.Init()
	defer logger.Sync()

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatal("invalid configuration", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		logger.Fatal("failed to connect to database", err)
	}
	if err := database.Migrate(db); err != nil {
		logger.Fatal("database migration failed", err)
	}

	if cfg.AppEnv != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()
	r.Use(httpapi.CORSMiddleware())

	api := httpapi.NewAPI(db, cfg)
	api.RegisterRoutes(r)

	logger.Info("server starting", "port", cfg.AppPort)
	if err := r.Run(":" + cfg.AppPort); err != nil {
		logger.Fatal("server stopped", err)
	}
}
