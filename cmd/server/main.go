package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/yiryeong/wanted-pre-onboarding/internal/config"
	"github.com/yiryeong/wanted-pre-onboarding/internal/database"
	"github.com/yiryeong/wanted-pre-onboarding/internal/logger"
	"github.com/yiryeong/wanted-pre-onboarding/internal/router"
	"github.com/yiryeong/wanted-pre-onboarding/internal/scheduler"
	"github.com/yiryeong/wanted-pre-onboarding/internal/seed"
)

func main() {
	cfg := config.Load()

	if err := logger.Setup(cfg.Log.Level, cfg.Log.Output, cfg.Log.File); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	db, err := database.Init(cfg.Database)
	if err != nil {
		logger.Fatal("Failed to initialize database: %v", err)
	}

	if cfg.Seed.Enabled {
		seed.Run(db)
	}

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := router.Setup(db, cfg)

	manager := scheduler.Start(db, cfg)
	defer manager.Stop()

	logger.Info("Server starting on port %s", cfg.Server.Port)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		logger.Fatal("Failed to start server: %v", err)
	}
}
