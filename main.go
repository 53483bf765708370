package main

import (
	"context"

	"github.com/Kariqs/laptopzone-api/controllers"
	"github.com/Kariqs/laptopzone-api/initializers"
	"github.com/Kariqs/laptopzone-api/routes"
	"github.com/Kariqs/laptopzone-api/state"
	"github.com/Kariqs/laptopzone-api/store"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func init() {
	initializers.LoadEnv()
	initializers.InitLogger(initializers.AppConfig.Env)
	initializers.AppConfig.MustValidate()
	initializers.ConnectToDB()
	initializers.SyncDatabase()
	if err := initializers.BootstrapAdmin(initializers.DB, initializers.AppConfig); err != nil {
		zap.S().Fatalf("failed to bootstrap admin: %v", err)
	}
}

func main() {
	defer zap.L().Sync()
	cfg := initializers.AppConfig
	if cfg.Env != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	uploader, err := initializers.NewAssetUploader(context.Background(), cfg)
	if err != nil {
		zap.S().Fatalf("failed to configure object storage: %v", err)
	}
	productStore := store.NewGormStore(initializers.DB, uploader)

	c := controllers.New(productStore, productStore, cfg.JWTSecret, cfg.TokenTTL)
	c.Sessions = state.NewSessionsWithLimit(cfg.MaxSessions, cfg.SessionTTL)
	server := routes.NewRouter(c, cfg.CORSOrigins)

	zap.S().Infof("LaptopZoneLB API listening on :%s", cfg.Port)
	if err := server.Run(":" + cfg.Port); err != nil {
		zap.S().Fatalf("server stopped: %v", err)
	}
}
