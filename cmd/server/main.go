package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/yourname/focustimer/internal"
	"github.com/yourname/focustimer/internal/api"
	"github.com/yourname/focustimer/internal/config"
	"github.com/yourname/focustimer/internal/storage"
)

func main() {
	cfg := config.Load()

	logger, err := internal.NewLogger(cfg.Env, cfg.LogLevel)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}

	backend, err := storage.New(cfg, logger)
	if err != nil {
		logger.Fatalf("failed to init storage: %v", err)
	}

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(api.RequestIDMiddleware())
	r.Use(api.CORSMiddleware())

	app := api.NewServer(logger, backend, backend, backend)
	api.RegisterRoutes(r, app)

	go func() {
		logger.Infof("server running on %s (storage=%s)", cfg.HTTPAddr, cfg.StorageBackend)
		if err := r.Run(cfg.HTTPAddr); err != nil {
			logger.Fatalf("failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	if err := backend.Close(); err != nil {
		logger.Errorf("failed to close storage: %v", err)
	}
}
