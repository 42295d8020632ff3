package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"booking/configs"
	"booking/pkg/media"
	"booking/routes"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	cfg := configs.LoadConfig()

	logger, err := configs.NewLogger(cfg)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	if err := cfg.Validate(); err != nil {
		logger.Fatal("invalid configuration", zap.Error(err))
	}
	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	// DB
	db, err := configs.OpenDatabase(cfg.DBDriver, cfg.DBSource)
	if err != nil {
		logger.Fatal("open database", zap.Error(err))
	}
	if err := configs.SetupDatabase(db); err != nil {
		logger.Fatal("migrate database", zap.Error(err))
	}
	if cfg.SeedDemo {
		if err := configs.SeedDemo(db, logger); err != nil {
			logger.Fatal("seed demo data", zap.Error(err))
		}
	}

	// Media
	uploader, err := media.NewClient(media.Config{
		CloudName: cfg.CloudinaryCloudName,
		APIKey:    cfg.CloudinaryAPIKey,
		APISecret: cfg.CloudinaryAPISecret,
		BaseURL:   cfg.CloudinaryBaseURL,
		Timeout:   cfg.UploadTimeout,
	}, logger.Named("media"))
	if err != nil {
		logger.Fatal("init media client", zap.Error(err))
	}

	// HTTP
	r, err := routes.NewRouter(db, cfg, uploader, logger)
	if err != nil {
		logger.Fatal("build router", zap.Error(err))
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server stopped", zap.Error(err))
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	}
	logger.Info("server stopped")
}
