package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"

	"github.com/GoSim-25-26J-441/siteproof-backend/config"
	"github.com/GoSim-25-26J-441/siteproof-backend/internal/bootstrap"
	"github.com/GoSim-25-26J-441/siteproof-backend/internal/logging"
	"github.com/GoSim-25-26J-441/siteproof-backend/internal/seed"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger := logging.New(cfg.App.Environment, cfg.App.LogLevel)
	bootstrap.SetGinMode(cfg.App.Environment)

	ctx := context.Background()

	storage, err := bootstrap.OpenStorage(ctx, &cfg.Database, logger)
	if err != nil {
		logger.WithError(err).Fatal("open storage")
	}
	defer storage.Close()

	if cfg.App.SeedOnStart {
		if _, err := seed.Run(ctx, storage.Projects, storage.Proofs, logger); err != nil {
			logger.WithError(err).Fatal("seed")
		}
	}

	router := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName:    "siteproof-backend",
		Version:        cfg.App.Version,
		Storage:        storage,
		Logger:         logger,
		AllowedOrigins: cfg.Server.AllowedOrigins,
		RateLimitRPS:   cfg.Server.RateLimitRPS,
		RateLimitBurst: cfg.Server.RateLimitBurst,
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	go func() {
		logger.WithFields(logrus.Fields{"port": cfg.Server.Port, "env": cfg.App.Environment}).Info("listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.WithError(err).Fatal("server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.WithError(err).Error("server forced to shutdown")
		return
	}
	logger.Info("server exited gracefully")
}
