package main

import (
	"context"
	"fmt"

	"github.com/GoSim-25-26J-441/siteproof-backend/config"
	"github.com/GoSim-25-26J-441/siteproof-backend/internal/bootstrap"
	"github.com/GoSim-25-26J-441/siteproof-backend/internal/logging"
	"github.com/GoSim-25-26J-441/siteproof-backend/internal/seed"
	"github.com/GoSim-25-26J-441/siteproof-backend/internal/storage/postgres"
)

// RunMigrate applies the embedded schema migrations.
func RunMigrate() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if cfg.Database.Storage != config.StorageSQL {
		return fmt.Errorf("migrate needs STORAGE_DRIVER=%s", config.StorageSQL)
	}

	logger := logging.New(cfg.App.Environment, cfg.App.LogLevel)
	ctx := context.Background()

	db, closeDB, err := bootstrap.OpenDB(ctx, &cfg.Database)
	if err != nil {
		return err
	}
	defer closeDB()

	applied, err := postgres.Migrate(ctx, db)
	if err != nil {
		return err
	}
	for _, name := range applied {
		logger.WithField("file", name).Info("applied")
	}
	return nil
}

// RunSeed loads the demo data into an empty database.
func RunSeed() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := logging.New(cfg.App.Environment, cfg.App.LogLevel)
	ctx := context.Background()

	storage, err := bootstrap.OpenStorage(ctx, &cfg.Database, logger)
	if err != nil {
		return err
	}
	defer storage.Close()

	wrote, err := seed.Run(ctx, storage.Projects, storage.Proofs, logger)
	if err != nil {
		return err
	}
	if !wrote {
		logger.Info("projects already present, nothing seeded")
	}
	return nil
}
