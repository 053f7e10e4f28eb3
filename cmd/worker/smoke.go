package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/GoSim-25-26J-441/siteproof-backend/config"
	"github.com/GoSim-25-26J-441/siteproof-backend/internal/client"
	"github.com/GoSim-25-26J-441/siteproof-backend/internal/logging"
	projectdomain "github.com/GoSim-25-26J-441/siteproof-backend/internal/projects/domain"
	proofdomain "github.com/GoSim-25-26J-441/siteproof-backend/internal/proofs/domain"
)

// logNotifier prints client notifications.
type logNotifier struct{ log logrus.FieldLogger }

func (n logNotifier) Success(title, description string) {
	n.log.WithField("title", title).Info(description)
}

func (n logNotifier) Error(title, description string) {
	n.log.WithField("title", title).Error(description)
}

// RunSmoke drives a running API through the client: it creates a project
// with one proof, verifies it, reads progress and cleans up.
func RunSmoke(args []string) error {
	if len(args) < 1 {
		return errors.New("usage: worker smoke <baseURL>")
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger := logging.New(cfg.App.Environment, cfg.App.LogLevel)

	opts := []client.Option{
		client.WithLogger(logger),
		client.WithNotifier(logNotifier{log: logger}),
		client.WithRateLimit(5, 1),
	}
	if cfg.Redis.Addr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer rdb.Close()
		opts = append(opts, client.WithCache(client.NewRedisCache(rdb, cfg.Redis.CacheTTL)))
	}
	c := client.New(args[0], opts...)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	project, err := c.CreateProject(ctx, projectdomain.ProjectInput{
		Name:        "Smoke Test Site",
		Description: "Created by worker smoke",
		Location:    "Nowhere",
	})
	if err != nil {
		return err
	}
	defer func() {
		if err := c.DeleteProject(ctx, project.ID); err != nil {
			logger.WithError(err).Warn("cleanup failed")
		}
	}()

	proof, err := c.CreateProof(ctx, proofdomain.ProofInput{
		ProjectID:   project.ID,
		Title:       "Smoke Proof",
		Description: "Placeholder image",
		ImageURL:    "https://example.com/smoke.jpg",
	})
	if err != nil {
		return err
	}
	if _, err := c.SetProofVerified(ctx, proof.ID, true); err != nil {
		return err
	}

	progress, err := c.Progress(ctx, project.ID)
	if err != nil {
		return err
	}
	if progress.Percent != 100 {
		return fmt.Errorf("expected 100%% verified, got %d%%", progress.Percent)
	}

	if err := c.DeleteProof(ctx, proof.ID, project.ID); err != nil {
		return err
	}
	logger.WithField("project_id", project.ID).Info("smoke test passed")
	return nil
}
