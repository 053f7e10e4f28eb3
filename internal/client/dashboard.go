package client

import (
	"context"
	"errors"
	"fmt"

	dashboarddomain "github.com/GoSim-25-26J-441/siteproof-backend/internal/dashboard/domain"
	proofdomain "github.com/GoSim-25-26J-441/siteproof-backend/internal/proofs/domain"
)

var errNegativeCount = errors.New("negative count")

func (c *Client) Stats(ctx context.Context) (*dashboarddomain.Stats, error) {
	var out dashboarddomain.Stats
	err := c.get(ctx, statsKey().String(), "/api/stats", "Failed to fetch stats", &out, func() error {
		if out.ActiveProjects < 0 || out.CompletedProjects < 0 || out.ArchivedProjects < 0 || out.PendingProofs < 0 {
			return errNegativeCount
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Progress returns the verified share of a project's proofs.
func (c *Client) Progress(ctx context.Context, projectID int64) (*proofdomain.Progress, error) {
	var out proofdomain.Progress
	path := fmt.Sprintf("/api/projects/%d/progress", projectID)
	err := c.get(ctx, progressKey(projectID).String(), path, "Failed to fetch progress", &out, func() error {
		if out.Verified < 0 || out.Verified > out.Total || out.Percent < 0 || out.Percent > 100 {
			return fmt.Errorf("inconsistent progress %d/%d", out.Verified, out.Total)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}
