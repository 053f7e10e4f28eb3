package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GoSim-25-26J-441/siteproof-backend/internal/dashboard/domain"
	projectdomain "github.com/GoSim-25-26J-441/siteproof-backend/internal/projects/domain"
	proofdomain "github.com/GoSim-25-26J-441/siteproof-backend/internal/proofs/domain"
	"github.com/GoSim-25-26J-441/siteproof-backend/internal/storage/memory"
)

func TestDashboardService(t *testing.T) {
	ctx := context.Background()
	projects := memory.NewProjectStore()
	proofs := memory.NewProofStore()
	svc := NewDashboardService(projects, proofs)

	site, err := projects.Create(ctx, projectdomain.ProjectInput{Name: "Downtown", Status: projectdomain.StatusActive})
	require.NoError(t, err)
	_, err = projects.Create(ctx, projectdomain.ProjectInput{Name: "Harbor", Status: projectdomain.StatusCompleted})
	require.NoError(t, err)

	for _, verified := range []bool{true, false, false} {
		_, err := proofs.Create(ctx, proofdomain.ProofInput{
			ProjectID: site.ID, Title: "t", Description: "d", ImageURL: "u", Verified: verified,
		})
		require.NoError(t, err)
	}

	stats, err := svc.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.Stats{ActiveProjects: 1, CompletedProjects: 1, PendingProofs: 2}, stats)

	progress, err := svc.Progress(ctx, site.ID)
	require.NoError(t, err)
	assert.Equal(t, proofdomain.Progress{Total: 3, Verified: 1, Percent: 33}, progress)

	_, err = svc.Progress(ctx, 404)
	assert.ErrorIs(t, err, projectdomain.ErrNotFound)
}

func TestNewProgress(t *testing.T) {
	tests := []struct {
		total, verified, want int
	}{
		{0, 0, 0},
		{2, 1, 50},
		{3, 2, 67},
		{8, 1, 13},
		{1, 1, 100},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, proofdomain.NewProgress(tt.total, tt.verified).Percent, "%d/%d", tt.verified, tt.total)
	}
}
