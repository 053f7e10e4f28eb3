package service

import (
	"context"

	"github.com/GoSim-25-26J-441/siteproof-backend/internal/dashboard/domain"
	projectdomain "github.com/GoSim-25-26J-441/siteproof-backend/internal/projects/domain"
	proofdomain "github.com/GoSim-25-26J-441/siteproof-backend/internal/proofs/domain"
)

// DashboardService aggregates read-only figures across projects and proofs.
type DashboardService struct {
	projects projectdomain.Repository
	proofs   proofdomain.Repository
}

func NewDashboardService(projects projectdomain.Repository, proofs proofdomain.Repository) *DashboardService {
	return &DashboardService{projects: projects, proofs: proofs}
}

func (s *DashboardService) Stats(ctx context.Context) (domain.Stats, error) {
	counts, err := s.projects.CountByStatus(ctx)
	if err != nil {
		return domain.Stats{}, err
	}
	pending, err := s.proofs.CountPending(ctx)
	if err != nil {
		return domain.Stats{}, err
	}

	return domain.Stats{
		ActiveProjects:    counts[projectdomain.StatusActive],
		CompletedProjects: counts[projectdomain.StatusCompleted],
		ArchivedProjects:  counts[projectdomain.StatusArchived],
		PendingProofs:     pending,
	}, nil
}

// Progress reports verified proofs for an existing project. It returns
// projectdomain.ErrNotFound when the project is missing.
func (s *DashboardService) Progress(ctx context.Context, projectID int64) (proofdomain.Progress, error) {
	if _, err := s.projects.GetByID(ctx, projectID); err != nil {
		return proofdomain.Progress{}, err
	}

	total, verified, err := s.proofs.CountVerified(ctx, projectID)
	if err != nil {
		return proofdomain.Progress{}, err
	}
	return proofdomain.NewProgress(total, verified), nil
}
