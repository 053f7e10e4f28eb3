package service

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/GoSim-25-26J-441/siteproof-backend/internal/projects/domain"
)

// ProjectService handles project-related business logic
type ProjectService struct {
	repo domain.Repository
	log  logrus.FieldLogger
}

// NewProjectService creates a new project service
func NewProjectService(repo domain.Repository, log logrus.FieldLogger) *ProjectService {
	return &ProjectService{
		repo: repo,
		log:  log.WithField("component", "projects"),
	}
}

// List returns all projects, optionally filtered by search
func (s *ProjectService) List(ctx context.Context, search string) ([]domain.Project, error) {
	return s.repo.List(ctx, search)
}

func (s *ProjectService) Get(ctx context.Context, id int64) (*domain.Project, error) {
	return s.repo.GetByID(ctx, id)
}

// Create creates a new project
func (s *ProjectService) Create(ctx context.Context, in domain.ProjectInput) (*domain.Project, error) {
	p, err := s.repo.Create(ctx, in)
	if err != nil {
		return nil, err
	}
	s.log.WithFields(logrus.Fields{"project_id": p.ID, "status": p.Status}).Info("project created")
	return p, nil
}

// Update applies a partial update; omitted fields keep their values.
func (s *ProjectService) Update(ctx context.Context, id int64, patch domain.ProjectPatch) (*domain.Project, error) {
	p, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	s.log.WithField("project_id", id).Debug("project updated")
	return p, nil
}

// Delete removes a project. Deleting a missing project is not an error.
func (s *ProjectService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.WithField("project_id", id).Info("project deleted")
	return nil
}
