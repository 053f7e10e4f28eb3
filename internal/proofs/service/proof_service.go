package service

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/GoSim-25-26J-441/siteproof-backend/internal/proofs/domain"
)

// ProofService handles proof-related business logic. It never checks that
// the referenced project exists.
type ProofService struct {
	repo domain.Repository
	log  logrus.FieldLogger
}

func NewProofService(repo domain.Repository, log logrus.FieldLogger) *ProofService {
	return &ProofService{
		repo: repo,
		log:  log.WithField("component", "proofs"),
	}
}

func (s *ProofService) ListByProject(ctx context.Context, projectID int64) ([]domain.Proof, error) {
	return s.repo.ListByProject(ctx, projectID)
}

func (s *ProofService) Get(ctx context.Context, id int64) (*domain.Proof, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *ProofService) Create(ctx context.Context, in domain.ProofInput) (*domain.Proof, error) {
	p, err := s.repo.Create(ctx, in)
	if err != nil {
		return nil, err
	}
	s.log.WithFields(logrus.Fields{"proof_id": p.ID, "project_id": p.ProjectID}).Info("proof created")
	return p, nil
}

func (s *ProofService) Update(ctx context.Context, id int64, patch domain.ProofPatch) (*domain.Proof, error) {
	p, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	if v, ok := patch.Verified.Get(); ok {
		s.log.WithFields(logrus.Fields{"proof_id": id, "verified": v}).Info("proof verification changed")
	}
	return p, nil
}

func (s *ProofService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.WithField("proof_id", id).Info("proof deleted")
	return nil
}
