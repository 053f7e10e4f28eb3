package memory

import (
	"context"
	"sync"
	"time"

	"github.com/GoSim-25-26J-441/siteproof-backend/internal/proofs/domain"
)

type ProofStore struct {
	mu     sync.RWMutex
	nextID int64
	rows   map[int64]domain.Proof
	now    func() time.Time
}

var _ domain.Repository = (*ProofStore)(nil)

func NewProofStore() *ProofStore {
	return &ProofStore{nextID: 1, rows: make(map[int64]domain.Proof), now: time.Now}
}

func (s *ProofStore) ListByProject(_ context.Context, projectID int64) ([]domain.Proof, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Proof, 0)
	for _, p := range s.rows {
		if p.ProjectID == projectID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *ProofStore) GetByID(_ context.Context, id int64) (*domain.Proof, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.rows[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &p, nil
}

func (s *ProofStore) Create(_ context.Context, in domain.ProofInput) (*domain.Proof, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := domain.Proof{
		ID:          s.nextID,
		ProjectID:   in.ProjectID,
		Title:       in.Title,
		Description: in.Description,
		ImageURL:    in.ImageURL,
		Verified:    in.Verified,
		CreatedAt:   s.now().UTC(),
	}
	s.nextID++
	s.rows[p.ID] = p
	return &p, nil
}

func (s *ProofStore) Update(_ context.Context, id int64, patch domain.ProofPatch) (*domain.Proof, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.rows[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	patch.ApplyTo(&p)
	s.rows[id] = p
	return &p, nil
}

func (s *ProofStore) Delete(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.rows, id)
	return nil
}

func (s *ProofStore) CountVerified(_ context.Context, projectID int64) (total, verified int, err error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.rows {
		if p.ProjectID != projectID {
			continue
		}
		total++
		if p.Verified {
			verified++
		}
	}
	return total, verified, nil
}

func (s *ProofStore) CountPending(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := 0
	for _, p := range s.rows {
		if !p.Verified {
			n++
		}
	}
	return n, nil
}
