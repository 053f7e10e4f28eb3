// Package memory keeps projects and proofs in process memory. It implements
// the same repository contracts as the SQL backend and is used by tests and
// by STORAGE_DRIVER=memory.
package memory

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/GoSim-25-26J-441/siteproof-backend/internal/projects/domain"
)

type ProjectStore struct {
	mu     sync.RWMutex
	nextID int64
	rows   map[int64]domain.Project
	now    func() time.Time
}

var _ domain.Repository = (*ProjectStore)(nil)

func NewProjectStore() *ProjectStore {
	return &ProjectStore{nextID: 1, rows: make(map[int64]domain.Project), now: time.Now}
}

func (s *ProjectStore) List(_ context.Context, search string) ([]domain.Project, error) {
	term := strings.ToLower(strings.TrimSpace(search))

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Project, 0, len(s.rows))
	for _, p := range s.rows {
		if term != "" &&
			!strings.Contains(strings.ToLower(p.Name), term) &&
			!strings.Contains(strings.ToLower(p.Location), term) {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (s *ProjectStore) GetByID(_ context.Context, id int64) (*domain.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.rows[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &p, nil
}

func (s *ProjectStore) Create(_ context.Context, in domain.ProjectInput) (*domain.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := domain.Project{
		ID:          s.nextID,
		Name:        in.Name,
		Description: in.Description,
		Location:    in.Location,
		Status:      in.Status,
		CreatedAt:   s.now().UTC(),
	}
	s.nextID++
	s.rows[p.ID] = p
	return &p, nil
}

func (s *ProjectStore) Update(_ context.Context, id int64, patch domain.ProjectPatch) (*domain.Project, error) {
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

func (s *ProjectStore) Delete(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.rows, id)
	return nil
}

func (s *ProjectStore) CountByStatus(_ context.Context) (map[string]int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string]int, len(domain.Statuses))
	for _, st := range domain.Statuses {
		out[st] = 0
	}
	for _, p := range s.rows {
		out[p.Status]++
	}
	return out, nil
}
