package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/GoSim-25-26J-441/siteproof-backend/internal/projects/domain"
	"github.com/GoSim-25-26J-441/siteproof-backend/internal/storage/postgres"
)

const projectColumns = `id, name, description, location, status, created_at`

// ProjectRepository provides persistence operations for projects
type ProjectRepository struct {
	db *sql.DB
}

var _ domain.Repository = (*ProjectRepository)(nil)

// NewProjectRepository creates a new project repository
func NewProjectRepository(db *sql.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

func scanProject(row scanner) (*domain.Project, error) {
	var p domain.Project
	if err := row.Scan(&p.ID, &p.Name, &p.Description, &p.Location, &p.Status, &p.CreatedAt); err != nil {
		return nil, err
	}
	return &p, nil
}

// List returns all projects, filtered by name or location when search is set.
func (r *ProjectRepository) List(ctx context.Context, search string) ([]domain.Project, error) {
	q := `SELECT ` + projectColumns + ` FROM projects`
	var args []any
	if term := strings.TrimSpace(search); term != "" {
		q += ` WHERE name ILIKE $1 OR location ILIKE $1`
		args = append(args, "%"+postgres.EscapeLike(term)+"%")
	}

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer rows.Close()

	out := make([]domain.Project, 0, 16)
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("scan project: %w", err)
		}
		out = append(out, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	return out, nil
}

func (r *ProjectRepository) GetByID(ctx context.Context, id int64) (*domain.Project, error) {
	q := `SELECT ` + projectColumns + ` FROM projects WHERE id = $1`

	p, err := scanProject(r.db.QueryRowContext(ctx, q, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get project %d: %w", id, err)
	}
	return p, nil
}

// Create inserts a project; id and created_at are assigned by the database.
func (r *ProjectRepository) Create(ctx context.Context, in domain.ProjectInput) (*domain.Project, error) {
	q := `
INSERT INTO projects (name, description, location, status)
VALUES ($1, $2, $3, $4)
RETURNING ` + projectColumns

	p, err := scanProject(r.db.QueryRowContext(ctx, q, in.Name, in.Description, in.Location, in.Status))
	if err != nil {
		return nil, fmt.Errorf("create project: %w", err)
	}
	return p, nil
}

// Update writes only the fields present in the patch.
func (r *ProjectRepository) Update(ctx context.Context, id int64, patch domain.ProjectPatch) (*domain.Project, error) {
	var set postgres.Assignments
	if v, ok := patch.Name.Get(); ok {
		set.Add("name", v)
	}
	if v, ok := patch.Description.Get(); ok {
		set.Add("description", v)
	}
	if v, ok := patch.Location.Get(); ok {
		set.Add("location", v)
	}
	if v, ok := patch.Status.Get(); ok {
		set.Add("status", v)
	}
	if set.Len() == 0 {
		return r.GetByID(ctx, id)
	}

	cols, args, next := set.Build(id)
	q := fmt.Sprintf(`UPDATE projects SET %s WHERE id = $%d RETURNING %s`, cols, next, projectColumns)

	p, err := scanProject(r.db.QueryRowContext(ctx, q, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("update project %d: %w", id, err)
	}
	return p, nil
}

// Delete removes the project if it exists. Proofs referencing it are kept.
func (r *ProjectRepository) Delete(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM projects WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete project %d: %w", id, err)
	}
	return nil
}

// CountByStatus returns a count for every known status, zero included.
func (r *ProjectRepository) CountByStatus(ctx context.Context) (map[string]int, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT status, COUNT(*) FROM projects GROUP BY status`)
	if err != nil {
		return nil, fmt.Errorf("count projects: %w", err)
	}
	defer rows.Close()

	out := make(map[string]int, len(domain.Statuses))
	for _, s := range domain.Statuses {
		out[s] = 0
	}
	for rows.Next() {
		var (
			status string
			n      int
		)
		if err := rows.Scan(&status, &n); err != nil {
			return nil, fmt.Errorf("scan project count: %w", err)
		}
		out[status] = n
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("count projects: %w", err)
	}
	return out, nil
}
