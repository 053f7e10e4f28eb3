package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/GoSim-25-26J-441/siteproof-backend/internal/proofs/domain"
	"github.com/GoSim-25-26J-441/siteproof-backend/internal/storage/postgres"
)

const proofColumns = `id, project_id, title, description, image_url, verified, created_at`

// ProofRepository provides persistence operations for proofs
type ProofRepository struct {
	db *sql.DB
}

var _ domain.Repository = (*ProofRepository)(nil)

func NewProofRepository(db *sql.DB) *ProofRepository {
	return &ProofRepository{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

func scanProof(row scanner) (*domain.Proof, error) {
	var p domain.Proof
	if err := row.Scan(&p.ID, &p.ProjectID, &p.Title, &p.Description, &p.ImageURL, &p.Verified, &p.CreatedAt); err != nil {
		return nil, err
	}
	return &p, nil
}

// ListByProject returns the proofs whose project_id matches.
func (r *ProofRepository) ListByProject(ctx context.Context, projectID int64) ([]domain.Proof, error) {
	q := `SELECT ` + proofColumns + ` FROM proofs WHERE project_id = $1`

	rows, err := r.db.QueryContext(ctx, q, projectID)
	if err != nil {
		return nil, fmt.Errorf("list proofs: %w", err)
	}
	defer rows.Close()

	out := make([]domain.Proof, 0, 16)
	for rows.Next() {
		p, err := scanProof(rows)
		if err != nil {
			return nil, fmt.Errorf("scan proof: %w", err)
		}
		out = append(out, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list proofs: %w", err)
	}
	return out, nil
}

func (r *ProofRepository) GetByID(ctx context.Context, id int64) (*domain.Proof, error) {
	q := `SELECT ` + proofColumns + ` FROM proofs WHERE id = $1`

	p, err := scanProof(r.db.QueryRowContext(ctx, q, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get proof %d: %w", id, err)
	}
	return p, nil
}

// Create inserts a proof. The project reference is stored as given.
func (r *ProofRepository) Create(ctx context.Context, in domain.ProofInput) (*domain.Proof, error) {
	q := `
INSERT INTO proofs (project_id, title, description, image_url, verified)
VALUES ($1, $2, $3, $4, $5)
RETURNING ` + proofColumns

	p, err := scanProof(r.db.QueryRowContext(ctx, q, in.ProjectID, in.Title, in.Description, in.ImageURL, in.Verified))
	if err != nil {
		return nil, fmt.Errorf("create proof: %w", err)
	}
	return p, nil
}

func (r *ProofRepository) Update(ctx context.Context, id int64, patch domain.ProofPatch) (*domain.Proof, error) {
	var set postgres.Assignments
	if v, ok := patch.ProjectID.Get(); ok {
		set.Add("project_id", v)
	}
	if v, ok := patch.Title.Get(); ok {
		set.Add("title", v)
	}
	if v, ok := patch.Description.Get(); ok {
		set.Add("description", v)
	}
	if v, ok := patch.ImageURL.Get(); ok {
		set.Add("image_url", v)
	}
	if v, ok := patch.Verified.Get(); ok {
		set.Add("verified", v)
	}
	if set.Len() == 0 {
		return r.GetByID(ctx, id)
	}

	cols, args, next := set.Build(id)
	q := fmt.Sprintf(`UPDATE proofs SET %s WHERE id = $%d RETURNING %s`, cols, next, proofColumns)

	p, err := scanProof(r.db.QueryRowContext(ctx, q, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("update proof %d: %w", id, err)
	}
	return p, nil
}

func (r *ProofRepository) Delete(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM proofs WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete proof %d: %w", id, err)
	}
	return nil
}

func (r *ProofRepository) CountVerified(ctx context.Context, projectID int64) (total, verified int, err error) {
	const q = `
SELECT COUNT(*), COUNT(*) FILTER (WHERE verified)
FROM proofs
WHERE project_id = $1`

	if err := r.db.QueryRowContext(ctx, q, projectID).Scan(&total, &verified); err != nil {
		return 0, 0, fmt.Errorf("count proofs for project %d: %w", projectID, err)
	}
	return total, verified, nil
}

func (r *ProofRepository) CountPending(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM proofs WHERE NOT verified`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count pending proofs: %w", err)
	}
	return n, nil
}
