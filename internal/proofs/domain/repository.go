package domain

import "context"

// Repository is the storage contract for proofs.
type Repository interface {
	ListByProject(ctx context.Context, projectID int64) ([]Proof, error)
	GetByID(ctx context.Context, id int64) (*Proof, error)
	Create(ctx context.Context, in ProofInput) (*Proof, error)
	Update(ctx context.Context, id int64, p ProofPatch) (*Proof, error)
	Delete(ctx context.Context, id int64) error
	// CountVerified returns total and verified proof counts for a project.
	CountVerified(ctx context.Context, projectID int64) (total, verified int, err error)
	// CountPending returns unverified proofs across all projects.
	CountPending(ctx context.Context) (int, error)
}
