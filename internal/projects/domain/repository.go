package domain

import "context"

// Repository is the storage contract for projects. One call is one storage
// operation; implementations do no business validation.
type Repository interface {
	// List returns every project, optionally filtered by a case-insensitive
	// search over name and location. Order is unspecified.
	List(ctx context.Context, search string) ([]Project, error)
	GetByID(ctx context.Context, id int64) (*Project, error)
	Create(ctx context.Context, in ProjectInput) (*Project, error)
	Update(ctx context.Context, id int64, p ProjectPatch) (*Project, error)
	// Delete succeeds whether or not a row matched.
	Delete(ctx context.Context, id int64) error
	CountByStatus(ctx context.Context) (map[string]int, error)
}
