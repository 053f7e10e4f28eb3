package domain

import (
	"time"

	"github.com/GoSim-25-26J-441/siteproof-backend/internal/patch"
)

// Project is a construction site being tracked. It is storage-agnostic and
// shared by the repository, HTTP and client layers.
type Project struct {
	ID          int64     `json:"id" validate:"required,min=1"`
	Name        string    `json:"name" validate:"notblank"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	Status      string    `json:"status" validate:"oneof=active completed archived"`
	CreatedAt   time.Time `json:"createdAt" validate:"required"`
}

// Project status values.
const (
	StatusActive    = "active"
	StatusCompleted = "completed"
	StatusArchived  = "archived"
)

// Statuses lists every status in display order.
var Statuses = []string{StatusActive, StatusCompleted, StatusArchived}

// ProjectInput carries a validated creation request with defaults applied.
type ProjectInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Location    string `json:"location"`
	Status      string `json:"status"`
}

// ProjectPatch carries only the fields to change.
type ProjectPatch struct {
	Name        patch.Optional[string] `json:"name,omitzero"`
	Description patch.Optional[string] `json:"description,omitzero"`
	Location    patch.Optional[string] `json:"location,omitzero"`
	Status      patch.Optional[string] `json:"status,omitzero"`
}

func (p ProjectPatch) IsEmpty() bool {
	return !p.Name.Set && !p.Description.Set && !p.Location.Set && !p.Status.Set
}

// ApplyTo merges the present fields onto project.
func (p ProjectPatch) ApplyTo(project *Project) {
	p.Name.Apply(&project.Name)
	p.Description.Apply(&project.Description)
	p.Location.Apply(&project.Location)
	p.Status.Apply(&project.Status)
}
