package domain

import (
	"time"

	"github.com/GoSim-25-26J-441/siteproof-backend/internal/patch"
)

// Proof is a photo or document verification record attached to a project.
// ProjectID is a loose reference: nothing guarantees the project still exists.
type Proof struct {
	ID          int64     `json:"id" validate:"required,min=1"`
	ProjectID   int64     `json:"projectId" validate:"required,min=1"`
	Title       string    `json:"title" validate:"notblank"`
	Description string    `json:"description" validate:"notblank"`
	ImageURL    string    `json:"imageUrl" validate:"notblank"`
	Verified    bool      `json:"verified"`
	CreatedAt   time.Time `json:"createdAt" validate:"required"`
}

type ProofInput struct {
	ProjectID   int64  `json:"projectId"`
	Title       string `json:"title"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
	Verified    bool   `json:"verified"`
}

type ProofPatch struct {
	ProjectID   patch.Optional[int64]  `json:"projectId,omitzero"`
	Title       patch.Optional[string] `json:"title,omitzero"`
	Description patch.Optional[string] `json:"description,omitzero"`
	ImageURL    patch.Optional[string] `json:"imageUrl,omitzero"`
	Verified    patch.Optional[bool]   `json:"verified,omitzero"`
}

func (p ProofPatch) IsEmpty() bool {
	return !p.ProjectID.Set && !p.Title.Set && !p.Description.Set && !p.ImageURL.Set && !p.Verified.Set
}

func (p ProofPatch) ApplyTo(proof *Proof) {
	p.ProjectID.Apply(&proof.ProjectID)
	p.Title.Apply(&proof.Title)
	p.Description.Apply(&proof.Description)
	p.ImageURL.Apply(&proof.ImageURL)
	p.Verified.Apply(&proof.Verified)
}

// Progress summarises verification of one project's proofs.
type Progress struct {
	Total    int `json:"total"`
	Verified int `json:"verified"`
	Percent  int `json:"percent"`
}

// NewProgress rounds the verified share to a whole percentage.
func NewProgress(total, verified int) Progress {
	p := Progress{Total: total, Verified: verified}
	if total > 0 {
		p.Percent = (verified*100 + total/2) / total
	}
	return p
}
