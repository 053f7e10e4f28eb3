package schema

import (
	"github.com/GoSim-25-26J-441/siteproof-backend/internal/patch"
	"github.com/GoSim-25-26J-441/siteproof-backend/internal/proofs/domain"
)

type proofBody struct {
	ProjectID   *int64  `json:"projectId" validate:"required,min=1"`
	Title       *string `json:"title" validate:"required,notblank"`
	Description *string `json:"description" validate:"required,notblank"`
	ImageURL    *string `json:"imageUrl" validate:"required,notblank"`
	Verified    *bool   `json:"verified"`
}

// DecodeProofCreate validates a creation body. Verified defaults to false.
// The referenced project is not checked.
func DecodeProofCreate(data []byte) (domain.ProofInput, error) {
	var body proofBody
	if err := decodeCreate(data, &body); err != nil {
		return domain.ProofInput{}, err
	}

	in := domain.ProofInput{
		ProjectID:   *body.ProjectID,
		Title:       *body.Title,
		Description: *body.Description,
		ImageURL:    *body.ImageURL,
	}
	if body.Verified != nil {
		in.Verified = *body.Verified
	}
	return in, nil
}

func DecodeProofPatch(data []byte) (domain.ProofPatch, error) {
	var body proofBody
	if err := decodePatch(data, &body); err != nil {
		return domain.ProofPatch{}, err
	}

	return domain.ProofPatch{
		ProjectID:   patch.FromPtr(body.ProjectID),
		Title:       patch.FromPtr(body.Title),
		Description: patch.FromPtr(body.Description),
		ImageURL:    patch.FromPtr(body.ImageURL),
		Verified:    patch.FromPtr(body.Verified),
	}, nil
}

func ValidateProof(p domain.Proof) error {
	return validateStruct(p)
}
