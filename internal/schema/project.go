package schema

import (
	"github.com/GoSim-25-26J-441/siteproof-backend/internal/patch"
	"github.com/GoSim-25-26J-441/siteproof-backend/internal/projects/domain"
)

// projectBody is the wire shape shared by create and update. Pointers tell an
// absent key apart from a zero value.
type projectBody struct {
	Name        *string `json:"name" validate:"required,notblank"`
	Description *string `json:"description" validate:"required"`
	Location    *string `json:"location" validate:"required"`
	Status      *string `json:"status" validate:"omitempty,oneof=active completed archived"`
}

// DecodeProjectCreate validates a creation body. Status defaults to active.
func DecodeProjectCreate(data []byte) (domain.ProjectInput, error) {
	var body projectBody
	if err := decodeCreate(data, &body); err != nil {
		return domain.ProjectInput{}, err
	}

	in := domain.ProjectInput{
		Name:        *body.Name,
		Description: *body.Description,
		Location:    *body.Location,
		Status:      domain.StatusActive,
	}
	if body.Status != nil {
		in.Status = *body.Status
	}
	return in, nil
}

// DecodeProjectPatch validates an update body. Unknown keys, id and createdAt
// included, are ignored.
func DecodeProjectPatch(data []byte) (domain.ProjectPatch, error) {
	var body projectBody
	if err := decodePatch(data, &body); err != nil {
		return domain.ProjectPatch{}, err
	}

	return domain.ProjectPatch{
		Name:        patch.FromPtr(body.Name),
		Description: patch.FromPtr(body.Description),
		Location:    patch.FromPtr(body.Location),
		Status:      patch.FromPtr(body.Status),
	}, nil
}

// ValidateProject checks a stored project, e.g. one returned by the server.
func ValidateProject(p domain.Project) error {
	return validateStruct(p)
}
