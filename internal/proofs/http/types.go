package http

import "github.com/GoSim-25-26J-441/siteproof-backend/internal/proofs/service"

// Handler bundles the dependencies for proofs HTTP endpoints.
type Handler struct {
	svc *service.ProofService
}

func New(svc *service.ProofService) *Handler {
	return &Handler{svc: svc}
}

const (
	msgNotFound        = "Proof not found"
	msgProjectNotFound = "Project not found"
	msgProjectIDQuery  = "projectId query parameter is required"
)
