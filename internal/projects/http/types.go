package http

import "github.com/GoSim-25-26J-441/siteproof-backend/internal/projects/service"

// Handler bundles the dependencies for projects HTTP endpoints.
type Handler struct {
	svc *service.ProjectService
}

func New(svc *service.ProjectService) *Handler {
	return &Handler{svc: svc}
}

const msgNotFound = "Project not found"
