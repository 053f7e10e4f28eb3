package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/GoSim-25-26J-441/siteproof-backend/internal/projects/domain"
	"github.com/GoSim-25-26J-441/siteproof-backend/internal/schema"
)

type createProjectRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Location    string `json:"location"`
	Status      string `json:"status,omitempty"`
}

// ListProjects returns every project, filtered by name or location when
// search is non-empty.
func (c *Client) ListProjects(ctx context.Context, search string) ([]domain.Project, error) {
	path := "/api/projects"
	if search != "" {
		path += "?search=" + url.QueryEscape(search)
	}

	var out []domain.Project
	err := c.get(ctx, projectsKey(search).String(), path, "Failed to fetch projects", &out, func() error {
		for _, p := range out {
			if err := schema.ValidateProject(p); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// GetProject returns the project or an *APIError for which IsNotFound holds.
func (c *Client) GetProject(ctx context.Context, id int64) (*domain.Project, error) {
	var out domain.Project
	err := c.get(ctx, projectKey(id).String(), fmt.Sprintf("/api/projects/%d", id), "Failed to fetch project", &out, func() error {
		return schema.ValidateProject(out)
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateProject(ctx context.Context, in domain.ProjectInput) (*domain.Project, error) {
	req := createProjectRequest{Name: in.Name, Description: in.Description, Location: in.Location, Status: in.Status}
	p, err := c.writeProject(ctx, http.MethodPost, "/api/projects", req, "Failed to create project")
	if err != nil {
		return nil, c.fail(err)
	}
	c.notifier.Success("Project Created", "The project has been created successfully.")
	return p, nil
}

// UpdateProject sends only the fields present in patch.
func (c *Client) UpdateProject(ctx context.Context, id int64, patch domain.ProjectPatch) (*domain.Project, error) {
	p, err := c.writeProject(ctx, http.MethodPut, fmt.Sprintf("/api/projects/%d", id), patch, "Failed to update project")
	if err != nil {
		return nil, c.fail(err)
	}
	c.notifier.Success("Project Updated", "Project details have been saved.")
	return p, nil
}

func (c *Client) DeleteProject(ctx context.Context, id int64) error {
	if _, err := c.send(ctx, http.MethodDelete, fmt.Sprintf("/api/projects/%d", id), nil, "Failed to delete project"); err != nil {
		return c.fail(err)
	}
	c.invalidate(ctx, Key{Kind: kindProjects}.String(), statsKey().String())
	c.notifier.Success("Project Deleted", "The project has been removed.")
	return nil
}

func (c *Client) writeProject(ctx context.Context, method, path string, body any, fallback string) (*domain.Project, error) {
	data, err := c.send(ctx, method, path, body, fallback)
	if err != nil {
		return nil, err
	}

	var p domain.Project
	if err := decodeValid(data, &p, func() error { return schema.ValidateProject(p) }); err != nil {
		return nil, err
	}
	c.invalidate(ctx, Key{Kind: kindProjects}.String(), statsKey().String())
	return &p, nil
}
