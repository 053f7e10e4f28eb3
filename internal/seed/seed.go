// Package seed loads the demo projects and proofs into an empty store.
package seed

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	projectdomain "github.com/GoSim-25-26J-441/siteproof-backend/internal/projects/domain"
	proofdomain "github.com/GoSim-25-26J-441/siteproof-backend/internal/proofs/domain"
)

type site struct {
	project projectdomain.ProjectInput
	proofs  []proofdomain.ProofInput
}

var sites = []site{
	{
		project: projectdomain.ProjectInput{
			Name:        "Downtown Office Complex",
			Description: "Renovation of the main lobby and 1st floor offices",
			Location:    "123 Main St, Cityville",
			Status:      projectdomain.StatusActive,
		},
		proofs: []proofdomain.ProofInput{
			{
				Title:       "Lobby Framing",
				Description: "Steel framing installation complete for the reception area",
				ImageURL:    "https://images.unsplash.com/photo-1503387762-592deb58ef4e",
				Verified:    true,
			},
			{
				Title:       "Electrical Rough-in",
				Description: "Initial wiring for the conference rooms",
				ImageURL:    "https://images.unsplash.com/photo-1621905251189-08b45d6a269e",
			},
		},
	},
	{
		project: projectdomain.ProjectInput{
			Name:        "Westside Apartments",
			Description: "New construction of 20-unit apartment block",
			Location:    "456 West Ave",
			Status:      projectdomain.StatusActive,
		},
		proofs: []proofdomain.ProofInput{
			{
				Title:       "Foundation Pour",
				Description: "Concrete foundation poured and curing",
				ImageURL:    "https://images.unsplash.com/photo-1621905252507-b35a830099bb",
				Verified:    true,
			},
		},
	},
}

// Run inserts the demo data when no projects exist. It reports whether
// anything was written.
func Run(ctx context.Context, projects projectdomain.Repository, proofs proofdomain.Repository, log logrus.FieldLogger) (bool, error) {
	existing, err := projects.List(ctx, "")
	if err != nil {
		return false, fmt.Errorf("check existing projects: %w", err)
	}
	if len(existing) > 0 {
		log.WithField("projects", len(existing)).Debug("seed skipped, store not empty")
		return false, nil
	}

	for _, s := range sites {
		p, err := projects.Create(ctx, s.project)
		if err != nil {
			return false, fmt.Errorf("seed project %q: %w", s.project.Name, err)
		}
		for _, in := range s.proofs {
			in.ProjectID = p.ID
			if _, err := proofs.Create(ctx, in); err != nil {
				return false, fmt.Errorf("seed proof %q: %w", in.Title, err)
			}
		}
	}

	log.WithField("projects", len(sites)).Info("seeded demo data")
	return true, nil
}
