package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/GoSim-25-26J-441/siteproof-backend/internal/patch"
	"github.com/GoSim-25-26J-441/siteproof-backend/internal/proofs/domain"
	"github.com/GoSim-25-26J-441/siteproof-backend/internal/schema"
)

// ListProofs returns the proofs attached to projectID.
func (c *Client) ListProofs(ctx context.Context, projectID int64) ([]domain.Proof, error) {
	var out []domain.Proof
	path := fmt.Sprintf("/api/proofs?projectId=%d", projectID)
	err := c.get(ctx, proofsKey(projectID).String(), path, "Failed to fetch proofs", &out, func() error {
		for _, p := range out {
			if err := schema.ValidateProof(p); err != nil {
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

func (c *Client) CreateProof(ctx context.Context, in domain.ProofInput) (*domain.Proof, error) {
	data, err := c.send(ctx, http.MethodPost, "/api/proofs", in, "Failed to create proof")
	if err != nil {
		return nil, c.fail(err)
	}

	p, err := decodeProof(data)
	if err != nil {
		return nil, c.fail(err)
	}
	c.invalidateProject(ctx, p.ProjectID)
	c.notifier.Success("Proof Uploaded", "Verification proof has been added successfully.")
	return p, nil
}

// UpdateProof sends only the fields present in patch. Moving a proof to
// another project drops every cached proof list, since the old project is
// not known here.
func (c *Client) UpdateProof(ctx context.Context, id int64, patch domain.ProofPatch) (*domain.Proof, error) {
	p, err := c.updateProof(ctx, id, patch, "Failed to update proof")
	if err != nil {
		return nil, c.fail(err)
	}
	c.notifier.Success("Proof Updated", "The proof has been saved.")
	return p, nil
}

// SetProofVerified toggles the verification flag.
func (c *Client) SetProofVerified(ctx context.Context, id int64, verified bool) (*domain.Proof, error) {
	p, err := c.updateProof(ctx, id, domain.ProofPatch{Verified: patch.Of(verified)}, "Failed to update status")
	if err != nil {
		return nil, c.fail(err)
	}

	if p.Verified {
		c.notifier.Success("Proof Verified", "Status has been updated to verified.")
	} else {
		c.notifier.Success("Verification Revoked", "Status has been updated to pending.")
	}
	return p, nil
}

// DeleteProof removes a proof. projectID names the list to invalidate.
func (c *Client) DeleteProof(ctx context.Context, id, projectID int64) error {
	if _, err := c.send(ctx, http.MethodDelete, fmt.Sprintf("/api/proofs/%d", id), nil, "Failed to delete proof"); err != nil {
		return c.fail(err)
	}
	c.invalidateProject(ctx, projectID)
	c.notifier.Success("Proof Deleted", "The proof record has been removed.")
	return nil
}

func (c *Client) updateProof(ctx context.Context, id int64, p domain.ProofPatch, fallback string) (*domain.Proof, error) {
	data, err := c.send(ctx, http.MethodPut, fmt.Sprintf("/api/proofs/%d", id), p, fallback)
	if err != nil {
		return nil, err
	}

	proof, err := decodeProof(data)
	if err != nil {
		return nil, err
	}
	if p.ProjectID.Set {
		c.invalidate(ctx, Key{Kind: kindProofs}.String(), Key{Kind: kindProjects}.String(), statsKey().String())
	} else {
		c.invalidateProject(ctx, proof.ProjectID)
	}
	return proof, nil
}

// invalidateProject drops the cached reads that depend on one project's proofs.
func (c *Client) invalidateProject(ctx context.Context, projectID int64) {
	c.invalidate(ctx,
		proofsKey(projectID).String(),
		progressKey(projectID).String(),
		statsKey().String(),
	)
}

func decodeProof(data []byte) (*domain.Proof, error) {
	var p domain.Proof
	if err := decodeValid(data, &p, func() error { return schema.ValidateProof(p) }); err != nil {
		return nil, err
	}
	return &p, nil
}

func decodeValid(data []byte, out any, check func() error) error {
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	if err := check(); err != nil {
		return fmt.Errorf("invalid response: %w", err)
	}
	return nil
}
