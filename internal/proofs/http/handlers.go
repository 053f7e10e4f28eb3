package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/GoSim-25-26J-441/siteproof-backend/internal/api/http/respond"
	"github.com/GoSim-25-26J-441/siteproof-backend/internal/proofs/domain"
	"github.com/GoSim-25-26J-441/siteproof-backend/internal/schema"
)

// list serves GET /proofs?projectId=N.
func (h *Handler) list(c *gin.Context) {
	projectID, err := strconv.ParseInt(c.Query("projectId"), 10, 64)
	if err != nil || projectID < 1 {
		c.JSON(http.StatusBadRequest, schema.FieldError{Message: msgProjectIDQuery, Field: "projectId"})
		return
	}
	h.writeList(c, projectID)
}

// listForProject serves the nested GET /projects/:id/proofs.
func (h *Handler) listForProject(c *gin.Context) {
	projectID, ok := respond.ParamID(c, "id")
	if !ok {
		respond.NotFound(c, msgProjectNotFound)
		return
	}
	h.writeList(c, projectID)
}

func (h *Handler) writeList(c *gin.Context, projectID int64) {
	items, err := h.svc.ListByProject(c.Request.Context(), projectID)
	if err != nil {
		respond.Fault(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *Handler) create(c *gin.Context) {
	body, err := respond.Body(c)
	if err != nil {
		respond.Invalid(c, err)
		return
	}
	in, err := schema.DecodeProofCreate(body)
	if err != nil {
		respond.Invalid(c, err)
		return
	}

	p, err := h.svc.Create(c.Request.Context(), in)
	if err != nil {
		respond.Fault(c, err)
		return
	}
	c.JSON(http.StatusCreated, p)
}

func (h *Handler) update(c *gin.Context) {
	id, ok := respond.ParamID(c, "id")
	if !ok {
		respond.NotFound(c, msgNotFound)
		return
	}

	body, err := respond.Body(c)
	if err != nil {
		respond.Invalid(c, err)
		return
	}
	patch, err := schema.DecodeProofPatch(body)
	if err != nil {
		respond.Invalid(c, err)
		return
	}

	p, err := h.svc.Update(c.Request.Context(), id, patch)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			respond.NotFound(c, msgNotFound)
			return
		}
		respond.Fault(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *Handler) delete(c *gin.Context) {
	id, ok := respond.ParamID(c, "id")
	if ok {
		if err := h.svc.Delete(c.Request.Context(), id); err != nil {
			respond.Fault(c, err)
			return
		}
	}
	c.Status(http.StatusNoContent)
}
