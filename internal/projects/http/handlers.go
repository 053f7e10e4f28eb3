package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/GoSim-25-26J-441/siteproof-backend/internal/api/http/respond"
	"github.com/GoSim-25-26J-441/siteproof-backend/internal/projects/domain"
	"github.com/GoSim-25-26J-441/siteproof-backend/internal/schema"
)

func (h *Handler) list(c *gin.Context) {
	items, err := h.svc.List(c.Request.Context(), c.Query("search"))
	if err != nil {
		respond.Fault(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *Handler) get(c *gin.Context) {
	id, ok := respond.ParamID(c, "id")
	if !ok {
		respond.NotFound(c, msgNotFound)
		return
	}

	p, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *Handler) create(c *gin.Context) {
	body, err := respond.Body(c)
	if err != nil {
		respond.Invalid(c, err)
		return
	}
	in, err := schema.DecodeProjectCreate(body)
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
	patch, err := schema.DecodeProjectPatch(body)
	if err != nil {
		respond.Invalid(c, err)
		return
	}

	p, err := h.svc.Update(c.Request.Context(), id, patch)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// delete always answers 204, whether or not the project existed.
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

func (h *Handler) fail(c *gin.Context, err error) {
	if errors.Is(err, domain.ErrNotFound) {
		respond.NotFound(c, msgNotFound)
		return
	}
	respond.Fault(c, err)
}
