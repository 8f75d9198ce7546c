package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"perkpal-backend/internal/domains/perk/model"
	"perkpal-backend/internal/domains/perk/service"
	"perkpal-backend/internal/shared/ordering"
	"perkpal-backend/internal/shared/response"
)

type PerkHandler struct {
	perkService service.ServiceInterface
}

func NewPerkHandler(perkService service.ServiceInterface) *PerkHandler {
	return &PerkHandler{perkService: perkService}
}

func mapPerkError(c *gin.Context, err error) {
	var verrs validation.Errors
	switch {
	case errors.As(err, &verrs):
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "invalid reorder batch", verrs)
	case errors.Is(err, ordering.ErrUnknownID):
		response.UnprocessableEntity(c, err.Error())
	case errors.Is(err, model.ErrPerkNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, model.ErrSlugTaken):
		response.Conflict(c, err.Error())
	default:
		response.InternalServerError(c, "internal error")
	}
}

// CreatePerk creates a new perk in draft status.
// POST /api/v1/admin/perks
func (h *PerkHandler) CreatePerk(c *gin.Context) {
	var req model.CreatePerkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		response.UnprocessableEntity(c, err.Error())
		return
	}

	resp, err := h.perkService.CreatePerk(c.Request.Context(), req)
	if err != nil {
		mapPerkError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, resp)
}

// GetPerk returns one perk by id (admin view, any status).
// GET /api/v1/admin/perks/:id
func (h *PerkHandler) GetPerk(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid perk id")
		return
	}

	resp, err := h.perkService.GetPerk(c.Request.Context(), id)
	if err != nil {
		mapPerkError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp)
}

// GetPublicPerk returns one published perk by slug.
// GET /api/v1/perks/:slug
func (h *PerkHandler) GetPublicPerk(c *gin.Context) {
	resp, err := h.perkService.GetPerkBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		mapPerkError(c, err)
		return
	}
	if resp.Status != model.StatusPublished {
		response.NotFound(c, "perk not found")
		return
	}
	response.Success(c, http.StatusOK, resp)
}

// ListPerks lists perks for the admin dashboard.
// GET /api/v1/admin/perks
func (h *PerkHandler) ListPerks(c *gin.Context) {
	var req model.ListPerksRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	req.Normalize()

	perks, total, err := h.perkService.ListPerks(c.Request.Context(), req)
	if err != nil {
		mapPerkError(c, err)
		return
	}
	response.SuccessWithMeta(c, http.StatusOK, perks, response.NewMeta(req.Page, req.Limit, total))
}

// ListPublicPerks lists published perks for the site, served from cache.
// GET /api/v1/perks
func (h *PerkHandler) ListPublicPerks(c *gin.Context) {
	var req model.ListPerksRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	req.Normalize()

	perks, total, err := h.perkService.ListPublishedPerks(c.Request.Context(), req)
	if err != nil {
		mapPerkError(c, err)
		return
	}
	response.SuccessWithMeta(c, http.StatusOK, perks, response.NewMeta(req.Page, req.Limit, total))
}

// UpdatePerk updates mutable fields of a perk.
// PUT /api/v1/admin/perks/:id
func (h *PerkHandler) UpdatePerk(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid perk id")
		return
	}

	var req model.UpdatePerkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		response.UnprocessableEntity(c, err.Error())
		return
	}

	resp, err := h.perkService.UpdatePerk(c.Request.Context(), id, req)
	if err != nil {
		mapPerkError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp)
}

// DeletePerk removes a perk.
// DELETE /api/v1/admin/perks/:id
func (h *PerkHandler) DeletePerk(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid perk id")
		return
	}

	if err := h.perkService.DeletePerk(c.Request.Context(), id); err != nil {
		mapPerkError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "perk deleted"})
}

// ReorderPerks applies a full reordering of the perk list.
// POST /api/v1/admin/perks/reorder
func (h *PerkHandler) ReorderPerks(c *gin.Context) {
	var req ordering.ReorderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	perks, err := h.perkService.ReorderPerks(c.Request.Context(), req.Items)
	if err != nil {
		mapPerkError(c, err)
		return
	}
	response.Success(c, http.StatusOK, perks)
}
