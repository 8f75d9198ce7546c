package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"perkpal-backend/internal/domains/page/model"
	"perkpal-backend/internal/domains/page/service"
	"perkpal-backend/internal/shared/ordering"
	"perkpal-backend/internal/shared/response"
)

type PageHandler struct {
	pageService service.ServiceInterface
}

func NewPageHandler(pageService service.ServiceInterface) *PageHandler {
	return &PageHandler{pageService: pageService}
}

func mapPageError(c *gin.Context, err error) {
	var verrs validation.Errors
	switch {
	case errors.As(err, &verrs):
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "invalid payload", verrs)
	case errors.Is(err, ordering.ErrUnknownID):
		response.UnprocessableEntity(c, err.Error())
	case errors.Is(err, model.ErrPageNotFound), errors.Is(err, model.ErrSectionNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, model.ErrSlugTaken):
		response.Conflict(c, err.Error())
	default:
		response.InternalServerError(c, "internal error")
	}
}

// =====================================================
// PAGE CRUD
// =====================================================

// CreatePage creates a CMS page with its content fields.
func (h *PageHandler) CreatePage(c *gin.Context) {
	var req model.CreatePageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		mapPageError(c, err)
		return
	}

	page, err := h.pageService.CreatePage(c.Request.Context(), req)
	if err != nil {
		mapPageError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, page)
}

func (h *PageHandler) GetPage(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid page id")
		return
	}

	page, err := h.pageService.GetPage(c.Request.Context(), id)
	if err != nil {
		mapPageError(c, err)
		return
	}
	response.Success(c, http.StatusOK, page)
}

func (h *PageHandler) ListPages(c *gin.Context) {
	pages, err := h.pageService.ListPages(c.Request.Context())
	if err != nil {
		mapPageError(c, err)
		return
	}
	response.Success(c, http.StatusOK, pages)
}

func (h *PageHandler) UpdatePage(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid page id")
		return
	}

	var req model.UpdatePageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		mapPageError(c, err)
		return
	}

	page, err := h.pageService.UpdatePage(c.Request.Context(), id, req)
	if err != nil {
		mapPageError(c, err)
		return
	}
	response.Success(c, http.StatusOK, page)
}

func (h *PageHandler) DeletePage(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid page id")
		return
	}

	if err := h.pageService.DeletePage(c.Request.Context(), id); err != nil {
		mapPageError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "page deleted"})
}

// =====================================================
// PUBLIC
// =====================================================

// GetPublicPage returns the rendered page for the site. Link fields render
// relative to the host the request came in on.
func (h *PageHandler) GetPublicPage(c *gin.Context) {
	page, err := h.pageService.GetPublicPage(c.Request.Context(), c.Param("slug"), c.Request.Host)
	if err != nil {
		mapPageError(c, err)
		return
	}
	response.Success(c, http.StatusOK, page)
}

func (h *PageHandler) ListPublicSections(c *gin.Context) {
	sections, err := h.pageService.ListPublicSections(c.Request.Context(), c.Query("slot"))
	if err != nil {
		mapPageError(c, err)
		return
	}
	response.Success(c, http.StatusOK, sections)
}

// =====================================================
// HOMEPAGE SECTIONS
// =====================================================

func (h *PageHandler) CreateSection(c *gin.Context) {
	var req model.CreateSectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		mapPageError(c, err)
		return
	}

	section, err := h.pageService.CreateSection(c.Request.Context(), req)
	if err != nil {
		mapPageError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, section)
}

func (h *PageHandler) ListSections(c *gin.Context) {
	sections, err := h.pageService.ListSections(c.Request.Context(), c.Query("slot"))
	if err != nil {
		mapPageError(c, err)
		return
	}
	response.Success(c, http.StatusOK, sections)
}

func (h *PageHandler) UpdateSection(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid section id")
		return
	}

	var req model.UpdateSectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		mapPageError(c, err)
		return
	}

	section, err := h.pageService.UpdateSection(c.Request.Context(), id, req)
	if err != nil {
		mapPageError(c, err)
		return
	}
	response.Success(c, http.StatusOK, section)
}

func (h *PageHandler) DeleteSection(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid section id")
		return
	}

	if err := h.pageService.DeleteSection(c.Request.Context(), id); err != nil {
		mapPageError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "section deleted"})
}

type sectionReorderRequest struct {
	Slot  string          `json:"slot"`
	Items []ordering.Item `json:"items"`
}

// ReorderSections applies a drag-and-drop batch for one slot.
func (h *PageHandler) ReorderSections(c *gin.Context) {
	var req sectionReorderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	sections, err := h.pageService.ReorderSections(c.Request.Context(), req.Slot, req.Items)
	if err != nil {
		mapPageError(c, err)
		return
	}
	response.Success(c, http.StatusOK, sections)
}
