package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"perkpal-backend/internal/domains/category/model"
	"perkpal-backend/internal/domains/category/service"
	"perkpal-backend/internal/shared/ordering"
	"perkpal-backend/internal/shared/response"
)

type CategoryHandler struct {
	categoryService service.ServiceInterface
}

func NewCategoryHandler(categoryService service.ServiceInterface) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

func mapCategoryError(c *gin.Context, err error) {
	var verrs validation.Errors
	switch {
	case errors.As(err, &verrs):
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "invalid reorder batch", verrs)
	case errors.Is(err, ordering.ErrUnknownID):
		response.UnprocessableEntity(c, err.Error())
	case errors.Is(err, model.ErrCategoryNotFound), errors.Is(err, model.ErrSubcategoryNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, model.ErrSlugTaken), errors.Is(err, model.ErrCategoryNotEmpty):
		response.Conflict(c, err.Error())
	default:
		response.InternalServerError(c, "internal error")
	}
}

// =====================================================
// CATEGORY CRUD
// =====================================================

// CreateCategory creates a category.
// POST /api/v1/admin/categories
func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	var req model.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		response.UnprocessableEntity(c, err.Error())
		return
	}

	resp, err := h.categoryService.CreateCategory(c.Request.Context(), req)
	if err != nil {
		mapCategoryError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, resp)
}

// GetCategory returns one category by id.
// GET /api/v1/categories/:id
func (h *CategoryHandler) GetCategory(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid category id")
		return
	}

	resp, err := h.categoryService.GetCategory(c.Request.Context(), id)
	if err != nil {
		mapCategoryError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp)
}

// GetCategoryBySlug returns one category by slug for the public site.
// GET /api/v1/categories/:slug
func (h *CategoryHandler) GetCategoryBySlug(c *gin.Context) {
	resp, err := h.categoryService.GetCategoryBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		mapCategoryError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp)
}

// ListCategories returns categories ordered by display_order.
// GET /api/v1/categories
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	var req model.ListCategoriesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	req.Normalize()

	categories, total, err := h.categoryService.ListCategories(c.Request.Context(), req)
	if err != nil {
		mapCategoryError(c, err)
		return
	}
	response.SuccessWithMeta(c, http.StatusOK, categories, response.NewMeta(req.Page, req.Limit, total))
}

// UpdateCategory updates mutable fields of a category.
// PUT /api/v1/admin/categories/:id
func (h *CategoryHandler) UpdateCategory(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid category id")
		return
	}

	var req model.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		response.UnprocessableEntity(c, err.Error())
		return
	}

	resp, err := h.categoryService.UpdateCategory(c.Request.Context(), id, req)
	if err != nil {
		mapCategoryError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp)
}

// DeleteCategory removes an empty category.
// DELETE /api/v1/admin/categories/:id
func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid category id")
		return
	}

	if err := h.categoryService.DeleteCategory(c.Request.Context(), id); err != nil {
		mapCategoryError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "category deleted"})
}

// ReorderCategories applies a full reordering of the category list.
// POST /api/v1/admin/categories/reorder
func (h *CategoryHandler) ReorderCategories(c *gin.Context) {
	var req ordering.ReorderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	categories, err := h.categoryService.ReorderCategories(c.Request.Context(), req.Items)
	if err != nil {
		mapCategoryError(c, err)
		return
	}
	response.Success(c, http.StatusOK, categories)
}

// =====================================================
// SUBCATEGORY CRUD
// =====================================================

type subcategoryReorderRequest struct {
	CategoryID uuid.UUID       `json:"category_id"`
	Items      []ordering.Item `json:"items"`
}

// CreateSubcategory creates a subcategory under a parent category.
// POST /api/v1/admin/categories/:id/subcategories
func (h *CategoryHandler) CreateSubcategory(c *gin.Context) {
	categoryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid category id")
		return
	}

	var req model.CreateSubcategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		response.UnprocessableEntity(c, err.Error())
		return
	}

	resp, err := h.categoryService.CreateSubcategory(c.Request.Context(), categoryID, req)
	if err != nil {
		mapCategoryError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, resp)
}

// ListSubcategories lists subcategories, optionally scoped to one parent.
// GET /api/v1/subcategories
func (h *CategoryHandler) ListSubcategories(c *gin.Context) {
	var req model.ListSubcategoriesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	req.Normalize()

	subcategories, total, err := h.categoryService.ListSubcategories(c.Request.Context(), req)
	if err != nil {
		mapCategoryError(c, err)
		return
	}
	response.SuccessWithMeta(c, http.StatusOK, subcategories, response.NewMeta(req.Page, req.Limit, total))
}

// UpdateSubcategory updates a subcategory.
// PUT /api/v1/admin/subcategories/:id
func (h *CategoryHandler) UpdateSubcategory(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid subcategory id")
		return
	}

	var req model.UpdateSubcategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		response.UnprocessableEntity(c, err.Error())
		return
	}

	resp, err := h.categoryService.UpdateSubcategory(c.Request.Context(), id, req)
	if err != nil {
		mapCategoryError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp)
}

// DeleteSubcategory removes a subcategory.
// DELETE /api/v1/admin/subcategories/:id
func (h *CategoryHandler) DeleteSubcategory(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid subcategory id")
		return
	}

	if err := h.categoryService.DeleteSubcategory(c.Request.Context(), id); err != nil {
		mapCategoryError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "subcategory deleted"})
}

// ReorderSubcategories re-sequences the subcategories of one category.
// POST /api/v1/admin/subcategories/reorder
func (h *CategoryHandler) ReorderSubcategories(c *gin.Context) {
	var req subcategoryReorderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if req.CategoryID == uuid.Nil {
		response.UnprocessableEntity(c, "category_id is required")
		return
	}

	subcategories, err := h.categoryService.ReorderSubcategories(c.Request.Context(), req.CategoryID, req.Items)
	if err != nil {
		mapCategoryError(c, err)
		return
	}
	response.Success(c, http.StatusOK, subcategories)
}
