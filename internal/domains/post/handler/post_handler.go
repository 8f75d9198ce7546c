package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"perkpal-backend/internal/domains/post/model"
	"perkpal-backend/internal/domains/post/service"
	"perkpal-backend/internal/shared/response"
)

type PostHandler struct {
	postService service.ServiceInterface
}

func NewPostHandler(postService service.ServiceInterface) *PostHandler {
	return &PostHandler{postService: postService}
}

func mapPostError(c *gin.Context, err error) {
	var verrs validation.Errors
	switch {
	case errors.As(err, &verrs):
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "invalid payload", verrs)
	case errors.Is(err, model.ErrPostNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, model.ErrSlugTaken):
		response.Conflict(c, err.Error())
	default:
		response.InternalServerError(c, "internal error")
	}
}

// =====================================================
// ADMIN
// =====================================================

func (h *PostHandler) CreatePost(c *gin.Context) {
	authorID, err := uuid.Parse(c.GetString("user_id"))
	if err != nil {
		response.Unauthorized(c, "invalid session")
		return
	}

	var req model.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		mapPostError(c, err)
		return
	}

	post, err := h.postService.CreatePost(c.Request.Context(), authorID, req)
	if err != nil {
		mapPostError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, post)
}

func (h *PostHandler) GetPost(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid post id")
		return
	}

	post, err := h.postService.GetPost(c.Request.Context(), id)
	if err != nil {
		mapPostError(c, err)
		return
	}
	response.Success(c, http.StatusOK, post)
}

func (h *PostHandler) ListPosts(c *gin.Context) {
	var req model.ListPostsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "invalid query parameters")
		return
	}
	req.Normalize()

	posts, total, err := h.postService.ListPosts(c.Request.Context(), req)
	if err != nil {
		mapPostError(c, err)
		return
	}
	response.SuccessWithMeta(c, http.StatusOK, posts, response.NewMeta(req.Page, req.Limit, total))
}

func (h *PostHandler) UpdatePost(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid post id")
		return
	}

	var req model.UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		mapPostError(c, err)
		return
	}

	post, err := h.postService.UpdatePost(c.Request.Context(), id, req)
	if err != nil {
		mapPostError(c, err)
		return
	}
	response.Success(c, http.StatusOK, post)
}

func (h *PostHandler) DeletePost(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid post id")
		return
	}

	if err := h.postService.DeletePost(c.Request.Context(), id); err != nil {
		mapPostError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "post deleted"})
}

func (h *PostHandler) PublishPost(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid post id")
		return
	}

	post, err := h.postService.PublishPost(c.Request.Context(), id)
	if err != nil {
		mapPostError(c, err)
		return
	}
	response.Success(c, http.StatusOK, post)
}

func (h *PostHandler) UnpublishPost(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid post id")
		return
	}

	post, err := h.postService.UnpublishPost(c.Request.Context(), id)
	if err != nil {
		mapPostError(c, err)
		return
	}
	response.Success(c, http.StatusOK, post)
}

// =====================================================
// PUBLIC
// =====================================================

func (h *PostHandler) ListPublicPosts(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	req := model.ListPostsRequest{Page: page, Limit: limit}
	req.Normalize()
	page, limit = req.Page, req.Limit

	posts, total, err := h.postService.ListPublishedPosts(c.Request.Context(), page, limit)
	if err != nil {
		mapPostError(c, err)
		return
	}
	response.SuccessWithMeta(c, http.StatusOK, posts, response.NewMeta(page, limit, total))
}

func (h *PostHandler) GetPublicPost(c *gin.Context) {
	post, err := h.postService.GetPublishedPost(c.Request.Context(), c.Param("slug"))
	if err != nil {
		mapPostError(c, err)
		return
	}
	response.Success(c, http.StatusOK, post)
}
