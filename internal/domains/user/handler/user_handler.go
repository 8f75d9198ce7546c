package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"perkpal-backend/internal/domains/user/model"
	"perkpal-backend/internal/domains/user/service"
	"perkpal-backend/internal/shared/response"
)

type UserHandler struct {
	userService service.ServiceInterface
}

func NewUserHandler(userService service.ServiceInterface) *UserHandler {
	return &UserHandler{userService: userService}
}

func mapUserError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, model.ErrInvalidCredentials):
		response.Unauthorized(c, err.Error())
	case errors.Is(err, model.ErrAccountDisabled):
		response.Forbidden(c, err.Error())
	case errors.Is(err, model.ErrEmailTaken):
		response.Conflict(c, err.Error())
	case errors.Is(err, model.ErrUserNotFound):
		response.NotFound(c, err.Error())
	default:
		response.InternalServerError(c, "internal error")
	}
}

// Register creates an account.
// POST /api/v1/auth/register
func (h *UserHandler) Register(c *gin.Context) {
	var req model.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		response.UnprocessableEntity(c, err.Error())
		return
	}

	resp, err := h.userService.Register(c.Request.Context(), req)
	if err != nil {
		mapUserError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, resp)
}

// Login exchanges credentials for a token pair.
// POST /api/v1/auth/login
func (h *UserHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		response.UnprocessableEntity(c, err.Error())
		return
	}

	resp, err := h.userService.Login(c.Request.Context(), req)
	if err != nil {
		mapUserError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp)
}

// Refresh exchanges a refresh token for a fresh pair.
// POST /api/v1/auth/refresh
func (h *UserHandler) Refresh(c *gin.Context) {
	var req model.RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		response.UnprocessableEntity(c, err.Error())
		return
	}

	resp, err := h.userService.Refresh(c.Request.Context(), req)
	if err != nil {
		mapUserError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp)
}

// Me returns the authenticated user.
// GET /api/v1/auth/me
func (h *UserHandler) Me(c *gin.Context) {
	userID, err := uuid.Parse(c.GetString("user_id"))
	if err != nil {
		response.Unauthorized(c, "invalid session")
		return
	}

	resp, err := h.userService.Me(c.Request.Context(), userID)
	if err != nil {
		mapUserError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp)
}
