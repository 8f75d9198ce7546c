package handler

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"perkpal-backend/internal/domains/media/model"
	"perkpal-backend/internal/domains/media/service"
	"perkpal-backend/internal/shared/response"
)

type MediaHandler struct {
	mediaService service.ServiceInterface
}

func NewMediaHandler(mediaService service.ServiceInterface) *MediaHandler {
	return &MediaHandler{mediaService: mediaService}
}

func mapMediaError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, model.ErrMediaNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, model.ErrUnsupportedType):
		response.UnprocessableEntity(c, err.Error())
	case errors.Is(err, model.ErrFileTooLarge):
		response.ErrorResponse(c, http.StatusRequestEntityTooLarge, "FILE_TOO_LARGE", err.Error())
	default:
		response.InternalServerError(c, "internal error")
	}
}

// Upload accepts a multipart form with a single "file" part.
func (h *MediaHandler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, "file is required")
		return
	}
	if fileHeader.Size > model.MaxUploadSize {
		mapMediaError(c, model.ErrFileTooLarge)
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		response.BadRequest(c, "failed to open uploaded file")
		return
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, model.MaxUploadSize+1))
	if err != nil {
		response.InternalServerError(c, "failed to read uploaded file")
		return
	}

	var uploadedBy *uuid.UUID
	if id, err := uuid.Parse(c.GetString("user_id")); err == nil {
		uploadedBy = &id
	}

	media, err := h.mediaService.Upload(
		c.Request.Context(),
		uploadedBy,
		fileHeader.Filename,
		fileHeader.Header.Get("Content-Type"),
		data,
	)
	if err != nil {
		mapMediaError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, media)
}

func (h *MediaHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	var search *string
	if s := c.Query("search"); s != "" {
		search = &s
	}

	items, total, err := h.mediaService.List(c.Request.Context(), search, page, limit)
	if err != nil {
		mapMediaError(c, err)
		return
	}
	response.SuccessWithMeta(c, http.StatusOK, items, response.NewMeta(page, limit, total))
}

func (h *MediaHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid media id")
		return
	}

	if err := h.mediaService.Delete(c.Request.Context(), id); err != nil {
		mapMediaError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "media deleted"})
}
