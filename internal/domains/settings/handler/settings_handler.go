package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"perkpal-backend/internal/domains/settings/model"
	"perkpal-backend/internal/domains/settings/service"
	"perkpal-backend/internal/shared/response"
)

type SettingsHandler struct {
	settingsService service.ServiceInterface
}

func NewSettingsHandler(settingsService service.ServiceInterface) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService}
}

func (h *SettingsHandler) Get(c *gin.Context) {
	settings, err := h.settingsService.Get(c.Request.Context())
	if err != nil {
		response.InternalServerError(c, "internal error")
		return
	}
	response.Success(c, http.StatusOK, settings)
}

func (h *SettingsHandler) Update(c *gin.Context) {
	var req model.SiteSettings
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	settings, err := h.settingsService.Update(c.Request.Context(), req)
	if err != nil {
		var verrs validation.Errors
		if errors.As(err, &verrs) {
			response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "invalid settings", verrs)
			return
		}
		response.InternalServerError(c, "internal error")
		return
	}
	response.Success(c, http.StatusOK, settings)
}

func (h *SettingsHandler) GetPublic(c *gin.Context) {
	settings, err := h.settingsService.GetPublic(c.Request.Context())
	if err != nil {
		response.InternalServerError(c, "internal error")
		return
	}
	response.Success(c, http.StatusOK, settings)
}
