package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"perkpal-backend/internal/domains/seo/service"
	"perkpal-backend/internal/shared/response"
)

type SEOHandler struct {
	seoService service.ServiceInterface
}

func NewSEOHandler(seoService service.ServiceInterface) *SEOHandler {
	return &SEOHandler{seoService: seoService}
}

func (h *SEOHandler) Sitemap(c *gin.Context) {
	body, err := h.seoService.Sitemap(c.Request.Context())
	if err != nil {
		response.InternalServerError(c, "internal error")
		return
	}
	c.Data(http.StatusOK, "application/xml; charset=utf-8", body)
}

func (h *SEOHandler) Robots(c *gin.Context) {
	body, err := h.seoService.Robots(c.Request.Context())
	if err != nil {
		response.InternalServerError(c, "internal error")
		return
	}
	c.String(http.StatusOK, body)
}
