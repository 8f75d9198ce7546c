package handler

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"perkpal-backend/internal/domains/lead/model"
	"perkpal-backend/internal/domains/lead/service"
	perkmodel "perkpal-backend/internal/domains/perk/model"
	"perkpal-backend/internal/shared/response"
)

type LeadHandler struct {
	leadService service.ServiceInterface
}

func NewLeadHandler(leadService service.ServiceInterface) *LeadHandler {
	return &LeadHandler{leadService: leadService}
}

func mapLeadError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, model.ErrLeadNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, perkmodel.ErrPerkNotFound):
		response.NotFound(c, err.Error())
	default:
		response.InternalServerError(c, "internal error")
	}
}

// CaptureLead accepts a claim-form submission for a published perk.
// POST /api/v1/perks/:slug/leads
func (h *LeadHandler) CaptureLead(c *gin.Context) {
	var req model.CaptureLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		response.UnprocessableEntity(c, err.Error())
		return
	}

	resp, err := h.leadService.CaptureLead(c.Request.Context(), c.Param("slug"), req)
	if err != nil {
		mapLeadError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, resp)
}

// ListLeads lists captured leads, newest first.
// GET /api/v1/admin/leads
func (h *LeadHandler) ListLeads(c *gin.Context) {
	var req model.ListLeadsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	req.Normalize()

	leads, total, err := h.leadService.ListLeads(c.Request.Context(), req)
	if err != nil {
		mapLeadError(c, err)
		return
	}
	response.SuccessWithMeta(c, http.StatusOK, leads, response.NewMeta(req.Page, req.Limit, total))
}

// GetLead returns one lead.
// GET /api/v1/admin/leads/:id
func (h *LeadHandler) GetLead(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid lead id")
		return
	}

	resp, err := h.leadService.GetLead(c.Request.Context(), id)
	if err != nil {
		mapLeadError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp)
}

// DeleteLead removes one lead.
// DELETE /api/v1/admin/leads/:id
func (h *LeadHandler) DeleteLead(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid lead id")
		return
	}

	if err := h.leadService.DeleteLead(c.Request.Context(), id); err != nil {
		mapLeadError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "lead deleted"})
}

// ExportCSV streams the filtered leads as a CSV download.
// GET /api/v1/admin/leads/export
func (h *LeadHandler) ExportCSV(c *gin.Context) {
	var req model.ListLeadsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	data, err := h.leadService.ExportCSV(c.Request.Context(), req)
	if err != nil {
		mapLeadError(c, err)
		return
	}

	filename := fmt.Sprintf("leads_%s.csv", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, "text/csv", data)
}

// ExportExcel streams the filtered leads as an .xlsx download.
// GET /api/v1/admin/leads/export/excel
func (h *LeadHandler) ExportExcel(c *gin.Context) {
	var req model.ListLeadsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	f, err := h.leadService.ExportExcel(c.Request.Context(), req)
	if err != nil {
		mapLeadError(c, err)
		return
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		response.InternalServerError(c, "failed to render workbook")
		return
	}

	filename := fmt.Sprintf("leads_%s.xlsx", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}
