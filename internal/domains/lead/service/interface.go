package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"perkpal-backend/internal/domains/lead/model"
)

type ServiceInterface interface {
	CaptureLead(ctx context.Context, perkSlug string, req model.CaptureLeadRequest) (*model.LeadResponse, error)
	GetLead(ctx context.Context, id uuid.UUID) (*model.LeadResponse, error)
	ListLeads(ctx context.Context, req model.ListLeadsRequest) ([]model.LeadResponse, int, error)
	DeleteLead(ctx context.Context, id uuid.UUID) error

	ExportCSV(ctx context.Context, req model.ListLeadsRequest) ([]byte, error)
	ExportExcel(ctx context.Context, req model.ListLeadsRequest) (*excelize.File, error)
}
