package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/xuri/excelize/v2"

	"perkpal-backend/internal/domains/lead/model"
	"perkpal-backend/internal/domains/lead/repository"
	perkmodel "perkpal-backend/internal/domains/perk/model"
	perkrepo "perkpal-backend/internal/domains/perk/repository"
	"perkpal-backend/pkg/logger"
)

// LeadService captures and manages perk leads. Capture runs on the public
// site; everything else is admin-only.
type LeadService struct {
	repo     repository.LeadRepository
	perkRepo perkrepo.PerkRepository
	queue    *asynq.Client
}

func NewLeadService(repo repository.LeadRepository, perkRepo perkrepo.PerkRepository, queue *asynq.Client) ServiceInterface {
	return &LeadService{repo: repo, perkRepo: perkRepo, queue: queue}
}

// CaptureLead stores a claim-form submission against a published perk and
// queues a notification email for the sales inbox. clientIP comes from the
// request context (set by the client IP middleware).
func (s *LeadService) CaptureLead(ctx context.Context, perkSlug string, req model.CaptureLeadRequest) (*model.LeadResponse, error) {
	perk, err := s.perkRepo.GetBySlug(ctx, perkSlug)
	if err != nil {
		return nil, err
	}
	if perk.Status != perkmodel.StatusPublished {
		return nil, perkmodel.ErrPerkNotFound
	}

	data, err := json.Marshal(req.Data)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal lead data: %w", err)
	}

	lead := &model.Lead{
		ID:        uuid.New(),
		PerkID:    &perk.ID,
		Data:      data,
		CreatedAt: time.Now(),
	}
	if ip := clientIPFromContext(ctx); ip != "" {
		lead.IP = &ip
	}

	if err := s.repo.Create(ctx, lead); err != nil {
		return nil, err
	}

	s.enqueueNotification(lead, perk.Title, perk.Vendor, req.Email())

	lead.PerkTitle = &perk.Title
	lead.PerkVendor = &perk.Vendor
	resp := model.ToLeadResponse(lead)
	return &resp, nil
}

func (s *LeadService) enqueueNotification(lead *model.Lead, perkTitle, perkVendor, email string) {
	if s.queue == nil {
		return
	}

	payload, err := json.Marshal(model.NotifyTaskPayload{
		LeadID:     lead.ID,
		PerkTitle:  perkTitle,
		PerkVendor: perkVendor,
		Email:      email,
		CreatedAt:  lead.CreatedAt,
	})
	if err != nil {
		logger.Warn("failed to marshal lead notification payload", err)
		return
	}

	// Notification delivery is best effort; the lead is already persisted.
	task := asynq.NewTask(model.TaskTypeNotify, payload, asynq.MaxRetry(5))
	if _, err := s.queue.Enqueue(task); err != nil {
		logger.Warn("failed to enqueue lead notification", err)
	}
}

func (s *LeadService) GetLead(ctx context.Context, id uuid.UUID) (*model.LeadResponse, error) {
	lead, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := model.ToLeadResponse(lead)
	return &resp, nil
}

func (s *LeadService) ListLeads(ctx context.Context, req model.ListLeadsRequest) ([]model.LeadResponse, int, error) {
	req.Normalize()

	leads, total, err := s.repo.List(ctx, model.LeadFilter{
		PerkID: req.PerkID,
		From:   req.From,
		To:     req.To,
		Page:   req.Page,
		Limit:  req.Limit,
	})
	if err != nil {
		return nil, 0, err
	}

	responses := make([]model.LeadResponse, 0, len(leads))
	for i := range leads {
		responses = append(responses, model.ToLeadResponse(&leads[i]))
	}
	return responses, total, nil
}

func (s *LeadService) DeleteLead(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

func (s *LeadService) exportRows(ctx context.Context, req model.ListLeadsRequest) ([]model.ExportRow, error) {
	leads, err := s.repo.ListAllForExport(ctx, model.LeadFilter{
		PerkID: req.PerkID,
		From:   req.From,
		To:     req.To,
	})
	if err != nil {
		return nil, err
	}

	rows := make([]model.ExportRow, 0, len(leads))
	for _, l := range leads {
		rows = append(rows, model.ExportRow{
			LeadID:     l.ID.String(),
			PerkTitle:  l.PerkTitle,
			PerkVendor: l.PerkVendor,
			CreatedAt:  l.CreatedAt,
			IP:         l.IP,
			Data:       l.Data,
		})
	}
	return rows, nil
}

func (s *LeadService) ExportCSV(ctx context.Context, req model.ListLeadsRequest) ([]byte, error) {
	rows, err := s.exportRows(ctx, req)
	if err != nil {
		return nil, err
	}
	return BuildCSV(rows)
}

func (s *LeadService) ExportExcel(ctx context.Context, req model.ListLeadsRequest) (*excelize.File, error) {
	rows, err := s.exportRows(ctx, req)
	if err != nil {
		return nil, err
	}
	return BuildExcel(rows)
}
