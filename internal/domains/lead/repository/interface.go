package repository

import (
	"context"

	"github.com/google/uuid"

	"perkpal-backend/internal/domains/lead/model"
)

type LeadRepository interface {
	Create(ctx context.Context, l *model.Lead) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Lead, error)
	List(ctx context.Context, filter model.LeadFilter) ([]model.Lead, int, error)
	// ListAllForExport returns every lead matching the filter, newest first,
	// ignoring pagination. Used by the CSV and Excel exports.
	ListAllForExport(ctx context.Context, filter model.LeadFilter) ([]model.Lead, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
