package repository

import (
	"context"

	"github.com/google/uuid"

	"perkpal-backend/internal/domains/perk/model"
	"perkpal-backend/internal/shared/ordering"
)

type PerkRepository interface {
	Create(ctx context.Context, p *model.Perk) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Perk, error)
	GetBySlug(ctx context.Context, slug string) (*model.Perk, error)
	List(ctx context.Context, filter model.PerkFilter) ([]model.Perk, int, error)
	ListSlugs(ctx context.Context, status string) ([]string, error)
	Update(ctx context.Context, p *model.Perk) error
	Delete(ctx context.Context, id uuid.UUID) error

	// Order returns the ordering store for the global perk list.
	Order() ordering.Store
}
