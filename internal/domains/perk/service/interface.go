package service

import (
	"context"

	"github.com/google/uuid"

	"perkpal-backend/internal/domains/perk/model"
	"perkpal-backend/internal/shared/ordering"
)

type ServiceInterface interface {
	CreatePerk(ctx context.Context, req model.CreatePerkRequest) (*model.PerkResponse, error)
	GetPerk(ctx context.Context, id uuid.UUID) (*model.PerkResponse, error)
	GetPerkBySlug(ctx context.Context, slug string) (*model.PerkResponse, error)
	ListPerks(ctx context.Context, req model.ListPerksRequest) ([]model.PerkResponse, int, error)
	ListPublishedPerks(ctx context.Context, req model.ListPerksRequest) ([]model.PerkResponse, int, error)
	UpdatePerk(ctx context.Context, id uuid.UUID, req model.UpdatePerkRequest) (*model.PerkResponse, error)
	DeletePerk(ctx context.Context, id uuid.UUID) error
	ReorderPerks(ctx context.Context, items []ordering.Item) ([]model.PerkResponse, error)
}
