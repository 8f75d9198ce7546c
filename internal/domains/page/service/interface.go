package service

import (
	"context"

	"github.com/google/uuid"

	"perkpal-backend/internal/domains/page/model"
	"perkpal-backend/internal/shared/ordering"
)

type ServiceInterface interface {
	CreatePage(ctx context.Context, req model.CreatePageRequest) (*model.PageResponse, error)
	GetPage(ctx context.Context, id uuid.UUID) (*model.PageResponse, error)
	ListPages(ctx context.Context) ([]model.PageResponse, error)
	UpdatePage(ctx context.Context, id uuid.UUID, req model.UpdatePageRequest) (*model.PageResponse, error)
	DeletePage(ctx context.Context, id uuid.UUID) error
	GetPublicPage(ctx context.Context, slug, currentHost string) (*RenderedPage, error)

	CreateSection(ctx context.Context, req model.CreateSectionRequest) (*model.SectionResponse, error)
	ListSections(ctx context.Context, slot string) ([]model.SectionResponse, error)
	ListPublicSections(ctx context.Context, slot string) ([]model.SectionResponse, error)
	UpdateSection(ctx context.Context, id uuid.UUID, req model.UpdateSectionRequest) (*model.SectionResponse, error)
	DeleteSection(ctx context.Context, id uuid.UUID) error
	ReorderSections(ctx context.Context, slot string, items []ordering.Item) ([]model.SectionResponse, error)
}
