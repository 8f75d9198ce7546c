package repository

import (
	"context"

	"github.com/google/uuid"

	"perkpal-backend/internal/domains/page/model"
	"perkpal-backend/internal/shared/ordering"
)

type PageRepository interface {
	Create(ctx context.Context, page *model.Page) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Page, error)
	GetBySlug(ctx context.Context, slug string) (*model.Page, error)
	List(ctx context.Context) ([]model.Page, error)
	Update(ctx context.Context, page *model.Page) error
	Delete(ctx context.Context, id uuid.UUID) error
	ReplaceFields(ctx context.Context, pageID uuid.UUID, fields []model.ContentField) error
	ListSlugs(ctx context.Context) ([]string, error)

	CreateSection(ctx context.Context, section *model.HomepageSection) error
	GetSection(ctx context.Context, id uuid.UUID) (*model.HomepageSection, error)
	ListSections(ctx context.Context, slot string, visibleOnly bool) ([]model.HomepageSection, error)
	UpdateSection(ctx context.Context, section *model.HomepageSection) error
	DeleteSection(ctx context.Context, id uuid.UUID) error

	// SectionOrder returns an ordering store scoped to one slot so a reorder
	// can never move sections across landing pages.
	SectionOrder(slot string) ordering.Store
}
