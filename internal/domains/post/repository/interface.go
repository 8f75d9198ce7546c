package repository

import (
	"context"

	"github.com/google/uuid"

	"perkpal-backend/internal/domains/post/model"
)

type PostRepository interface {
	Create(ctx context.Context, post *model.Post) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Post, error)
	GetBySlug(ctx context.Context, slug string) (*model.Post, error)
	List(ctx context.Context, filter model.PostFilter) ([]model.Post, int, error)
	Update(ctx context.Context, post *model.Post) error
	Delete(ctx context.Context, id uuid.UUID) error
	ListSlugs(ctx context.Context, status string) ([]string, error)
}
