package repository

import (
	"context"

	"github.com/google/uuid"

	"perkpal-backend/internal/domains/media/model"
)

type MediaRepository interface {
	Create(ctx context.Context, media *model.Media) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Media, error)
	List(ctx context.Context, filter model.MediaFilter) ([]model.Media, int, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
