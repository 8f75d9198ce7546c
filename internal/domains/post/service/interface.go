package service

import (
	"context"

	"github.com/google/uuid"

	"perkpal-backend/internal/domains/post/model"
)

type ServiceInterface interface {
	CreatePost(ctx context.Context, authorID uuid.UUID, req model.CreatePostRequest) (*model.PostResponse, error)
	GetPost(ctx context.Context, id uuid.UUID) (*model.PostResponse, error)
	ListPosts(ctx context.Context, req model.ListPostsRequest) ([]model.PostResponse, int, error)
	UpdatePost(ctx context.Context, id uuid.UUID, req model.UpdatePostRequest) (*model.PostResponse, error)
	DeletePost(ctx context.Context, id uuid.UUID) error
	PublishPost(ctx context.Context, id uuid.UUID) (*model.PostResponse, error)
	UnpublishPost(ctx context.Context, id uuid.UUID) (*model.PostResponse, error)

	ListPublishedPosts(ctx context.Context, page, limit int) ([]model.PostResponse, int, error)
	GetPublishedPost(ctx context.Context, slug string) (*model.PostResponse, error)
}
