package service

import (
	"context"

	"github.com/google/uuid"

	"perkpal-backend/internal/domains/category/model"
	"perkpal-backend/internal/shared/ordering"
)

type ServiceInterface interface {
	CreateCategory(ctx context.Context, req model.CreateCategoryRequest) (*model.CategoryResponse, error)
	GetCategory(ctx context.Context, id uuid.UUID) (*model.CategoryResponse, error)
	GetCategoryBySlug(ctx context.Context, slug string) (*model.CategoryResponse, error)
	ListCategories(ctx context.Context, req model.ListCategoriesRequest) ([]model.CategoryResponse, int, error)
	UpdateCategory(ctx context.Context, id uuid.UUID, req model.UpdateCategoryRequest) (*model.CategoryResponse, error)
	DeleteCategory(ctx context.Context, id uuid.UUID) error
	ReorderCategories(ctx context.Context, items []ordering.Item) ([]model.CategoryResponse, error)

	CreateSubcategory(ctx context.Context, categoryID uuid.UUID, req model.CreateSubcategoryRequest) (*model.SubcategoryResponse, error)
	ListSubcategories(ctx context.Context, req model.ListSubcategoriesRequest) ([]model.SubcategoryResponse, int, error)
	UpdateSubcategory(ctx context.Context, id uuid.UUID, req model.UpdateSubcategoryRequest) (*model.SubcategoryResponse, error)
	DeleteSubcategory(ctx context.Context, id uuid.UUID) error
	ReorderSubcategories(ctx context.Context, categoryID uuid.UUID, items []ordering.Item) ([]model.SubcategoryResponse, error)
}
