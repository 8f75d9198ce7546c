package repository

import (
	"context"

	"github.com/google/uuid"

	"perkpal-backend/internal/domains/category/model"
	"perkpal-backend/internal/shared/ordering"
)

// CategoryRepository is the persistence boundary for categories and their
// subcategories.
type CategoryRepository interface {
	// Categories
	CreateCategory(ctx context.Context, c *model.Category) error
	GetCategoryByID(ctx context.Context, id uuid.UUID) (*model.Category, error)
	GetCategoryBySlug(ctx context.Context, slug string) (*model.Category, error)
	ListCategories(ctx context.Context, filter model.CategoryFilter) ([]model.Category, int, error)
	UpdateCategory(ctx context.Context, c *model.Category) error
	DeleteCategory(ctx context.Context, id uuid.UUID) error
	// ListCategorySlugs returns the slugs of active categories for the sitemap.
	ListCategorySlugs(ctx context.Context) ([]string, error)

	// Subcategories
	CreateSubcategory(ctx context.Context, s *model.Subcategory) error
	GetSubcategoryByID(ctx context.Context, id uuid.UUID) (*model.Subcategory, error)
	ListSubcategories(ctx context.Context, filter model.SubcategoryFilter) ([]model.Subcategory, int, error)
	UpdateSubcategory(ctx context.Context, s *model.Subcategory) error
	DeleteSubcategory(ctx context.Context, id uuid.UUID) error

	// Ordering scopes. CategoryOrder covers the global category list;
	// SubcategoryOrder is constrained to one parent so a reorder batch can
	// never move rows of a sibling category.
	CategoryOrder() ordering.Store
	SubcategoryOrder(categoryID uuid.UUID) ordering.Store
}
