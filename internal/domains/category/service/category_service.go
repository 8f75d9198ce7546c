package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"perkpal-backend/internal/domains/category/model"
	"perkpal-backend/internal/domains/category/repository"
	"perkpal-backend/internal/shared/ordering"
	"perkpal-backend/internal/shared/utils"
	"perkpal-backend/pkg/cache"
)

// CategoryService owns category and subcategory business logic. Mutations
// invalidate the public listing cache so the site picks up changes.
type CategoryService struct {
	repo     repository.CategoryRepository
	executor *ordering.Executor
	cache    cache.Cache
}

func NewCategoryService(repo repository.CategoryRepository, executor *ordering.Executor, c cache.Cache) ServiceInterface {
	return &CategoryService{repo: repo, executor: executor, cache: c}
}

func (s *CategoryService) invalidatePublicCache(ctx context.Context) {
	// Best effort; a stale public page is tolerable, a failed admin write is not.
	_ = s.cache.DeletePattern(ctx, "public:*")
}

// =====================================================
// CATEGORIES
// =====================================================

func (s *CategoryService) CreateCategory(ctx context.Context, req model.CreateCategoryRequest) (*model.CategoryResponse, error) {
	now := time.Now()
	c := &model.Category{
		ID:          uuid.New(),
		Name:        req.Name,
		Slug:        utils.GenerateSlug(req.Name),
		Description: req.Description,
		IconURL:     req.IconURL,
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.CreateCategory(ctx, c); err != nil {
		return nil, err
	}

	s.invalidatePublicCache(ctx)
	resp := model.ToCategoryResponse(c)
	return &resp, nil
}

func (s *CategoryService) GetCategory(ctx context.Context, id uuid.UUID) (*model.CategoryResponse, error) {
	c, err := s.repo.GetCategoryByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := model.ToCategoryResponse(c)
	return &resp, nil
}

func (s *CategoryService) GetCategoryBySlug(ctx context.Context, slug string) (*model.CategoryResponse, error) {
	c, err := s.repo.GetCategoryBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	resp := model.ToCategoryResponse(c)
	return &resp, nil
}

func (s *CategoryService) ListCategories(ctx context.Context, req model.ListCategoriesRequest) ([]model.CategoryResponse, int, error) {
	req.Normalize()

	categories, total, err := s.repo.ListCategories(ctx, model.CategoryFilter{
		Search:   req.Search,
		IsActive: req.IsActive,
		Page:     req.Page,
		Limit:    req.Limit,
	})
	if err != nil {
		return nil, 0, err
	}

	responses := make([]model.CategoryResponse, 0, len(categories))
	for i := range categories {
		responses = append(responses, model.ToCategoryResponse(&categories[i]))
	}
	return responses, total, nil
}

func (s *CategoryService) UpdateCategory(ctx context.Context, id uuid.UUID, req model.UpdateCategoryRequest) (*model.CategoryResponse, error) {
	c, err := s.repo.GetCategoryByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		c.Name = *req.Name
		c.Slug = utils.GenerateSlug(*req.Name)
	}
	if req.Description != nil {
		c.Description = *req.Description
	}
	if req.IconURL != nil {
		c.IconURL = *req.IconURL
	}
	if req.IsActive != nil {
		c.IsActive = *req.IsActive
	}
	c.UpdatedAt = time.Now()

	if err := s.repo.UpdateCategory(ctx, c); err != nil {
		return nil, err
	}

	s.invalidatePublicCache(ctx)
	resp := model.ToCategoryResponse(c)
	return &resp, nil
}

func (s *CategoryService) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.DeleteCategory(ctx, id); err != nil {
		return err
	}
	s.invalidatePublicCache(ctx)
	return nil
}

// ReorderCategories applies the batch atomically and returns the list in its
// new order.
func (s *CategoryService) ReorderCategories(ctx context.Context, items []ordering.Item) ([]model.CategoryResponse, error) {
	if _, err := s.executor.Reorder(ctx, s.repo.CategoryOrder(), items); err != nil {
		return nil, err
	}
	s.invalidatePublicCache(ctx)

	categories, _, err := s.repo.ListCategories(ctx, model.CategoryFilter{Page: 1, Limit: 100})
	if err != nil {
		return nil, fmt.Errorf("failed to re-fetch categories after reorder: %w", err)
	}

	responses := make([]model.CategoryResponse, 0, len(categories))
	for i := range categories {
		responses = append(responses, model.ToCategoryResponse(&categories[i]))
	}
	return responses, nil
}

// =====================================================
// SUBCATEGORIES
// =====================================================

func (s *CategoryService) CreateSubcategory(ctx context.Context, categoryID uuid.UUID, req model.CreateSubcategoryRequest) (*model.SubcategoryResponse, error) {
	// Parent must exist.
	if _, err := s.repo.GetCategoryByID(ctx, categoryID); err != nil {
		return nil, err
	}

	now := time.Now()
	sub := &model.Subcategory{
		ID:         uuid.New(),
		CategoryID: categoryID,
		Name:       req.Name,
		Slug:       utils.GenerateSlug(req.Name),
		IsActive:   true,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.repo.CreateSubcategory(ctx, sub); err != nil {
		return nil, err
	}

	s.invalidatePublicCache(ctx)
	resp := model.ToSubcategoryResponse(sub)
	return &resp, nil
}

func (s *CategoryService) ListSubcategories(ctx context.Context, req model.ListSubcategoriesRequest) ([]model.SubcategoryResponse, int, error) {
	req.Normalize()

	subcategories, total, err := s.repo.ListSubcategories(ctx, model.SubcategoryFilter{
		CategoryID: req.CategoryID,
		Search:     req.Search,
		IsActive:   req.IsActive,
		Page:       req.Page,
		Limit:      req.Limit,
	})
	if err != nil {
		return nil, 0, err
	}

	responses := make([]model.SubcategoryResponse, 0, len(subcategories))
	for i := range subcategories {
		responses = append(responses, model.ToSubcategoryResponse(&subcategories[i]))
	}
	return responses, total, nil
}

func (s *CategoryService) UpdateSubcategory(ctx context.Context, id uuid.UUID, req model.UpdateSubcategoryRequest) (*model.SubcategoryResponse, error) {
	sub, err := s.repo.GetSubcategoryByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		sub.Name = *req.Name
		sub.Slug = utils.GenerateSlug(*req.Name)
	}
	if req.IsActive != nil {
		sub.IsActive = *req.IsActive
	}
	sub.UpdatedAt = time.Now()

	if err := s.repo.UpdateSubcategory(ctx, sub); err != nil {
		return nil, err
	}

	s.invalidatePublicCache(ctx)
	resp := model.ToSubcategoryResponse(sub)
	return &resp, nil
}

func (s *CategoryService) DeleteSubcategory(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.DeleteSubcategory(ctx, id); err != nil {
		return err
	}
	s.invalidatePublicCache(ctx)
	return nil
}

// ReorderSubcategories re-sequences the subcategories of one parent category.
// The batch is constrained to that scope; siblings of other categories are
// never touched.
func (s *CategoryService) ReorderSubcategories(ctx context.Context, categoryID uuid.UUID, items []ordering.Item) ([]model.SubcategoryResponse, error) {
	if _, err := s.repo.GetCategoryByID(ctx, categoryID); err != nil {
		return nil, err
	}

	if _, err := s.executor.Reorder(ctx, s.repo.SubcategoryOrder(categoryID), items); err != nil {
		return nil, err
	}
	s.invalidatePublicCache(ctx)

	subcategories, _, err := s.repo.ListSubcategories(ctx, model.SubcategoryFilter{
		CategoryID: &categoryID,
		Page:       1,
		Limit:      100,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to re-fetch subcategories after reorder: %w", err)
	}

	responses := make([]model.SubcategoryResponse, 0, len(subcategories))
	for i := range subcategories {
		responses = append(responses, model.ToSubcategoryResponse(&subcategories[i]))
	}
	return responses, nil
}
