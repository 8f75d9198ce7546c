package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"perkpal-backend/internal/domains/perk/model"
	"perkpal-backend/internal/domains/perk/repository"
	"perkpal-backend/internal/shared/ordering"
	"perkpal-backend/internal/shared/utils"
	"perkpal-backend/pkg/cache"
	"perkpal-backend/pkg/logger"
)

// PerkService owns perk business logic. The public listing is served from a
// short-TTL cache so the marketing site can render without hitting Postgres
// on every request; any mutation purges the cached pages.
type PerkService struct {
	repo     repository.PerkRepository
	executor *ordering.Executor
	cache    cache.Cache
	cacheTTL time.Duration
}

func NewPerkService(repo repository.PerkRepository, executor *ordering.Executor, c cache.Cache, cacheTTL time.Duration) ServiceInterface {
	return &PerkService{repo: repo, executor: executor, cache: c, cacheTTL: cacheTTL}
}

type cachedPerkPage struct {
	Perks []model.PerkResponse `json:"perks"`
	Total int                  `json:"total"`
}

func publicPerksCacheKey(req model.ListPerksRequest) string {
	cat, sub, search, featured := "", "", "", ""
	if req.CategoryID != nil {
		cat = req.CategoryID.String()
	}
	if req.SubcategoryID != nil {
		sub = req.SubcategoryID.String()
	}
	if req.Search != nil {
		search = *req.Search
	}
	if req.Featured != nil {
		featured = fmt.Sprintf("%t", *req.Featured)
	}
	return fmt.Sprintf("public:perks:%s:%s:%s:%s:%d:%d", cat, sub, search, featured, req.Page, req.Limit)
}

func (s *PerkService) invalidatePublicCache(ctx context.Context) {
	if err := s.cache.DeletePattern(ctx, "public:*"); err != nil {
		logger.Warn("failed to invalidate public cache", err)
	}
}

func (s *PerkService) CreatePerk(ctx context.Context, req model.CreatePerkRequest) (*model.PerkResponse, error) {
	now := time.Now()
	p := &model.Perk{
		ID:            uuid.New(),
		Title:         req.Title,
		Slug:          utils.GenerateSlug(req.Title),
		Vendor:        req.Vendor,
		Description:   req.Description,
		RedemptionURL: req.RedemptionURL,
		ImageURL:      req.ImageURL,
		DiscountType:  req.DiscountType,
		DiscountValue: req.DiscountValue,
		CategoryID:    req.CategoryID,
		SubcategoryID: req.SubcategoryID,
		Featured:      req.Featured,
		Status:        model.StatusDraft,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}

	s.invalidatePublicCache(ctx)
	resp := model.ToPerkResponse(p)
	return &resp, nil
}

func (s *PerkService) GetPerk(ctx context.Context, id uuid.UUID) (*model.PerkResponse, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := model.ToPerkResponse(p)
	return &resp, nil
}

func (s *PerkService) GetPerkBySlug(ctx context.Context, slug string) (*model.PerkResponse, error) {
	p, err := s.repo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	resp := model.ToPerkResponse(p)
	return &resp, nil
}

func (s *PerkService) ListPerks(ctx context.Context, req model.ListPerksRequest) ([]model.PerkResponse, int, error) {
	req.Normalize()

	perks, total, err := s.repo.List(ctx, model.PerkFilter{
		Search:        req.Search,
		CategoryID:    req.CategoryID,
		SubcategoryID: req.SubcategoryID,
		Status:        req.Status,
		Featured:      req.Featured,
		Page:          req.Page,
		Limit:         req.Limit,
	})
	if err != nil {
		return nil, 0, err
	}

	responses := make([]model.PerkResponse, 0, len(perks))
	for i := range perks {
		responses = append(responses, model.ToPerkResponse(&perks[i]))
	}
	return responses, total, nil
}

// ListPublishedPerks serves the public site. Results are cached per filter
// and page; a cache failure falls through to the database.
func (s *PerkService) ListPublishedPerks(ctx context.Context, req model.ListPerksRequest) ([]model.PerkResponse, int, error) {
	req.Normalize()
	status := model.StatusPublished
	req.Status = &status

	key := publicPerksCacheKey(req)
	var page cachedPerkPage
	hit, err := s.cache.Get(ctx, key, &page)
	if err != nil {
		logger.Warn("public perks cache read failed", err)
	}
	if hit {
		return page.Perks, page.Total, nil
	}

	responses, total, err := s.ListPerks(ctx, req)
	if err != nil {
		return nil, 0, err
	}

	if err := s.cache.Set(ctx, key, cachedPerkPage{Perks: responses, Total: total}, s.cacheTTL); err != nil {
		logger.Warn("public perks cache write failed", err)
	}
	return responses, total, nil
}

func (s *PerkService) UpdatePerk(ctx context.Context, id uuid.UUID, req model.UpdatePerkRequest) (*model.PerkResponse, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		p.Title = *req.Title
		p.Slug = utils.GenerateSlug(*req.Title)
	}
	if req.Vendor != nil {
		p.Vendor = *req.Vendor
	}
	if req.Description != nil {
		p.Description = *req.Description
	}
	if req.RedemptionURL != nil {
		p.RedemptionURL = *req.RedemptionURL
	}
	if req.ImageURL != nil {
		p.ImageURL = *req.ImageURL
	}
	if req.DiscountType != nil {
		p.DiscountType = *req.DiscountType
	}
	if req.DiscountValue != nil {
		p.DiscountValue = *req.DiscountValue
	}
	if req.CategoryID != nil {
		p.CategoryID = req.CategoryID
	}
	if req.SubcategoryID != nil {
		p.SubcategoryID = req.SubcategoryID
	}
	if req.Featured != nil {
		p.Featured = *req.Featured
	}
	if req.Status != nil {
		p.Status = *req.Status
	}
	p.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}

	s.invalidatePublicCache(ctx)
	resp := model.ToPerkResponse(p)
	return &resp, nil
}

func (s *PerkService) DeletePerk(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidatePublicCache(ctx)
	return nil
}

// ReorderPerks applies the batch atomically and returns the perks in their
// new order.
func (s *PerkService) ReorderPerks(ctx context.Context, items []ordering.Item) ([]model.PerkResponse, error) {
	if _, err := s.executor.Reorder(ctx, s.repo.Order(), items); err != nil {
		return nil, err
	}
	s.invalidatePublicCache(ctx)

	perks, _, err := s.repo.List(ctx, model.PerkFilter{Page: 1, Limit: 100})
	if err != nil {
		return nil, fmt.Errorf("failed to re-fetch perks after reorder: %w", err)
	}

	responses := make([]model.PerkResponse, 0, len(perks))
	for i := range perks {
		responses = append(responses, model.ToPerkResponse(&perks[i]))
	}
	return responses, nil
}
