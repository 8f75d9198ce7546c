package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"perkpal-backend/internal/domains/page/model"
	"perkpal-backend/internal/domains/page/repository"
	"perkpal-backend/internal/shared/ordering"
	"perkpal-backend/internal/shared/utils"
	"perkpal-backend/pkg/cache"
)

// RenderedPage is the public, presentation-ready form of a CMS page.
type RenderedPage struct {
	Slug            string          `json:"slug"`
	Title           string          `json:"title"`
	MetaTitle       string          `json:"meta_title"`
	MetaDescription string          `json:"meta_description"`
	Fields          []RenderedField `json:"fields"`
}

// PageService owns CMS pages and homepage sections. Mutations invalidate the
// public cache so the site picks up changes.
type PageService struct {
	repo     repository.PageRepository
	executor *ordering.Executor
	cache    cache.Cache
	cacheTTL time.Duration
}

func NewPageService(repo repository.PageRepository, executor *ordering.Executor, c cache.Cache, cacheTTL time.Duration) ServiceInterface {
	return &PageService{repo: repo, executor: executor, cache: c, cacheTTL: cacheTTL}
}

func (s *PageService) invalidatePublicCache(ctx context.Context) {
	// Best effort; a stale public page is tolerable, a failed admin write is not.
	_ = s.cache.DeletePattern(ctx, "public:*")
}

// =====================================================
// PAGES
// =====================================================

func (s *PageService) CreatePage(ctx context.Context, req model.CreatePageRequest) (*model.PageResponse, error) {
	now := time.Now()
	p := &model.Page{
		ID:              uuid.New(),
		Slug:            utils.GenerateSlug(req.Slug),
		Title:           req.Title,
		MetaTitle:       req.MetaTitle,
		MetaDescription: req.MetaDescription,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	p.Fields = fieldsFromInputs(p.ID, req.Fields)

	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}

	s.invalidatePublicCache(ctx)
	resp := model.ToPageResponse(p)
	return &resp, nil
}

func (s *PageService) GetPage(ctx context.Context, id uuid.UUID) (*model.PageResponse, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := model.ToPageResponse(p)
	return &resp, nil
}

func (s *PageService) ListPages(ctx context.Context) ([]model.PageResponse, error) {
	pages, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]model.PageResponse, 0, len(pages))
	for i := range pages {
		responses = append(responses, model.ToPageResponse(&pages[i]))
	}
	return responses, nil
}

func (s *PageService) UpdatePage(ctx context.Context, id uuid.UUID, req model.UpdatePageRequest) (*model.PageResponse, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		p.Title = *req.Title
	}
	if req.MetaTitle != nil {
		p.MetaTitle = *req.MetaTitle
	}
	if req.MetaDescription != nil {
		p.MetaDescription = *req.MetaDescription
	}
	p.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}

	// A nil slice leaves the existing fields alone; an empty one clears them.
	if req.Fields != nil {
		p.Fields = fieldsFromInputs(p.ID, req.Fields)
		if err := s.repo.ReplaceFields(ctx, p.ID, p.Fields); err != nil {
			return nil, err
		}
	}

	s.invalidatePublicCache(ctx)
	resp := model.ToPageResponse(p)
	return &resp, nil
}

func (s *PageService) DeletePage(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidatePublicCache(ctx)
	return nil
}

// GetPublicPage returns the rendered page, cache-aside. The host is part of
// the key because link rendering depends on it.
func (s *PageService) GetPublicPage(ctx context.Context, slug, currentHost string) (*RenderedPage, error) {
	key := fmt.Sprintf("public:page:%s:%s", slug, currentHost)

	var cached RenderedPage
	if found, err := s.cache.Get(ctx, key, &cached); err == nil && found {
		return &cached, nil
	}

	p, err := s.repo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	rendered := &RenderedPage{
		Slug:            p.Slug,
		Title:           p.Title,
		MetaTitle:       p.MetaTitle,
		MetaDescription: p.MetaDescription,
		Fields:          RenderFields(p.Fields, currentHost),
	}
	_ = s.cache.Set(ctx, key, rendered, s.cacheTTL)
	return rendered, nil
}

// fieldsFromInputs assigns ids and sequential display order from payload order.
func fieldsFromInputs(pageID uuid.UUID, inputs []model.ContentFieldInput) []model.ContentField {
	fields := make([]model.ContentField, 0, len(inputs))
	for i, in := range inputs {
		fields = append(fields, model.ContentField{
			ID:           uuid.New(),
			PageID:       pageID,
			Key:          in.Key,
			Label:        in.Label,
			Type:         in.Type,
			Value:        in.Value,
			DisplayOrder: i + 1,
		})
	}
	return fields
}

// =====================================================
// HOMEPAGE SECTIONS
// =====================================================

func (s *PageService) CreateSection(ctx context.Context, req model.CreateSectionRequest) (*model.SectionResponse, error) {
	now := time.Now()
	section := &model.HomepageSection{
		ID:        uuid.New(),
		Slot:      req.Slot,
		Type:      req.Type,
		Title:     req.Title,
		Subtitle:  req.Subtitle,
		Config:    req.Config,
		IsVisible: true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if section.Slot == "" {
		section.Slot = model.DefaultSlot
	}
	if section.Config == nil {
		section.Config = json.RawMessage(`{}`)
	}
	if req.IsVisible != nil {
		section.IsVisible = *req.IsVisible
	}

	if err := s.repo.CreateSection(ctx, section); err != nil {
		return nil, err
	}

	s.invalidatePublicCache(ctx)
	resp := model.ToSectionResponse(section)
	return &resp, nil
}

func (s *PageService) ListSections(ctx context.Context, slot string) ([]model.SectionResponse, error) {
	return s.listSections(ctx, slot, false)
}

func (s *PageService) ListPublicSections(ctx context.Context, slot string) ([]model.SectionResponse, error) {
	if slot == "" {
		slot = model.DefaultSlot
	}
	key := "public:sections:" + slot

	var cached []model.SectionResponse
	if found, err := s.cache.Get(ctx, key, &cached); err == nil && found {
		return cached, nil
	}

	sections, err := s.listSections(ctx, slot, true)
	if err != nil {
		return nil, err
	}
	_ = s.cache.Set(ctx, key, sections, s.cacheTTL)
	return sections, nil
}

func (s *PageService) listSections(ctx context.Context, slot string, visibleOnly bool) ([]model.SectionResponse, error) {
	if slot == "" {
		slot = model.DefaultSlot
	}
	sections, err := s.repo.ListSections(ctx, slot, visibleOnly)
	if err != nil {
		return nil, err
	}

	responses := make([]model.SectionResponse, 0, len(sections))
	for i := range sections {
		responses = append(responses, model.ToSectionResponse(&sections[i]))
	}
	return responses, nil
}

func (s *PageService) UpdateSection(ctx context.Context, id uuid.UUID, req model.UpdateSectionRequest) (*model.SectionResponse, error) {
	section, err := s.repo.GetSection(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Type != nil {
		section.Type = *req.Type
	}
	if req.Title != nil {
		section.Title = *req.Title
	}
	if req.Subtitle != nil {
		section.Subtitle = *req.Subtitle
	}
	if req.Config != nil {
		section.Config = req.Config
	}
	if req.IsVisible != nil {
		section.IsVisible = *req.IsVisible
	}
	section.UpdatedAt = time.Now()

	if err := s.repo.UpdateSection(ctx, section); err != nil {
		return nil, err
	}

	s.invalidatePublicCache(ctx)
	resp := model.ToSectionResponse(section)
	return &resp, nil
}

func (s *PageService) DeleteSection(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.DeleteSection(ctx, id); err != nil {
		return err
	}
	s.invalidatePublicCache(ctx)
	return nil
}

// ReorderSections re-sequences the sections of one slot. The batch is
// constrained to that scope; sections of other slots are never touched.
func (s *PageService) ReorderSections(ctx context.Context, slot string, items []ordering.Item) ([]model.SectionResponse, error) {
	if slot == "" {
		slot = model.DefaultSlot
	}

	if _, err := s.executor.Reorder(ctx, s.repo.SectionOrder(slot), items); err != nil {
		return nil, err
	}
	s.invalidatePublicCache(ctx)

	sections, err := s.listSections(ctx, slot, false)
	if err != nil {
		return nil, fmt.Errorf("failed to re-fetch sections after reorder: %w", err)
	}
	return sections, nil
}
