package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"perkpal-backend/internal/domains/post/model"
	"perkpal-backend/internal/domains/post/repository"
	"perkpal-backend/internal/shared/utils"
	"perkpal-backend/pkg/cache"
	"perkpal-backend/pkg/logger"
)

// PostService owns blog post business logic. The public listing and detail
// views are cache-aside with a short TTL; mutations purge the cached pages.
type PostService struct {
	repo     repository.PostRepository
	cache    cache.Cache
	cacheTTL time.Duration
}

func NewPostService(repo repository.PostRepository, c cache.Cache, cacheTTL time.Duration) ServiceInterface {
	return &PostService{repo: repo, cache: c, cacheTTL: cacheTTL}
}

type cachedPostPage struct {
	Posts []model.PostResponse `json:"posts"`
	Total int                  `json:"total"`
}

func (s *PostService) invalidatePublicCache(ctx context.Context) {
	if err := s.cache.DeletePattern(ctx, "public:*"); err != nil {
		logger.Warn("failed to invalidate public cache", err)
	}
}

func (s *PostService) CreatePost(ctx context.Context, authorID uuid.UUID, req model.CreatePostRequest) (*model.PostResponse, error) {
	now := time.Now()
	p := &model.Post{
		ID:            uuid.New(),
		Title:         req.Title,
		Slug:          utils.GenerateSlug(req.Title),
		Excerpt:       req.Excerpt,
		Body:          req.Body,
		CoverImageURL: req.CoverImageURL,
		Status:        model.StatusDraft,
		AuthorID:      &authorID,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}

	resp := model.ToPostResponse(p)
	return &resp, nil
}

func (s *PostService) GetPost(ctx context.Context, id uuid.UUID) (*model.PostResponse, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := model.ToPostResponse(p)
	return &resp, nil
}

func (s *PostService) ListPosts(ctx context.Context, req model.ListPostsRequest) ([]model.PostResponse, int, error) {
	req.Normalize()

	posts, total, err := s.repo.List(ctx, model.PostFilter{
		Status: req.Status,
		Search: req.Search,
		Page:   req.Page,
		Limit:  req.Limit,
	})
	if err != nil {
		return nil, 0, err
	}

	responses := make([]model.PostResponse, 0, len(posts))
	for i := range posts {
		responses = append(responses, model.ToPostListItem(&posts[i]))
	}
	return responses, total, nil
}

func (s *PostService) UpdatePost(ctx context.Context, id uuid.UUID, req model.UpdatePostRequest) (*model.PostResponse, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		p.Title = *req.Title
		p.Slug = utils.GenerateSlug(*req.Title)
	}
	if req.Excerpt != nil {
		p.Excerpt = *req.Excerpt
	}
	if req.Body != nil {
		p.Body = *req.Body
	}
	if req.CoverImageURL != nil {
		p.CoverImageURL = *req.CoverImageURL
	}
	p.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}

	s.invalidatePublicCache(ctx)
	resp := model.ToPostResponse(p)
	return &resp, nil
}

func (s *PostService) DeletePost(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidatePublicCache(ctx)
	return nil
}

// PublishPost makes the post visible on the site. The publish timestamp is
// set once; re-publishing keeps the original date.
func (s *PostService) PublishPost(ctx context.Context, id uuid.UUID) (*model.PostResponse, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	p.Status = model.StatusPublished
	if p.PublishedAt == nil {
		now := time.Now()
		p.PublishedAt = &now
	}
	p.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}

	s.invalidatePublicCache(ctx)
	resp := model.ToPostResponse(p)
	return &resp, nil
}

func (s *PostService) UnpublishPost(ctx context.Context, id uuid.UUID) (*model.PostResponse, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	p.Status = model.StatusDraft
	p.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}

	s.invalidatePublicCache(ctx)
	resp := model.ToPostResponse(p)
	return &resp, nil
}

func (s *PostService) ListPublishedPosts(ctx context.Context, page, limit int) ([]model.PostResponse, int, error) {
	req := model.ListPostsRequest{Page: page, Limit: limit}
	req.Normalize()
	key := fmt.Sprintf("public:posts:%d:%d", req.Page, req.Limit)

	var cached cachedPostPage
	if found, err := s.cache.Get(ctx, key, &cached); err == nil && found {
		return cached.Posts, cached.Total, nil
	}

	status := model.StatusPublished
	posts, total, err := s.repo.List(ctx, model.PostFilter{
		Status: &status,
		Page:   req.Page,
		Limit:  req.Limit,
	})
	if err != nil {
		return nil, 0, err
	}

	responses := make([]model.PostResponse, 0, len(posts))
	for i := range posts {
		responses = append(responses, model.ToPostListItem(&posts[i]))
	}

	_ = s.cache.Set(ctx, key, cachedPostPage{Posts: responses, Total: total}, s.cacheTTL)
	return responses, total, nil
}

func (s *PostService) GetPublishedPost(ctx context.Context, slug string) (*model.PostResponse, error) {
	key := "public:post:" + slug

	var cached model.PostResponse
	if found, err := s.cache.Get(ctx, key, &cached); err == nil && found {
		return &cached, nil
	}

	p, err := s.repo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if p.Status != model.StatusPublished {
		return nil, model.ErrPostNotFound
	}

	resp := model.ToPostResponse(p)
	_ = s.cache.Set(ctx, key, resp, s.cacheTTL)
	return &resp, nil
}
