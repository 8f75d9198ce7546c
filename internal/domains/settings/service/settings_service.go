package service

import (
	"context"
	"time"

	"perkpal-backend/internal/domains/settings/model"
	"perkpal-backend/internal/domains/settings/repository"
	"perkpal-backend/pkg/cache"
	"perkpal-backend/pkg/logger"
)

const publicSettingsCacheKey = "public:settings"

type ServiceInterface interface {
	Get(ctx context.Context) (*model.SiteSettings, error)
	Update(ctx context.Context, settings model.SiteSettings) (*model.SiteSettings, error)
	// GetPublic serves the settings from cache for the site.
	GetPublic(ctx context.Context) (*model.SiteSettings, error)
}

type SettingsService struct {
	repo     repository.SettingsRepository
	cache    cache.Cache
	cacheTTL time.Duration
}

func NewSettingsService(repo repository.SettingsRepository, c cache.Cache, cacheTTL time.Duration) ServiceInterface {
	return &SettingsService{repo: repo, cache: c, cacheTTL: cacheTTL}
}

func (s *SettingsService) Get(ctx context.Context) (*model.SiteSettings, error) {
	rows, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	settings := model.FromRows(rows)
	return &settings, nil
}

func (s *SettingsService) Update(ctx context.Context, settings model.SiteSettings) (*model.SiteSettings, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.UpsertAll(ctx, settings.ToRows()); err != nil {
		return nil, err
	}

	if err := s.cache.DeletePattern(ctx, "public:*"); err != nil {
		logger.Warn("failed to invalidate public cache", err)
	}
	return &settings, nil
}

func (s *SettingsService) GetPublic(ctx context.Context) (*model.SiteSettings, error) {
	var cached model.SiteSettings
	if found, err := s.cache.Get(ctx, publicSettingsCacheKey, &cached); err == nil && found {
		return &cached, nil
	}

	settings, err := s.Get(ctx)
	if err != nil {
		return nil, err
	}
	_ = s.cache.Set(ctx, publicSettingsCacheKey, settings, s.cacheTTL)
	return settings, nil
}
