package service

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"perkpal-backend/internal/domains/media/model"
	"perkpal-backend/internal/domains/media/repository"
	"perkpal-backend/internal/infrastructure/storage"
	"perkpal-backend/pkg/logger"
)

type ServiceInterface interface {
	Upload(ctx context.Context, uploadedBy *uuid.UUID, fileName, contentType string, data []byte) (*model.MediaResponse, error)
	List(ctx context.Context, search *string, page, limit int) ([]model.MediaResponse, int, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

var allowedContentTypes = map[string]bool{
	"image/jpeg":      true,
	"image/png":       true,
	"image/gif":       true,
	"image/webp":      true,
	"image/svg+xml":   true,
	"video/mp4":       true,
	"application/pdf": true,
}

// MediaService stores uploads in object storage and tracks them in Postgres.
type MediaService struct {
	repo    repository.MediaRepository
	storage storage.ObjectStorage
}

func NewMediaService(repo repository.MediaRepository, st storage.ObjectStorage) ServiceInterface {
	return &MediaService{repo: repo, storage: st}
}

func (s *MediaService) Upload(ctx context.Context, uploadedBy *uuid.UUID, fileName, contentType string, data []byte) (*model.MediaResponse, error) {
	if int64(len(data)) > model.MaxUploadSize {
		return nil, model.ErrFileTooLarge
	}
	if !allowedContentTypes[contentType] {
		return nil, model.ErrUnsupportedType
	}

	id := uuid.New()
	key := objectKey(id, fileName)

	url, err := s.storage.Upload(ctx, key, data, contentType)
	if err != nil {
		return nil, fmt.Errorf("failed to upload object: %w", err)
	}

	m := &model.Media{
		ID:          id,
		FileName:    fileName,
		ObjectKey:   key,
		URL:         url,
		ContentType: contentType,
		SizeBytes:   int64(len(data)),
		UploadedBy:  uploadedBy,
		CreatedAt:   time.Now(),
	}

	if err := s.repo.Create(ctx, m); err != nil {
		// The object is orphaned if this cleanup fails; acceptable for assets.
		if delErr := s.storage.Delete(ctx, key); delErr != nil {
			logger.Warn("failed to clean up object after db error", delErr)
		}
		return nil, err
	}

	resp := model.ToMediaResponse(m)
	return &resp, nil
}

func (s *MediaService) List(ctx context.Context, search *string, page, limit int) ([]model.MediaResponse, int, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}

	items, total, err := s.repo.List(ctx, model.MediaFilter{Search: search, Page: page, Limit: limit})
	if err != nil {
		return nil, 0, err
	}

	responses := make([]model.MediaResponse, 0, len(items))
	for i := range items {
		responses = append(responses, model.ToMediaResponse(&items[i]))
	}
	return responses, total, nil
}

// Delete removes the database row first so a storage failure cannot leave a
// dangling record pointing at a missing object.
func (s *MediaService) Delete(ctx context.Context, id uuid.UUID) error {
	m, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	if err := s.storage.Delete(ctx, m.ObjectKey); err != nil {
		logger.Warn("failed to delete object from storage", err)
	}
	return nil
}

// objectKey namespaces uploads by date and id to avoid collisions while
// keeping the original extension for content sniffing.
func objectKey(id uuid.UUID, fileName string) string {
	ext := strings.ToLower(filepath.Ext(fileName))
	return fmt.Sprintf("uploads/%s/%s%s", time.Now().UTC().Format("2006/01"), id, ext)
}
