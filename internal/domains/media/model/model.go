package model

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrMediaNotFound   = errors.New("media not found")
	ErrUnsupportedType = errors.New("unsupported file type")
	ErrFileTooLarge    = errors.New("file too large")
)

// MaxUploadSize caps uploads at 10 MiB.
const MaxUploadSize = 10 << 20

// Media is one uploaded asset stored in object storage.
type Media struct {
	ID          uuid.UUID
	FileName    string
	ObjectKey   string
	URL         string
	ContentType string
	SizeBytes   int64
	UploadedBy  *uuid.UUID
	CreatedAt   time.Time
}

type MediaFilter struct {
	Search *string
	Page   int
	Limit  int
}

func (f MediaFilter) Offset() int {
	return (f.Page - 1) * f.Limit
}

type MediaResponse struct {
	ID          uuid.UUID `json:"id"`
	FileName    string    `json:"file_name"`
	URL         string    `json:"url"`
	ContentType string    `json:"content_type"`
	SizeBytes   int64     `json:"size_bytes"`
	CreatedAt   time.Time `json:"created_at"`
}

func ToMediaResponse(m *Media) MediaResponse {
	return MediaResponse{
		ID:          m.ID,
		FileName:    m.FileName,
		URL:         m.URL,
		ContentType: m.ContentType,
		SizeBytes:   m.SizeBytes,
		CreatedAt:   m.CreatedAt,
	}
}
