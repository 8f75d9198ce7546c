package model

import (
	"time"

	"github.com/google/uuid"
)

// Post statuses.
const (
	StatusDraft     = "draft"
	StatusPublished = "published"
)

// Post is a blog article. Only published posts are visible on the site.
type Post struct {
	ID            uuid.UUID
	Title         string
	Slug          string
	Excerpt       string
	Body          string
	CoverImageURL string
	Status        string
	AuthorID      *uuid.UUID
	PublishedAt   *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time

	// Joined from users for list views.
	AuthorName *string
}

type PostFilter struct {
	Status *string
	Search *string
	Page   int
	Limit  int
}

func (f PostFilter) Offset() int {
	return (f.Page - 1) * f.Limit
}
