package model

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"
)

type CreatePostRequest struct {
	Title         string `json:"title"`
	Excerpt       string `json:"excerpt"`
	Body          string `json:"body"`
	CoverImageURL string `json:"cover_image_url"`
}

func (r CreatePostRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required, validation.Length(1, 300)),
		validation.Field(&r.Excerpt, validation.Length(0, 500)),
		validation.Field(&r.Body, validation.Required),
		validation.Field(&r.CoverImageURL, is.URL),
	)
}

type UpdatePostRequest struct {
	Title         *string `json:"title"`
	Excerpt       *string `json:"excerpt"`
	Body          *string `json:"body"`
	CoverImageURL *string `json:"cover_image_url"`
}

func (r UpdatePostRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.When(r.Title != nil, validation.Length(1, 300))),
		validation.Field(&r.Excerpt, validation.When(r.Excerpt != nil, validation.Length(0, 500))),
		validation.Field(&r.CoverImageURL, validation.When(r.CoverImageURL != nil && *r.CoverImageURL != "", is.URL)),
	)
}

type ListPostsRequest struct {
	Status *string `form:"status"`
	Search *string `form:"search"`
	Page   int     `form:"page"`
	Limit  int     `form:"limit"`
}

func (r *ListPostsRequest) Normalize() {
	if r.Page < 1 {
		r.Page = 1
	}
	if r.Limit < 1 {
		r.Limit = 10
	}
	if r.Limit > 100 {
		r.Limit = 100
	}
}

type PostResponse struct {
	ID            uuid.UUID  `json:"id"`
	Title         string     `json:"title"`
	Slug          string     `json:"slug"`
	Excerpt       string     `json:"excerpt"`
	Body          string     `json:"body,omitempty"`
	CoverImageURL string     `json:"cover_image_url"`
	Status        string     `json:"status"`
	AuthorName    *string    `json:"author_name,omitempty"`
	PublishedAt   *time.Time `json:"published_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

func ToPostResponse(p *Post) PostResponse {
	return PostResponse{
		ID:            p.ID,
		Title:         p.Title,
		Slug:          p.Slug,
		Excerpt:       p.Excerpt,
		Body:          p.Body,
		CoverImageURL: p.CoverImageURL,
		Status:        p.Status,
		AuthorName:    p.AuthorName,
		PublishedAt:   p.PublishedAt,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

// ToPostListItem omits the body for list views.
func ToPostListItem(p *Post) PostResponse {
	resp := ToPostResponse(p)
	resp.Body = ""
	return resp
}
