package model

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

// =====================================================
// REQUEST DTOs
// =====================================================

type CreateCategoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	IconURL     string `json:"icon_url"`
}

func (r CreateCategoryRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required, validation.Length(1, 255)),
		validation.Field(&r.Description, validation.Length(0, 1000)),
		validation.Field(&r.IconURL, validation.Length(0, 2048)),
	)
}

type UpdateCategoryRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	IconURL     *string `json:"icon_url"`
	IsActive    *bool   `json:"is_active"`
}

func (r UpdateCategoryRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.NilOrNotEmpty, validation.Length(1, 255)),
		validation.Field(&r.Description, validation.Length(0, 1000)),
		validation.Field(&r.IconURL, validation.Length(0, 2048)),
	)
}

type CreateSubcategoryRequest struct {
	Name string `json:"name"`
}

func (r CreateSubcategoryRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required, validation.Length(1, 255)),
	)
}

type UpdateSubcategoryRequest struct {
	Name     *string `json:"name"`
	IsActive *bool   `json:"is_active"`
}

func (r UpdateSubcategoryRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.NilOrNotEmpty, validation.Length(1, 255)),
	)
}

type ListCategoriesRequest struct {
	Search   *string `form:"search"`
	IsActive *bool   `form:"is_active"`
	Page     int     `form:"page"`
	Limit    int     `form:"limit"`
}

// Normalize clamps pagination to sane defaults.
func (r *ListCategoriesRequest) Normalize() {
	if r.Page < 1 {
		r.Page = 1
	}
	if r.Limit < 1 || r.Limit > 100 {
		r.Limit = 10
	}
}

type ListSubcategoriesRequest struct {
	CategoryID *uuid.UUID `form:"category_id"`
	Search     *string    `form:"search"`
	IsActive   *bool      `form:"is_active"`
	Page       int        `form:"page"`
	Limit      int        `form:"limit"`
}

func (r *ListSubcategoriesRequest) Normalize() {
	if r.Page < 1 {
		r.Page = 1
	}
	if r.Limit < 1 || r.Limit > 100 {
		r.Limit = 10
	}
}

// =====================================================
// RESPONSE DTOs
// =====================================================

type CategoryResponse struct {
	ID               uuid.UUID `json:"id"`
	Name             string    `json:"name"`
	Slug             string    `json:"slug"`
	Description      string    `json:"description,omitempty"`
	IconURL          string    `json:"icon_url,omitempty"`
	DisplayOrder     int       `json:"display_order"`
	IsActive         bool      `json:"is_active"`
	SubcategoryCount *int      `json:"subcategory_count,omitempty"`
	PerkCount        *int64    `json:"perk_count,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func ToCategoryResponse(c *Category) CategoryResponse {
	return CategoryResponse{
		ID:               c.ID,
		Name:             c.Name,
		Slug:             c.Slug,
		Description:      c.Description,
		IconURL:          c.IconURL,
		DisplayOrder:     c.DisplayOrder,
		IsActive:         c.IsActive,
		SubcategoryCount: c.SubcategoryCount,
		PerkCount:        c.PerkCount,
		CreatedAt:        c.CreatedAt,
		UpdatedAt:        c.UpdatedAt,
	}
}

type SubcategoryResponse struct {
	ID           uuid.UUID `json:"id"`
	CategoryID   uuid.UUID `json:"category_id"`
	Name         string    `json:"name"`
	Slug         string    `json:"slug"`
	DisplayOrder int       `json:"display_order"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func ToSubcategoryResponse(s *Subcategory) SubcategoryResponse {
	return SubcategoryResponse{
		ID:           s.ID,
		CategoryID:   s.CategoryID,
		Name:         s.Name,
		Slug:         s.Slug,
		DisplayOrder: s.DisplayOrder,
		IsActive:     s.IsActive,
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    s.UpdatedAt,
	}
}
