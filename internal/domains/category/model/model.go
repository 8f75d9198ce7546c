package model

import (
	"time"

	"github.com/google/uuid"
)

// Category groups perks on the public site. Categories are globally ordered
// by display_order; their subcategories are ordered within the parent.
type Category struct {
	ID           uuid.UUID
	Name         string
	Slug         string
	Description  string
	IconURL      string
	DisplayOrder int
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// Set by the repository on list/detail queries.
	SubcategoryCount *int
	PerkCount        *int64
}

// Subcategory is a second-level grouping scoped to its parent category.
type Subcategory struct {
	ID           uuid.UUID
	CategoryID   uuid.UUID
	Name         string
	Slug         string
	DisplayOrder int
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// CategoryFilter narrows list queries.
type CategoryFilter struct {
	Search   *string // case-insensitive substring match on name
	IsActive *bool
	Page     int
	Limit    int
}

func (f CategoryFilter) Offset() int {
	return (f.Page - 1) * f.Limit
}

// SubcategoryFilter narrows subcategory list queries to one parent scope.
type SubcategoryFilter struct {
	CategoryID *uuid.UUID
	Search     *string
	IsActive   *bool
	Page       int
	Limit      int
}

func (f SubcategoryFilter) Offset() int {
	return (f.Page - 1) * f.Limit
}
