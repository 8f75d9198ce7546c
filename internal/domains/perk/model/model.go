package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Perk status lifecycle: draft -> published -> archived.
const (
	StatusDraft     = "draft"
	StatusPublished = "published"
	StatusArchived  = "archived"
)

// Discount types.
const (
	DiscountPercent = "percent"
	DiscountFixed   = "fixed"
)

// Perk is a vendor offer surfaced on the public site. Perks are globally
// ordered by display_order in the admin list and on the site.
type Perk struct {
	ID            uuid.UUID
	Title         string
	Slug          string
	Vendor        string
	Description   string
	RedemptionURL string
	ImageURL      string

	DiscountType  string
	DiscountValue decimal.Decimal

	CategoryID    *uuid.UUID
	SubcategoryID *uuid.UUID

	Featured     bool
	Status       string
	DisplayOrder int
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// Joined on list/detail queries.
	CategoryName *string
}

// PerkFilter narrows list queries.
type PerkFilter struct {
	Search        *string // case-insensitive substring match on title
	CategoryID    *uuid.UUID
	SubcategoryID *uuid.UUID
	Status        *string
	Featured      *bool
	Page          int
	Limit         int
}

func (f PerkFilter) Offset() int {
	return (f.Page - 1) * f.Limit
}
