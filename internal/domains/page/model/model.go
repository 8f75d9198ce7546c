package model

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Content field types supported by the mini CMS.
const (
	FieldText     = "text"
	FieldRichText = "rich_text"
	FieldImage    = "image"
	FieldVideo    = "video"
	FieldLink     = "link"
	FieldNumber   = "number"
	FieldBoolean  = "boolean"
)

// Homepage section types.
const (
	SectionHero          = "hero"
	SectionPerkGrid      = "perk_grid"
	SectionCategoryStrip = "category_strip"
	SectionCTA           = "cta"
	SectionTestimonial   = "testimonial"
)

// DefaultSlot is the scope homepage sections belong to unless the admin
// targets another landing page.
const DefaultSlot = "home"

// Page is a static CMS page (about, privacy, terms, ...) rendered by the
// public site from its ordered content fields.
type Page struct {
	ID              uuid.UUID
	Slug            string
	Title           string
	MetaTitle       string
	MetaDescription string
	CreatedAt       time.Time
	UpdatedAt       time.Time

	Fields []ContentField
}

// ContentField is one typed value on a page. Fields render in display_order.
type ContentField struct {
	ID           uuid.UUID
	PageID       uuid.UUID
	Key          string
	Label        string
	Type         string
	Value        string
	DisplayOrder int
}

// HomepageSection is one block of a landing page, ordered within its slot.
type HomepageSection struct {
	ID           uuid.UUID
	Slot         string
	Type         string
	Title        string
	Subtitle     string
	Config       json.RawMessage
	IsVisible    bool
	DisplayOrder int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
