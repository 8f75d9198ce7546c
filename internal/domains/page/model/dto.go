package model

import (
	"encoding/json"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var fieldTypes = []interface{}{
	FieldText, FieldRichText, FieldImage, FieldVideo, FieldLink, FieldNumber, FieldBoolean,
}

var sectionTypes = []interface{}{
	SectionHero, SectionPerkGrid, SectionCategoryStrip, SectionCTA, SectionTestimonial,
}

// ContentFieldInput is one field of a page create/update payload. The slice
// order of the payload becomes the display order.
type ContentFieldInput struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Type  string `json:"type"`
	Value string `json:"value"`
}

func (r ContentFieldInput) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Key, validation.Required, validation.Length(1, 100)),
		validation.Field(&r.Label, validation.Length(0, 200)),
		validation.Field(&r.Type, validation.Required, validation.In(fieldTypes...)),
	)
}

type CreatePageRequest struct {
	Slug            string              `json:"slug"`
	Title           string              `json:"title"`
	MetaTitle       string              `json:"meta_title"`
	MetaDescription string              `json:"meta_description"`
	Fields          []ContentFieldInput `json:"fields"`
}

func (r CreatePageRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Slug, validation.Required, validation.Length(1, 200)),
		validation.Field(&r.Title, validation.Required, validation.Length(1, 300)),
		validation.Field(&r.MetaTitle, validation.Length(0, 300)),
		validation.Field(&r.MetaDescription, validation.Length(0, 500)),
		validation.Field(&r.Fields),
	)
}

type UpdatePageRequest struct {
	Title           *string             `json:"title"`
	MetaTitle       *string             `json:"meta_title"`
	MetaDescription *string             `json:"meta_description"`
	Fields          []ContentFieldInput `json:"fields"`
}

func (r UpdatePageRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.When(r.Title != nil, validation.Length(1, 300))),
		validation.Field(&r.Fields),
	)
}

type CreateSectionRequest struct {
	Slot      string          `json:"slot"`
	Type      string          `json:"type"`
	Title     string          `json:"title"`
	Subtitle  string          `json:"subtitle"`
	Config    json.RawMessage `json:"config"`
	IsVisible *bool           `json:"is_visible"`
}

func (r CreateSectionRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Type, validation.Required, validation.In(sectionTypes...)),
		validation.Field(&r.Slot, validation.Length(0, 100)),
		validation.Field(&r.Title, validation.Length(0, 300)),
	)
}

type UpdateSectionRequest struct {
	Type      *string         `json:"type"`
	Title     *string         `json:"title"`
	Subtitle  *string         `json:"subtitle"`
	Config    json.RawMessage `json:"config"`
	IsVisible *bool           `json:"is_visible"`
}

func (r UpdateSectionRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Type, validation.When(r.Type != nil, validation.In(sectionTypes...))),
	)
}
