package model

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type ContentFieldResponse struct {
	ID           uuid.UUID `json:"id"`
	Key          string    `json:"key"`
	Label        string    `json:"label"`
	Type         string    `json:"type"`
	Value        string    `json:"value"`
	DisplayOrder int       `json:"display_order"`
}

type PageResponse struct {
	ID              uuid.UUID              `json:"id"`
	Slug            string                 `json:"slug"`
	Title           string                 `json:"title"`
	MetaTitle       string                 `json:"meta_title"`
	MetaDescription string                 `json:"meta_description"`
	Fields          []ContentFieldResponse `json:"fields,omitempty"`
	CreatedAt       time.Time              `json:"created_at"`
	UpdatedAt       time.Time              `json:"updated_at"`
}

func ToPageResponse(p *Page) PageResponse {
	resp := PageResponse{
		ID:              p.ID,
		Slug:            p.Slug,
		Title:           p.Title,
		MetaTitle:       p.MetaTitle,
		MetaDescription: p.MetaDescription,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
	for _, f := range p.Fields {
		resp.Fields = append(resp.Fields, ContentFieldResponse{
			ID:           f.ID,
			Key:          f.Key,
			Label:        f.Label,
			Type:         f.Type,
			Value:        f.Value,
			DisplayOrder: f.DisplayOrder,
		})
	}
	return resp
}

type SectionResponse struct {
	ID           uuid.UUID       `json:"id"`
	Slot         string          `json:"slot"`
	Type         string          `json:"type"`
	Title        string          `json:"title"`
	Subtitle     string          `json:"subtitle"`
	Config       json.RawMessage `json:"config"`
	IsVisible    bool            `json:"is_visible"`
	DisplayOrder int             `json:"display_order"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

func ToSectionResponse(s *HomepageSection) SectionResponse {
	return SectionResponse{
		ID:           s.ID,
		Slot:         s.Slot,
		Type:         s.Type,
		Title:        s.Title,
		Subtitle:     s.Subtitle,
		Config:       s.Config,
		IsVisible:    s.IsVisible,
		DisplayOrder: s.DisplayOrder,
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    s.UpdatedAt,
	}
}
