package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"perkpal-backend/internal/domains/page/model"
)

func TestRenderField(t *testing.T) {
	const host = "perkpal.io"

	tests := []struct {
		name  string
		field model.ContentField
		want  RenderedField
	}{
		{
			name:  "text",
			field: model.ContentField{Key: "headline", Label: "Headline", Type: model.FieldText, Value: "Save big"},
			want:  RenderedField{Key: "headline", Label: "Headline", Kind: "text", Text: "Save big"},
		},
		{
			name:  "rich text keeps markup",
			field: model.ContentField{Key: "body", Type: model.FieldRichText, Value: "<p>Hello <em>there</em></p>"},
			want:  RenderedField{Key: "body", Kind: "rich_text", HTML: "<p>Hello <em>there</em></p>"},
		},
		{
			name:  "image",
			field: model.ContentField{Key: "hero", Type: model.FieldImage, Value: "https://cdn.perkpal.io/hero.png"},
			want:  RenderedField{Key: "hero", Kind: "image", URL: "https://cdn.perkpal.io/hero.png"},
		},
		{
			name:  "video",
			field: model.ContentField{Key: "promo", Type: model.FieldVideo, Value: "https://cdn.perkpal.io/promo.mp4"},
			want:  RenderedField{Key: "promo", Kind: "video", URL: "https://cdn.perkpal.io/promo.mp4"},
		},
		{
			name:  "external link opens in new tab",
			field: model.ContentField{Key: "cta", Type: model.FieldLink, Value: "https://vendor.example.com/deal"},
			want:  RenderedField{Key: "cta", Kind: "link", URL: "https://vendor.example.com/deal", TargetBlank: true},
		},
		{
			name:  "same-host link stays in tab",
			field: model.ContentField{Key: "cta", Type: model.FieldLink, Value: "https://perkpal.io/perks"},
			want:  RenderedField{Key: "cta", Kind: "link", URL: "https://perkpal.io/perks"},
		},
		{
			name:  "host comparison ignores case",
			field: model.ContentField{Key: "cta", Type: model.FieldLink, Value: "https://PerkPal.IO/about"},
			want:  RenderedField{Key: "cta", Kind: "link", URL: "https://PerkPal.IO/about"},
		},
		{
			name:  "relative link is internal",
			field: model.ContentField{Key: "cta", Type: model.FieldLink, Value: "/categories/saas"},
			want:  RenderedField{Key: "cta", Kind: "link", URL: "/categories/saas"},
		},
		{
			name:  "integer gets thousands separators",
			field: model.ContentField{Key: "users", Type: model.FieldNumber, Value: "1234567"},
			want:  RenderedField{Key: "users", Kind: "number", Text: "1,234,567"},
		},
		{
			name:  "decimal keeps its fraction",
			field: model.ContentField{Key: "rating", Type: model.FieldNumber, Value: "4200.5"},
			want:  RenderedField{Key: "rating", Kind: "number", Text: "4,200.5"},
		},
		{
			name:  "negative number",
			field: model.ContentField{Key: "delta", Type: model.FieldNumber, Value: "-98765"},
			want:  RenderedField{Key: "delta", Kind: "number", Text: "-98,765"},
		},
		{
			name:  "short number unchanged",
			field: model.ContentField{Key: "count", Type: model.FieldNumber, Value: "999"},
			want:  RenderedField{Key: "count", Kind: "number", Text: "999"},
		},
		{
			name:  "non-numeric value passes through",
			field: model.ContentField{Key: "count", Type: model.FieldNumber, Value: "a lot"},
			want:  RenderedField{Key: "count", Kind: "number", Text: "a lot"},
		},
		{
			name:  "boolean true",
			field: model.ContentField{Key: "active", Type: model.FieldBoolean, Value: "true"},
			want:  RenderedField{Key: "active", Kind: "boolean", Text: "Yes"},
		},
		{
			name:  "boolean one",
			field: model.ContentField{Key: "active", Type: model.FieldBoolean, Value: "1"},
			want:  RenderedField{Key: "active", Kind: "boolean", Text: "Yes"},
		},
		{
			name:  "boolean false",
			field: model.ContentField{Key: "active", Type: model.FieldBoolean, Value: "false"},
			want:  RenderedField{Key: "active", Kind: "boolean", Text: "No"},
		},
		{
			name:  "boolean garbage is No",
			field: model.ContentField{Key: "active", Type: model.FieldBoolean, Value: "maybe"},
			want:  RenderedField{Key: "active", Kind: "boolean", Text: "No"},
		},
		{
			name:  "unknown type degrades to text",
			field: model.ContentField{Key: "widget", Type: "carousel", Value: "raw value"},
			want:  RenderedField{Key: "widget", Kind: "text", Text: "raw value"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RenderField(tt.field, host))
		})
	}
}

func TestRenderFieldsPreservesOrder(t *testing.T) {
	fields := []model.ContentField{
		{Key: "b", Type: model.FieldText, Value: "second", DisplayOrder: 2},
		{Key: "a", Type: model.FieldText, Value: "first", DisplayOrder: 1},
	}

	rendered := RenderFields(fields, "perkpal.io")
	assert.Equal(t, "b", rendered[0].Key)
	assert.Equal(t, "a", rendered[1].Key)
}
