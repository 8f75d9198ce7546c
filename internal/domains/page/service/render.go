package service

import (
	"net/url"
	"strings"

	"perkpal-backend/internal/domains/page/model"
)

// RenderedField is the presentation-ready form of a content field. The public
// site consumes it verbatim, so all type-specific formatting happens here.
type RenderedField struct {
	Key         string `json:"key"`
	Label       string `json:"label"`
	Kind        string `json:"kind"`
	Text        string `json:"text,omitempty"`
	HTML        string `json:"html,omitempty"`
	URL         string `json:"url,omitempty"`
	TargetBlank bool   `json:"target_blank,omitempty"`
}

// RenderField maps one stored content field to its rendered form.
// currentHost is the host the public site is served from and decides whether
// link fields open in a new tab. Unknown field types degrade to plain text so
// an old client never breaks a page.
func RenderField(f model.ContentField, currentHost string) RenderedField {
	out := RenderedField{Key: f.Key, Label: f.Label, Kind: f.Type}

	switch f.Type {
	case model.FieldText:
		out.Text = f.Value
	case model.FieldRichText:
		out.HTML = f.Value
	case model.FieldImage, model.FieldVideo:
		out.URL = f.Value
	case model.FieldLink:
		out.URL = f.Value
		out.TargetBlank = isExternalLink(f.Value, currentHost)
	case model.FieldNumber:
		out.Text = formatNumber(f.Value)
	case model.FieldBoolean:
		out.Text = formatBoolean(f.Value)
	default:
		out.Kind = model.FieldText
		out.Text = f.Value
	}
	return out
}

// RenderFields renders a page's fields preserving their display order.
func RenderFields(fields []model.ContentField, currentHost string) []RenderedField {
	rendered := make([]RenderedField, 0, len(fields))
	for _, f := range fields {
		rendered = append(rendered, RenderField(f, currentHost))
	}
	return rendered
}

// isExternalLink reports whether raw points outside currentHost. Relative
// URLs and parse failures count as internal.
func isExternalLink(raw, currentHost string) bool {
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return false
	}
	return !strings.EqualFold(u.Host, currentHost)
}

// formatNumber inserts thousands separators into the integer part of the
// stored value. Non-numeric values pass through untouched.
func formatNumber(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return s
	}

	sign := ""
	if s[0] == '-' || s[0] == '+' {
		sign = string(s[0])
		s = s[1:]
	}

	intPart := s
	fracPart := ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, fracPart = s[:i], s[i:]
	}
	if intPart == "" {
		return raw
	}
	for _, c := range intPart {
		if c < '0' || c > '9' {
			return raw
		}
	}

	var b strings.Builder
	b.WriteString(sign)
	lead := len(intPart) % 3
	if lead > 0 {
		b.WriteString(intPart[:lead])
		if len(intPart) > lead {
			b.WriteByte(',')
		}
	}
	for i := lead; i < len(intPart); i += 3 {
		b.WriteString(intPart[i : i+3])
		if i+3 < len(intPart) {
			b.WriteByte(',')
		}
	}
	b.WriteString(fracPart)
	return b.String()
}

func formatBoolean(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "true", "1", "yes":
		return "Yes"
	default:
		return "No"
	}
}
