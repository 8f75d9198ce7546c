package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateSlug(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"SaaS Tools", "saas-tools"},
		{"20% Off Everything!", "20-off-everything"},
		{"  Leading & Trailing  ", "leading-trailing"},
		{"already-a-slug", "already-a-slug"},
		{"Multi   Space", "multi-space"},
		{"Émigré Café", "migr-caf"},
		{"---", ""},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, GenerateSlug(tt.input))
		})
	}
}
