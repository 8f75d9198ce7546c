package response

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewMeta(t *testing.T) {
	tests := []struct {
		name           string
		page, limit    int
		total          int
		wantTotalPages int
	}{
		{"partial last page", 3, 10, 25, 3},
		{"exact fit", 1, 10, 30, 3},
		{"single page", 1, 10, 7, 1},
		{"empty set", 1, 10, 0, 0},
		{"limit one", 1, 1, 5, 5},
		{"zero limit guards division", 1, 0, 10, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meta := NewMeta(tt.page, tt.limit, tt.total)
			assert.Equal(t, tt.page, meta.Page)
			assert.Equal(t, tt.limit, meta.Limit)
			assert.Equal(t, tt.total, meta.Total)
			assert.Equal(t, tt.wantTotalPages, meta.TotalPages)
		})
	}
}
