package ordering

import (
	"testing"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateBatch(t *testing.T) {
	idA := uuid.New()
	idB := uuid.New()

	tests := []struct {
		name      string
		items     []Item
		wantKeys  []string
		wantValid bool
	}{
		{
			name:      "valid contiguous batch",
			items:     []Item{{ID: idA, DisplayOrder: 1}, {ID: idB, DisplayOrder: 2}},
			wantValid: true,
		},
		{
			name:      "single item",
			items:     []Item{{ID: idA, DisplayOrder: 1}},
			wantValid: true,
		},
		{
			name:      "duplicate display_order is accepted",
			items:     []Item{{ID: idA, DisplayOrder: 3}, {ID: idB, DisplayOrder: 3}},
			wantValid: true,
		},
		{
			name:      "zero display_order is accepted",
			items:     []Item{{ID: idA, DisplayOrder: 0}},
			wantValid: true,
		},
		{
			name:     "empty batch",
			items:    []Item{},
			wantKeys: []string{"items"},
		},
		{
			name:     "nil id",
			items:    []Item{{ID: uuid.Nil, DisplayOrder: 1}},
			wantKeys: []string{"items.0.id"},
		},
		{
			name:     "negative display_order",
			items:    []Item{{ID: idA, DisplayOrder: -1}},
			wantKeys: []string{"items.0.display_order"},
		},
		{
			name:     "duplicate id",
			items:    []Item{{ID: idA, DisplayOrder: 1}, {ID: idA, DisplayOrder: 2}},
			wantKeys: []string{"items.1.id"},
		},
		{
			name:     "multiple problems reported at once",
			items:    []Item{{ID: uuid.Nil, DisplayOrder: -5}, {ID: idB, DisplayOrder: 1}, {ID: idB, DisplayOrder: 2}},
			wantKeys: []string{"items.0.id", "items.0.display_order", "items.2.id"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateBatch(tt.items)
			if tt.wantValid {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			var verrs validation.Errors
			require.ErrorAs(t, err, &verrs)
			for _, key := range tt.wantKeys {
				assert.Contains(t, verrs, key)
			}
			assert.Len(t, verrs, len(tt.wantKeys))
		})
	}
}

func TestReorderRequestValidate(t *testing.T) {
	assert.Error(t, ReorderRequest{}.Validate())
	assert.NoError(t, ReorderRequest{Items: []Item{{ID: uuid.New(), DisplayOrder: 1}}}.Validate())
}
