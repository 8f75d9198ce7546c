// Package ordering implements drag-and-drop re-sequencing for every list in
// the admin dashboard that carries a display_order column (categories,
// subcategories, perks, homepage sections).
//
// A client submits the complete new ordering of the visible set as a batch of
// (id, display_order) pairs. The batch is validated up front and then applied
// in a single transaction: either every row gets its new position or none do.
package ordering

import (
	"errors"
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

// Item is one (id, position) pair of a reorder batch.
type Item struct {
	ID           uuid.UUID `json:"id"`
	DisplayOrder int       `json:"display_order"`
}

// ReorderRequest is the payload of every POST .../reorder endpoint.
type ReorderRequest struct {
	Items []Item `json:"items"`
}

func (r ReorderRequest) Validate() error {
	return ValidateBatch(r.Items)
}

// ValidateBatch checks the structural rules before any mutation is attempted:
// non-empty batch, non-nil ids, display_order >= 0, no duplicate ids.
// Duplicate display_order values are accepted; the standard client always
// sends a contiguous 1..N sequence but the executor does not require it.
//
// The returned error is a validation.Errors keyed by the offending field, so
// the handler can surface every problem at once.
func ValidateBatch(items []Item) error {
	if len(items) == 0 {
		return validation.Errors{"items": errors.New("must not be empty")}
	}

	errs := validation.Errors{}
	seen := make(map[uuid.UUID]int, len(items))

	for i, item := range items {
		if item.ID == uuid.Nil {
			errs[fmt.Sprintf("items.%d.id", i)] = errors.New("is required")
		} else if prev, dup := seen[item.ID]; dup {
			errs[fmt.Sprintf("items.%d.id", i)] = fmt.Errorf("duplicates id at index %d", prev)
		} else {
			seen[item.ID] = i
		}

		if item.DisplayOrder < 0 {
			errs[fmt.Sprintf("items.%d.display_order", i)] = errors.New("must be a non-negative integer")
		}
	}

	return errs.Filter()
}
