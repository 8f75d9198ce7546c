package ordering

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"perkpal-backend/pkg/database"
)

// ErrUnknownID is returned when a batch references a row that does not exist
// in the target scope. The whole batch is rolled back.
var ErrUnknownID = errors.New("reorder batch references unknown id")

// Store is the persistence boundary a reorderable list implements. The update
// must touch only display_order and updated_at of the matching row, and must
// constrain on the list's scope so a batch can never move rows of another
// scope. It reports the number of rows affected.
type Store interface {
	UpdateDisplayOrder(ctx context.Context, tx pgx.Tx, id uuid.UUID, displayOrder int, updatedAt time.Time) (int64, error)
}

// TxRunner runs fn inside a transaction. Production wiring uses
// pkg/database.WithTransaction; tests substitute a pass-through.
type TxRunner func(ctx context.Context, fn func(pgx.Tx) error) error

// Executor applies validated reorder batches atomically.
type Executor struct {
	run TxRunner
	now func() time.Time
}

func NewExecutor(pool *pgxpool.Pool) *Executor {
	return &Executor{
		run: func(ctx context.Context, fn func(pgx.Tx) error) error {
			return database.WithTransaction(ctx, pool, fn)
		},
		now: time.Now,
	}
}

// NewExecutorWithRunner exists for tests that have no live pool.
func NewExecutorWithRunner(run TxRunner) *Executor {
	return &Executor{run: run, now: time.Now}
}

// Reorder validates the batch and persists every item's new position in one
// transaction. All-or-nothing: a validation failure, an unknown id, or any
// persistence error leaves every row untouched. Resubmitting the same batch
// is idempotent. Returns the number of rows updated.
func (e *Executor) Reorder(ctx context.Context, store Store, items []Item) (int, error) {
	if err := ValidateBatch(items); err != nil {
		return 0, err
	}

	now := e.now()
	updated := 0

	err := e.run(ctx, func(tx pgx.Tx) error {
		for _, item := range items {
			affected, err := store.UpdateDisplayOrder(ctx, tx, item.ID, item.DisplayOrder, now)
			if err != nil {
				return fmt.Errorf("failed to update display_order for %s: %w", item.ID, err)
			}
			if affected == 0 {
				return fmt.Errorf("%w: %s", ErrUnknownID, item.ID)
			}
			updated++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	return updated, nil
}
