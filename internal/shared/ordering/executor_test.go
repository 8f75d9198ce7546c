package ordering

import (
	"context"
	"errors"
	"testing"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeStore applies updates to an in-memory order map and remembers every
// write so tests can assert the rollback behavior of the runner.
type fakeStore struct {
	rows   map[uuid.UUID]int
	writes []Item
}

func newFakeStore(ids ...uuid.UUID) *fakeStore {
	rows := make(map[uuid.UUID]int, len(ids))
	for i, id := range ids {
		rows[id] = i + 1
	}
	return &fakeStore{rows: rows}
}

func (s *fakeStore) UpdateDisplayOrder(_ context.Context, _ pgx.Tx, id uuid.UUID, displayOrder int, _ time.Time) (int64, error) {
	if _, ok := s.rows[id]; !ok {
		return 0, nil
	}
	s.rows[id] = displayOrder
	s.writes = append(s.writes, Item{ID: id, DisplayOrder: displayOrder})
	return 1, nil
}

// passthroughRunner mimics transactional semantics for the fake store: on
// error it restores the snapshot taken before fn ran.
func passthroughRunner(s *fakeStore) TxRunner {
	return func(ctx context.Context, fn func(pgx.Tx) error) error {
		snapshot := make(map[uuid.UUID]int, len(s.rows))
		for k, v := range s.rows {
			snapshot[k] = v
		}
		if err := fn(nil); err != nil {
			s.rows = snapshot
			return err
		}
		return nil
	}
}

func TestExecutorReorder(t *testing.T) {
	idA, idB, idC := uuid.New(), uuid.New(), uuid.New()

	t.Run("applies every item", func(t *testing.T) {
		store := newFakeStore(idA, idB, idC)
		exec := NewExecutorWithRunner(passthroughRunner(store))

		updated, err := exec.Reorder(context.Background(), store, []Item{
			{ID: idC, DisplayOrder: 1},
			{ID: idA, DisplayOrder: 2},
			{ID: idB, DisplayOrder: 3},
		})

		require.NoError(t, err)
		assert.Equal(t, 3, updated)
		assert.Equal(t, 1, store.rows[idC])
		assert.Equal(t, 2, store.rows[idA])
		assert.Equal(t, 3, store.rows[idB])
	})

	t.Run("resubmitting the same batch is idempotent", func(t *testing.T) {
		store := newFakeStore(idA, idB)
		exec := NewExecutorWithRunner(passthroughRunner(store))
		batch := []Item{{ID: idB, DisplayOrder: 1}, {ID: idA, DisplayOrder: 2}}

		_, err := exec.Reorder(context.Background(), store, batch)
		require.NoError(t, err)
		first := map[uuid.UUID]int{idA: store.rows[idA], idB: store.rows[idB]}

		_, err = exec.Reorder(context.Background(), store, batch)
		require.NoError(t, err)
		assert.Equal(t, first[idA], store.rows[idA])
		assert.Equal(t, first[idB], store.rows[idB])
	})

	t.Run("unknown id aborts the whole batch", func(t *testing.T) {
		store := newFakeStore(idA, idB)
		exec := NewExecutorWithRunner(passthroughRunner(store))

		updated, err := exec.Reorder(context.Background(), store, []Item{
			{ID: idA, DisplayOrder: 5},
			{ID: uuid.New(), DisplayOrder: 6},
			{ID: idB, DisplayOrder: 7},
		})

		require.Error(t, err)
		assert.ErrorIs(t, err, ErrUnknownID)
		assert.Zero(t, updated)
		// The first item's write was rolled back with the rest.
		assert.Equal(t, 1, store.rows[idA])
		assert.Equal(t, 2, store.rows[idB])
	})

	t.Run("rows outside the batch keep their position", func(t *testing.T) {
		store := newFakeStore(idA, idB, idC)
		exec := NewExecutorWithRunner(passthroughRunner(store))

		_, err := exec.Reorder(context.Background(), store, []Item{
			{ID: idA, DisplayOrder: 2},
			{ID: idB, DisplayOrder: 1},
		})

		require.NoError(t, err)
		assert.Equal(t, 3, store.rows[idC])
	})

	t.Run("invalid batch never reaches the store", func(t *testing.T) {
		store := newFakeStore(idA)
		exec := NewExecutorWithRunner(passthroughRunner(store))

		_, err := exec.Reorder(context.Background(), store, []Item{
			{ID: idA, DisplayOrder: -1},
		})

		require.Error(t, err)
		var verrs validation.Errors
		assert.ErrorAs(t, err, &verrs)
		assert.Empty(t, store.writes)
	})

	t.Run("store error propagates", func(t *testing.T) {
		boom := errors.New("connection reset")
		exec := NewExecutorWithRunner(func(ctx context.Context, fn func(pgx.Tx) error) error {
			return fn(nil)
		})

		_, err := exec.Reorder(context.Background(), errStore{err: boom}, []Item{
			{ID: idA, DisplayOrder: 1},
		})

		require.Error(t, err)
		assert.ErrorIs(t, err, boom)
	})
}

type errStore struct {
	err error
}

func (s errStore) UpdateDisplayOrder(context.Context, pgx.Tx, uuid.UUID, int, time.Time) (int64, error) {
	return 0, s.err
}
