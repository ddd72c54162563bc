package content

import (
	"context"
	"slices"
	"sync"

	"github.com/fundunity/cmsdash/internal/common"
	"github.com/fundunity/cmsdash/internal/models"
)

// MemoryRepository keeps records in a map. Ids start at 1 and are never
// reused.
type MemoryRepository[T models.Record] struct {
	mu     sync.RWMutex
	items  map[int64]T
	nextID int64
	withID func(T, int64) T
}

func NewMemoryRepository[T models.Record](schema Schema[T]) *MemoryRepository[T] {
	return &MemoryRepository[T]{items: map[int64]T{}, withID: schema.WithID}
}

func (r *MemoryRepository[T]) List(ctx context.Context) ([]T, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]int64, 0, len(r.items))
	for id := range r.items {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	result := make([]T, 0, len(ids))
	for _, id := range ids {
		result = append(result, r.items[id])
	}
	return result, nil
}

func (r *MemoryRepository[T]) Get(ctx context.Context, id int64) (T, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rec, ok := r.items[id]
	if !ok {
		return rec, common.ErrorNotFound
	}
	return rec, nil
}

func (r *MemoryRepository[T]) Create(ctx context.Context, rec T) (T, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	rec = r.withID(rec, r.nextID)
	r.items[r.nextID] = rec
	return rec, nil
}

func (r *MemoryRepository[T]) Update(ctx context.Context, id int64, rec T) (T, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; !ok {
		var zero T
		return zero, common.ErrorNotFound
	}
	rec = r.withID(rec, id)
	r.items[id] = rec
	return rec, nil
}

func (r *MemoryRepository[T]) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; !ok {
		return common.ErrorNotFound
	}
	delete(r.items, id)
	return nil
}
