package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/JensIssa/HotelBooking-Clean/internal/storage"
)

// Repository is an in-memory storage port implementation. It is the
// default for tests and the dev storage driver. GetAll returns deep-ish
// snapshots (fresh slice, copied values) in ascending id order so callers
// can iterate without holding the lock and room selection stays
// deterministic.
type Repository[T storage.Entity] struct {
	mu     sync.RWMutex
	items  map[int]T
	nextID int
	clone  func(T) T
}

// NewRepository creates an empty repository. clone must return an
// independent copy of an entity; mutations on returned entities must not
// leak into the store.
func NewRepository[T storage.Entity](clone func(T) T) *Repository[T] {
	return &Repository[T]{
		items:  make(map[int]T),
		nextID: 1,
		clone:  clone,
	}
}

func (r *Repository[T]) GetAll(_ context.Context) ([]T, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]int, 0, len(r.items))
	for id := range r.items {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	out := make([]T, 0, len(ids))
	for _, id := range ids {
		out = append(out, r.clone(r.items[id]))
	}
	return out, nil
}

func (r *Repository[T]) Get(_ context.Context, id int) (T, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[id]
	if !ok {
		var zero T
		return zero, storage.ErrNotFound
	}
	return r.clone(item), nil
}

func (r *Repository[T]) Add(_ context.Context, entity T) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := entity.EntityID()
	if id == 0 {
		id = r.nextID
		entity.SetEntityID(id)
	} else if _, exists := r.items[id]; exists {
		return storage.ErrDuplicateID
	}

	if id >= r.nextID {
		r.nextID = id + 1
	}

	r.items[id] = r.clone(entity)
	return nil
}

func (r *Repository[T]) Edit(_ context.Context, entity T) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := entity.EntityID()
	if _, ok := r.items[id]; !ok {
		return storage.ErrNotFound
	}

	r.items[id] = r.clone(entity)
	return nil
}

func (r *Repository[T]) Remove(_ context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; !ok {
		return storage.ErrNotFound
	}

	delete(r.items, id)
	return nil
}
