package storage

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrNotFound is returned by Get, Edit and Remove when no entity with
	// the given id exists.
	ErrNotFound = errors.New("entity not found")

	// ErrDuplicateID is returned by Add when an entity with the same id
	// already exists.
	ErrDuplicateID = errors.New("entity id already exists")

	// ErrLockHeld is returned by Locker.Acquire when another caller holds
	// the key.
	ErrLockHeld = errors.New("lock already held")
)

// Entity is anything addressable by an integer id.
type Entity interface {
	EntityID() int
	SetEntityID(id int)
}

// Repository is the storage port the booking engine and the supporting
// services depend on. Implementations must return GetAll results in a
// stable order (ascending id). Room selection takes the first free room in
// storage order, so that order must be reproducible.
//
// Add assigns the next free id when the entity's id is zero; a non-zero id
// is kept as-is and rejected with ErrDuplicateID if taken.
type Repository[T Entity] interface {
	GetAll(ctx context.Context) ([]T, error)
	Get(ctx context.Context, id int) (T, error)
	Add(ctx context.Context, entity T) error
	Edit(ctx context.Context, entity T) error
	Remove(ctx context.Context, id int) error
}

// Locker provides advisory locks used to serialize booking creation per
// room. A lock expires after ttl even if never released, so a crashed
// holder cannot block a room forever.
type Locker interface {
	Acquire(ctx context.Context, key string, ttl time.Duration) error
	Release(ctx context.Context, key string) error
}
