package memory

import (
	"context"
	"sync"
	"time"

	"github.com/JensIssa/HotelBooking-Clean/internal/storage"
)

// Locker is the in-process advisory lock. Expired entries count as free,
// matching the TTL semantics of the MongoDB lock collection.
type Locker struct {
	mu    sync.Mutex
	locks map[string]time.Time
}

func NewLocker() *Locker {
	return &Locker{locks: make(map[string]time.Time)}
}

func (l *Locker) Acquire(_ context.Context, key string, ttl time.Duration) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if expiresAt, held := l.locks[key]; held && time.Now().Before(expiresAt) {
		return storage.ErrLockHeld
	}

	l.locks[key] = time.Now().Add(ttl)
	return nil
}

func (l *Locker) Release(_ context.Context, key string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	delete(l.locks, key)
	return nil
}
