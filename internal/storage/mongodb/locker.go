package mongodb

import (
	"context"
	"fmt"
	"time"

	"github.com/JensIssa/HotelBooking-Clean/internal/storage"
	"github.com/JensIssa/HotelBooking-Clean/pkg/config"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

const locksCollection = "Booking_locks"

type lockDocument struct {
	ID        string    `bson:"_id"`
	ExpiresAt time.Time `bson:"expires_at"`
	CreatedAt time.Time `bson:"created_at"`
}

// Locker implements advisory locks on a collection whose _id uniqueness
// makes Acquire atomic: the second concurrent insert for a key fails with
// a duplicate key error. Locks left behind by a crashed holder are
// reclaimed once expired.
type Locker struct {
	collection *mongo.Collection
}

func NewLocker(cfg *config.Config) *Locker {
	db := cfg.Client.Mongo.Database(cfg.MongoDatabaseName)
	return &Locker{collection: db.Collection(locksCollection)}
}

func (l *Locker) Acquire(ctx context.Context, key string, ttl time.Duration) error {
	now := time.Now()
	doc := lockDocument{
		ID:        key,
		ExpiresAt: now.Add(ttl),
		CreatedAt: now,
	}

	_, err := l.collection.InsertOne(ctx, doc)
	if err == nil {
		return nil
	}
	if !mongo.IsDuplicateKeyError(err) {
		return fmt.Errorf("failed to acquire lock %s: %w", key, err)
	}

	// The key exists; take it over only if the previous holder expired.
	result, derr := l.collection.DeleteOne(ctx, bson.M{
		"_id":        key,
		"expires_at": bson.M{"$lt": now},
	})
	if derr != nil {
		return fmt.Errorf("failed to reclaim lock %s: %w", key, derr)
	}
	if result.DeletedCount == 0 {
		return storage.ErrLockHeld
	}

	if _, err := l.collection.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return storage.ErrLockHeld
		}
		return fmt.Errorf("failed to acquire lock %s: %w", key, err)
	}
	return nil
}

func (l *Locker) Release(ctx context.Context, key string) error {
	_, err := l.collection.DeleteOne(ctx, bson.M{"_id": key})
	return err
}
