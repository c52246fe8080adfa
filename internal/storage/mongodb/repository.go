package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/JensIssa/HotelBooking-Clean/internal/storage"
	"github.com/JensIssa/HotelBooking-Clean/pkg/config"
	mongotx "github.com/JensIssa/HotelBooking-Clean/pkg/db/mongo"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const countersCollection = "Counters"

// Repository is the MongoDB-backed storage port. One collection per entity
// type; documents use the integer entity id as _id, and ids for new
// entities come from an atomic counter document so they are unique across
// concurrent writers.
type Repository[T storage.Entity] struct {
	cfg        *config.Config
	collection *mongo.Collection
	counters   *mongo.Collection
	txManager  mongotx.TransactionManager
	newEntity  func() T
}

func NewRepository[T storage.Entity](cfg *config.Config, collectionName string, newEntity func() T) *Repository[T] {
	db := cfg.Client.Mongo.Database(cfg.MongoDatabaseName)
	return &Repository[T]{
		cfg:        cfg,
		collection: db.Collection(collectionName),
		counters:   db.Collection(countersCollection),
		txManager:  mongotx.NewTransactionManager(cfg.Client.Mongo),
		newEntity:  newEntity,
	}
}

// withTimeout bounds the operation unless the context already is a
// transaction session, which must not be wrapped.
func (r *Repository[T]) withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if _, ok := ctx.(mongo.SessionContext); ok {
		return ctx, func() {}
	}

	if deadline, has := ctx.Deadline(); has && time.Until(deadline) < timeout {
		return context.WithTimeout(ctx, time.Until(deadline))
	}

	return context.WithTimeout(ctx, timeout)
}

func (r *Repository[T]) GetAll(ctx context.Context) ([]T, error) {
	ctx, cancel := r.withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", r.collection.Name(), err)
	}
	defer cursor.Close(ctx)

	var items []T
	for cursor.Next(ctx) {
		item := r.newEntity()
		if err := cursor.Decode(item); err != nil {
			return nil, fmt.Errorf("failed to decode %s document: %w", r.collection.Name(), err)
		}
		items = append(items, item)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate %s: %w", r.collection.Name(), err)
	}

	return items, nil
}

func (r *Repository[T]) Get(ctx context.Context, id int) (T, error) {
	ctx, cancel := r.withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	item := r.newEntity()
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(item)
	if err != nil {
		var zero T
		if errors.Is(err, mongo.ErrNoDocuments) {
			return zero, storage.ErrNotFound
		}
		return zero, fmt.Errorf("failed to find %s %d: %w", r.collection.Name(), id, err)
	}

	return item, nil
}

// Add allocates the id and inserts the document inside one transaction
// so a failed insert does not burn a counter value.
func (r *Repository[T]) Add(ctx context.Context, entity T) error {
	ctx, cancel := r.withTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	return r.txManager.ExecuteTransaction(ctx, func(sessCtx mongo.SessionContext) error {
		if entity.EntityID() == 0 {
			id, err := r.nextID(sessCtx)
			if err != nil {
				return err
			}
			entity.SetEntityID(id)
		}

		if _, err := r.collection.InsertOne(sessCtx, entity); err != nil {
			if mongo.IsDuplicateKeyError(err) {
				return storage.ErrDuplicateID
			}
			return fmt.Errorf("failed to insert %s %d: %w", r.collection.Name(), entity.EntityID(), err)
		}

		return nil
	})
}

func (r *Repository[T]) Edit(ctx context.Context, entity T) error {
	ctx, cancel := r.withTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	result, err := r.collection.ReplaceOne(ctx, bson.M{"_id": entity.EntityID()}, entity)
	if err != nil {
		return fmt.Errorf("failed to replace %s %d: %w", r.collection.Name(), entity.EntityID(), err)
	}
	if result.MatchedCount == 0 {
		return storage.ErrNotFound
	}

	return nil
}

func (r *Repository[T]) Remove(ctx context.Context, id int) error {
	ctx, cancel := r.withTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete %s %d: %w", r.collection.Name(), id, err)
	}
	if result.DeletedCount == 0 {
		return storage.ErrNotFound
	}

	return nil
}

// nextID atomically increments the counter document for this collection.
func (r *Repository[T]) nextID(ctx context.Context) (int, error) {
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var counter struct {
		Seq int `bson:"seq"`
	}
	err := r.counters.FindOneAndUpdate(
		ctx,
		bson.M{"_id": r.collection.Name()},
		bson.M{"$inc": bson.M{"seq": 1}},
		opts,
	).Decode(&counter)
	if err != nil {
		return 0, fmt.Errorf("failed to allocate id for %s: %w", r.collection.Name(), err)
	}

	return counter.Seq, nil
}
