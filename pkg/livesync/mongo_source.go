package livesync

import (
	"context"
	"time"

	"github.com/capsule-admin/campaign-governance-service/pkg/errors"
	"github.com/capsule-admin/campaign-governance-service/pkg/logger"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// CollectionSource adapts a document store collection to the Source
// contract using change streams for push-based notification.
type CollectionSource[T any] struct {
	Collection *mongo.Collection
}

func NewCollectionSource[T any](collection *mongo.Collection) *CollectionSource[T] {
	return &CollectionSource[T]{Collection: collection}
}

// Snapshot reads the full current contents of the collection. Order is the
// store's natural order and is not guaranteed stable across snapshots.
func (s *CollectionSource[T]) Snapshot(ctx context.Context) ([]T, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := s.Collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, errors.NewServerError(errors.ErrWhileFetchingSnapshot, err)
	}
	defer func(cursor *mongo.Cursor, ctx context.Context) {
		err := cursor.Close(ctx)
		if err != nil {
			logger.Debug("Error occurred while closing cursor.", err)
		}
	}(cursor, ctx)

	records := make([]T, 0)
	if err = cursor.All(ctx, &records); err != nil {
		return nil, errors.NewServerError(errors.ErrWhileFetchingSnapshot, err)
	}
	return records, nil
}

// Changes opens a change stream on the collection and signals once per
// mutation batch. Bursts coalesce into a single signal; the snapshot taken
// afterwards covers all of them.
func (s *CollectionSource[T]) Changes(ctx context.Context) (<-chan struct{}, error) {
	stream, err := s.Collection.Watch(ctx, mongo.Pipeline{})
	if err != nil {
		return nil, errors.NewServerError(errors.ErrWhileWatchingCollection, err)
	}

	ch := make(chan struct{}, 1)
	go func() {
		defer close(ch)
		defer func() {
			closeCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			if err := stream.Close(closeCtx); err != nil {
				logger.Debug("Error occurred while closing change stream.", err)
			}
		}()

		for stream.Next(ctx) {
			select {
			case ch <- struct{}{}:
			default:
			}
		}
		if err := stream.Err(); err != nil && ctx.Err() == nil {
			logger.Error(err, "Change stream ended for collection: "+s.Collection.Name())
		}
	}()

	return ch, nil
}
