package broker

import (
	"context"
	"errors"
	"time"

	"github.com/glinthive/site-backend/internal/config"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// ErrQueueEmpty is returned by Pop when nothing arrived before the timeout.
var ErrQueueEmpty = errors.New("queue empty")

// ViewQueue buffers blog page views in Redis for the view worker to persist.
type ViewQueue struct {
	rdb *redis.Client
}

// NewViewQueue creates a new ViewQueue.
func NewViewQueue(rdb *redis.Client) *ViewQueue {
	return &ViewQueue{rdb: rdb}
}

// Record enqueues a single view of the given post.
func (q *ViewQueue) Record(ctx context.Context, blogID uuid.UUID) error {
	return q.rdb.RPush(ctx, config.WorkerKey.PersistBlogViewsQueue, blogID.String()).Err()
}

// Pop blocks up to timeout for the next queued view. Redis needs timeout >= 1s.
func (q *ViewQueue) Pop(ctx context.Context, timeout time.Duration) (string, error) {
	result, err := q.rdb.BLPop(ctx, timeout, config.WorkerKey.PersistBlogViewsQueue).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", ErrQueueEmpty
		}
		return "", err
	}
	if len(result) < 2 {
		return "", ErrQueueEmpty
	}
	return result[1], nil
}

// Requeue pushes views back after a failed flush.
func (q *ViewQueue) Requeue(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	pipe := q.rdb.Pipeline()
	for _, id := range ids {
		pipe.RPush(ctx, config.WorkerKey.PersistBlogViewsQueue, id)
	}
	_, err := pipe.Exec(ctx)
	return err
}
