package worker

import (
	"context"
	"errors"
	"time"

	"github.com/glinthive/site-backend/internal/broker"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	BatchSize       = 200
	BatchTimeout    = 5 * time.Second
	PollTimeout     = 1 * time.Second // Must be >= 1s to satisfy Redis
	ShutdownTimeout = 5 * time.Second
)

// ViewSource is the queue the worker drains.
type ViewSource interface {
	Pop(ctx context.Context, timeout time.Duration) (string, error)
	Requeue(ctx context.Context, ids []string) error
}

// ViewCounter persists aggregated view deltas.
type ViewCounter interface {
	IncrementViews(ctx context.Context, deltas map[uuid.UUID]int64) error
}

// ViewWorker moves blog page views from the Redis queue into Postgres in batches.
type ViewWorker struct {
	queue   ViewSource
	counter ViewCounter
	log     zerolog.Logger

	batchSize    int
	batchTimeout time.Duration
	backoff      time.Duration
}

func NewViewWorker(queue ViewSource, counter ViewCounter, log zerolog.Logger) *ViewWorker {
	return &ViewWorker{
		queue:        queue,
		counter:      counter,
		log:          log.With().Str("component", "view_worker").Logger(),
		batchSize:    BatchSize,
		batchTimeout: BatchTimeout,
		backoff:      3 * time.Second,
	}
}

// Start runs until ctx is cancelled, then flushes whatever is buffered.
func (w *ViewWorker) Start(ctx context.Context) {
	w.log.Info().Msg("ViewWorker started")

	buffer := make([]string, 0, w.batchSize)
	lastFlush := time.Now()

	for {
		if len(buffer) > 0 && (len(buffer) >= w.batchSize || time.Since(lastFlush) >= w.batchTimeout) {
			w.flush(ctx, buffer)
			buffer = buffer[:0]
			lastFlush = time.Now()
		}

		select {
		case <-ctx.Done():
			w.shutdown(buffer)
			return
		default:
		}

		id, err := w.queue.Pop(ctx, PollTimeout)
		if err != nil {
			if errors.Is(err, broker.ErrQueueEmpty) {
				continue
			}
			if ctx.Err() != nil {
				continue
			}
			w.log.Error().Err(err).Msg("Redis connection error, backing off")
			sleep(ctx, w.backoff)
			continue
		}

		buffer = append(buffer, id)
	}
}

// flush aggregates the buffered ids into per-post deltas. Malformed ids are
// dropped; a failed write is requeued so no view is lost.
func (w *ViewWorker) flush(ctx context.Context, batch []string) {
	deltas := make(map[uuid.UUID]int64, len(batch))
	valid := make([]string, 0, len(batch))
	for _, raw := range batch {
		id, err := uuid.Parse(raw)
		if err != nil {
			w.log.Error().Str("data", raw).Msg("Discarding malformed view id")
			continue
		}
		deltas[id]++
		valid = append(valid, raw)
	}
	if len(deltas) == 0 {
		return
	}

	if err := w.counter.IncrementViews(ctx, deltas); err != nil {
		w.log.Warn().Err(err).Int("views", len(valid)).Msg("View flush failed, requeueing")
		if err := w.queue.Requeue(context.WithoutCancel(ctx), valid); err != nil {
			w.log.Error().Err(err).Int("views", len(valid)).Msg("Failed to requeue views. Data loss occurred.")
			return
		}
		sleep(ctx, w.backoff)
		return
	}

	w.log.Debug().Int("views", len(valid)).Int("posts", len(deltas)).Msg("Views flushed")
}

func (w *ViewWorker) shutdown(buffer []string) {
	w.log.Info().Msg("Worker stopping, flushing remaining buffer...")
	if len(buffer) == 0 {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()
	w.flush(ctx, buffer)
}

func sleep(ctx context.Context, d time.Duration) {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}
