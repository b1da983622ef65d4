package worker

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/glinthive/site-backend/internal/broker"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type memQueue struct {
	mu       sync.Mutex
	items    []string
	requeued []string
}

func (q *memQueue) Pop(ctx context.Context, _ time.Duration) (string, error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.items) == 0 {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		default:
		}
		return "", broker.ErrQueueEmpty
	}
	id := q.items[0]
	q.items = q.items[1:]
	return id, nil
}

func (q *memQueue) Requeue(_ context.Context, ids []string) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.requeued = append(q.requeued, ids...)
	return nil
}

func (q *memQueue) empty() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items) == 0
}

type memCounter struct {
	mu     sync.Mutex
	totals map[uuid.UUID]int64
	calls  int
	err    error
}

func (c *memCounter) IncrementViews(_ context.Context, deltas map[uuid.UUID]int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls++
	if c.err != nil {
		return c.err
	}
	if c.totals == nil {
		c.totals = map[uuid.UUID]int64{}
	}
	for id, n := range deltas {
		c.totals[id] += n
	}
	return nil
}

func newTestWorker(q *memQueue, c *memCounter) *ViewWorker {
	w := NewViewWorker(q, c, zerolog.Nop())
	w.batchTimeout = time.Hour
	w.backoff = time.Millisecond
	return w
}

func TestFlushAggregatesAndDropsMalformed(t *testing.T) {
	a, b := uuid.New(), uuid.New()
	q := &memQueue{}
	c := &memCounter{}
	w := newTestWorker(q, c)

	w.flush(context.Background(), []string{a.String(), b.String(), a.String(), "not-a-uuid"})

	if c.calls != 1 {
		t.Fatalf("IncrementViews calls = %d, want 1", c.calls)
	}
	if c.totals[a] != 2 || c.totals[b] != 1 {
		t.Errorf("totals = %v", c.totals)
	}
	if len(q.requeued) != 0 {
		t.Errorf("requeued = %v", q.requeued)
	}
}

func TestFlushRequeuesOnFailure(t *testing.T) {
	a := uuid.New()
	q := &memQueue{}
	c := &memCounter{err: errors.New("db down")}
	w := newTestWorker(q, c)

	w.flush(context.Background(), []string{a.String(), a.String(), "junk"})

	if len(q.requeued) != 2 {
		t.Errorf("requeued = %v, want the two valid ids", q.requeued)
	}
}

func TestFlushSkipsEmptyBatch(t *testing.T) {
	c := &memCounter{}
	w := newTestWorker(&memQueue{}, c)
	w.flush(context.Background(), []string{"junk"})
	if c.calls != 0 {
		t.Errorf("IncrementViews called for an all-malformed batch")
	}
}

func TestStartDrainsOnShutdown(t *testing.T) {
	a := uuid.New()
	q := &memQueue{items: []string{a.String(), a.String(), a.String()}}
	c := &memCounter{}
	w := newTestWorker(q, c)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		w.Start(ctx)
		close(done)
	}()

	deadline := time.Now().Add(2 * time.Second)
	for !q.empty() && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	cancel()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("worker did not stop")
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.totals[a] != 3 {
		t.Errorf("views for post = %d, want 3", c.totals[a])
	}
}

func TestStartFlushesFullBatch(t *testing.T) {
	a := uuid.New()
	q := &memQueue{items: []string{a.String(), a.String()}}
	c := &memCounter{}
	w := newTestWorker(q, c)
	w.batchSize = 2

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Start(ctx)

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		c.mu.Lock()
		n := c.totals[a]
		c.mu.Unlock()
		if n == 2 {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("full batch was not flushed before shutdown")
}
