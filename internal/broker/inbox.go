package broker

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/glinthive/site-backend/internal/config"
	"github.com/glinthive/site-backend/internal/model"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// inboxBuffer is how many undelivered events a slow listener may lag behind.
const inboxBuffer = 16

// Inbox fans new form submissions out to every server instance through
// Redis Pub/Sub.
type Inbox struct {
	rdb *redis.Client
	log zerolog.Logger
}

// NewInbox creates a new Inbox.
func NewInbox(rdb *redis.Client, log zerolog.Logger) *Inbox {
	return &Inbox{
		rdb: rdb,
		log: log.With().Str("component", "inbox_broker").Logger(),
	}
}

// Publish broadcasts event on the inbox channel.
func (b *Inbox) Publish(ctx context.Context, event model.InboxEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal inbox event: %w", err)
	}
	return b.rdb.Publish(ctx, config.CacheKey.InboxChannel(), data).Err()
}

// Listen subscribes to the inbox channel and streams decoded events until ctx
// is done, then closes the returned channel.
func (b *Inbox) Listen(ctx context.Context) (<-chan model.InboxEvent, error) {
	sub := b.rdb.Subscribe(ctx, config.CacheKey.InboxChannel())
	// Wait for the subscription confirmation so failures surface here.
	if _, err := sub.Receive(ctx); err != nil {
		_ = sub.Close()
		return nil, fmt.Errorf("subscribe inbox: %w", err)
	}

	out := make(chan model.InboxEvent, inboxBuffer)
	go func() {
		defer close(out)
		defer sub.Close()

		ch := sub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-ch:
				if !ok {
					return
				}
				var event model.InboxEvent
				if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
					b.log.Error().Err(err).Msg("Discarding malformed inbox event")
					continue
				}
				select {
				case out <- event:
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return out, nil
}
