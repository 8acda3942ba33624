package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// changeChannel is the pub/sub channel for proposal table changes.
// Subscribers get a generic "something changed" signal and are expected
// to re-fetch; no delta is carried beyond the op and the record id.
const changeChannel = "proposals:changes"

type Op string

const (
	OpCreated        Op = "created"
	OpStatusUpdated  Op = "status_updated"
	OpReviewAttached Op = "review_attached"
	OpDeleted        Op = "deleted"
)

// Event is one change notification for the proposals table.
type Event struct {
	Op         Op        `json:"op"`
	ProposalID string    `json:"proposal_id"`
	At         time.Time `json:"at"`
}

// Feed publishes and subscribes to proposal change events over Redis.
type Feed struct {
	client *redis.Client
}

// NewFeed creates a change feed on the given Redis client.
func NewFeed(client *redis.Client) *Feed {
	return &Feed{client: client}
}

// Publish emits a change event. Failures are the caller's to log; a
// missed notification only costs subscribers a re-fetch they would have
// done on the next event anyway.
func (f *Feed) Publish(ctx context.Context, ev Event) error {
	if ev.At.IsZero() {
		ev.At = time.Now().UTC()
	}

	data, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("marshal change event: %w", err)
	}

	if err := f.client.Publish(ctx, changeChannel, data).Err(); err != nil {
		return fmt.Errorf("publish change event: %w", err)
	}
	return nil
}

// Subscribe returns a channel of change events. The channel closes when
// ctx is cancelled or the underlying subscription drops. Events that
// fail to decode are skipped.
func (f *Feed) Subscribe(ctx context.Context) (<-chan Event, error) {
	sub := f.client.Subscribe(ctx, changeChannel)

	// Force the subscription onto the wire before returning so callers
	// cannot miss events published right after Subscribe.
	if _, err := sub.Receive(ctx); err != nil {
		_ = sub.Close()
		return nil, fmt.Errorf("subscribe changes: %w", err)
	}

	out := make(chan Event)
	go func() {
		defer close(out)
		defer sub.Close()

		msgs := sub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-msgs:
				if !ok {
					return
				}
				var ev Event
				if err := json.Unmarshal([]byte(msg.Payload), &ev); err != nil {
					continue
				}
				select {
				case out <- ev:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return out, nil
}
