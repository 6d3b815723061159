package realtime

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"path-of-sharing/internal/common/logger"
	"path-of-sharing/internal/platform/redis"
)

const (
	minBridgeBackoff = time.Second
	maxBridgeBackoff = 30 * time.Second
)

// Bridge relays entry events from redis pub/sub into the local hub.
type Bridge struct {
	client     redis.RedisClient
	hub        *Hub
	subscribed atomic.Bool
	minBackoff time.Duration
	maxBackoff time.Duration
}

func NewBridge(client redis.RedisClient, hub *Hub) *Bridge {
	return &Bridge{
		client:     client,
		hub:        hub,
		minBackoff: minBridgeBackoff,
		maxBackoff: maxBridgeBackoff,
	}
}

// Subscribed reports whether the pattern subscription is currently live.
func (b *Bridge) Subscribed() bool {
	return b.subscribed.Load()
}

// Run keeps the pattern subscription alive until ctx is cancelled. Failed
// or dropped subscriptions are retried with exponential backoff.
func (b *Bridge) Run(ctx context.Context) {
	backoff := b.minBackoff
	for {
		err := b.subscribeOnce(ctx)
		if ctx.Err() != nil {
			logger.Info().Msg("Entry bridge stopped")
			return
		}
		if err == nil {
			// The subscription was up; start over from the shortest wait.
			backoff = b.minBackoff
		}

		logger.Warn().Err(err).Dur("retry_in", backoff).Msg("Entry bridge disconnected")
		select {
		case <-ctx.Done():
			logger.Info().Msg("Entry bridge stopped")
			return
		case <-time.After(backoff):
		}

		if err != nil {
			backoff *= 2
			if backoff > b.maxBackoff {
				backoff = b.maxBackoff
			}
		}
	}
}

// subscribeOnce returns an error if the subscription could not be
// established, and nil once an established subscription ends.
func (b *Bridge) subscribeOnce(ctx context.Context) error {
	pubsub := b.client.PSubscribe(ctx, channelPattern)
	defer pubsub.Close()

	// Wait for the subscription confirmation so no message published after
	// Subscribed turns true is lost.
	if _, err := pubsub.Receive(ctx); err != nil {
		return fmt.Errorf("failed to subscribe to %s: %w", channelPattern, err)
	}

	b.subscribed.Store(true)
	defer b.subscribed.Store(false)
	logger.Info().Str("pattern", channelPattern).Msg("Entry bridge subscribed")

	messages := pubsub.Channel()
	for {
		select {
		case <-ctx.Done():
			return nil
		case msg, ok := <-messages:
			if !ok {
				return nil
			}
			b.dispatch(msg)
		}
	}
}

func (b *Bridge) dispatch(msg *goredis.Message) {
	var event Event
	if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
		logger.Warn().Err(err).Str("channel", msg.Channel).Msg("Dropping malformed entry event")
		return
	}
	if event.Type != EventEntryCreated || event.Entry == nil {
		return
	}

	if event.Entry.GiveawayID == "" {
		event.Entry.GiveawayID = strings.TrimPrefix(msg.Channel, channelPrefix)
	}
	b.hub.Publish(*event.Entry)
}
