package realtime

import (
	"context"
	"encoding/json"
	"fmt"

	"path-of-sharing/internal/features/giveaway/models"
	"path-of-sharing/internal/platform/redis"
)

const (
	channelPrefix  = "entries:"
	channelPattern = channelPrefix + "*"
)

// Event types carried on the pub/sub channel and the websocket feed.
const (
	EventSnapshot     = "snapshot"
	EventEntryCreated = "entry_created"
)

// Event is the envelope for entry notifications.
type Event struct {
	Type  string        `json:"type"`
	Entry *models.Entry `json:"entry"`
}

// Publisher announces admitted entries.
type Publisher interface {
	PublishEntry(ctx context.Context, entry *models.Entry) error
}

func ChannelName(giveawayID string) string {
	return channelPrefix + giveawayID
}

// RedisPublisher publishes entries on entries:<giveaway_id>. A Bridge on
// every instance relays them to that instance's hub.
type RedisPublisher struct {
	client redis.RedisClient
}

func NewRedisPublisher(client redis.RedisClient) *RedisPublisher {
	return &RedisPublisher{client: client}
}

func (p *RedisPublisher) PublishEntry(ctx context.Context, entry *models.Entry) error {
	payload, err := json.Marshal(Event{Type: EventEntryCreated, Entry: entry})
	if err != nil {
		return fmt.Errorf("failed to marshal entry event: %w", err)
	}
	if err := p.client.Publish(ctx, ChannelName(entry.GiveawayID), payload).Err(); err != nil {
		return fmt.Errorf("failed to publish entry event: %w", err)
	}
	return nil
}

// LocalPublisher delivers straight to a hub, for single instance setups.
type LocalPublisher struct {
	hub *Hub
}

func NewLocalPublisher(hub *Hub) *LocalPublisher {
	return &LocalPublisher{hub: hub}
}

func (p *LocalPublisher) PublishEntry(_ context.Context, entry *models.Entry) error {
	p.hub.Publish(*entry)
	return nil
}
