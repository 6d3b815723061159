package realtime

import (
	"sync"

	"path-of-sharing/internal/common/logger"
	"path-of-sharing/internal/features/giveaway/models"
)

const defaultQueueSize = 256

// Hub fans admitted entries out to the local subscribers of each giveaway.
// Every subscription owns a queue drained by its own goroutine, so callbacks
// for one giveaway run in publish order and a slow subscriber never blocks
// the others.
type Hub struct {
	mu        sync.RWMutex
	subs      map[string]map[*Subscription]struct{}
	queueSize int
}

func NewHub() *Hub {
	return newHub(defaultQueueSize)
}

func newHub(queueSize int) *Hub {
	return &Hub{
		subs:      make(map[string]map[*Subscription]struct{}),
		queueSize: queueSize,
	}
}

// Subscription is a live registration returned by Hub.Subscribe.
type Subscription struct {
	hub        *Hub
	giveawayID string
	onInsert   func(models.Entry)
	queue      chan models.Entry
	done       chan struct{}
	closeOnce  sync.Once
}

// Subscribe registers onInsert for entries of giveawayID. The callback runs
// on a goroutine owned by the subscription until Close is called.
func (h *Hub) Subscribe(giveawayID string, onInsert func(models.Entry)) *Subscription {
	sub := &Subscription{
		hub:        h,
		giveawayID: giveawayID,
		onInsert:   onInsert,
		queue:      make(chan models.Entry, h.queueSize),
		done:       make(chan struct{}),
	}

	h.mu.Lock()
	set, ok := h.subs[giveawayID]
	if !ok {
		set = make(map[*Subscription]struct{})
		h.subs[giveawayID] = set
	}
	set[sub] = struct{}{}
	h.mu.Unlock()

	go sub.run()

	logger.Debug().Str("giveaway_id", giveawayID).Msg("Entry subscription opened")
	return sub
}

// Publish queues entry for every subscriber of its giveaway. A subscriber
// whose queue is full has fallen behind and is closed rather than left with
// a gap; its owner sees Done and can resubscribe from a fresh snapshot.
func (h *Hub) Publish(entry models.Entry) {
	var lagged []*Subscription

	h.mu.RLock()
	for sub := range h.subs[entry.GiveawayID] {
		select {
		case sub.queue <- entry:
		case <-sub.done:
		default:
			lagged = append(lagged, sub)
		}
	}
	h.mu.RUnlock()

	// Close takes the write lock.
	for _, sub := range lagged {
		logger.Warn().
			Str("giveaway_id", entry.GiveawayID).
			Str("entry_id", entry.ID).
			Msg("Subscriber queue full, closing subscription")
		sub.Close()
	}
}

// SubscriberCount reports the number of open subscriptions for giveawayID.
func (h *Hub) SubscriberCount(giveawayID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs[giveawayID])
}

func (h *Hub) remove(sub *Subscription) {
	h.mu.Lock()
	defer h.mu.Unlock()

	set := h.subs[sub.giveawayID]
	delete(set, sub)
	if len(set) == 0 {
		delete(h.subs, sub.giveawayID)
	}
}

// Close stops delivery. It is safe to call more than once and from inside
// the callback.
func (s *Subscription) Close() {
	s.closeOnce.Do(func() {
		s.hub.remove(s)
		close(s.done)
		logger.Debug().Str("giveaway_id", s.giveawayID).Msg("Entry subscription closed")
	})
}

// Done is closed once the subscription stops, either by Close or because
// it fell behind.
func (s *Subscription) Done() <-chan struct{} {
	return s.done
}

func (s *Subscription) run() {
	for {
		select {
		case <-s.done:
			return
		case entry := <-s.queue:
			s.deliver(entry)
		}
	}
}

func (s *Subscription) deliver(entry models.Entry) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error().
				Interface("panic", r).
				Str("giveaway_id", s.giveawayID).
				Msg("Entry subscriber panicked")
		}
	}()

	// Close may race with a queued entry; skip delivery once closed.
	select {
	case <-s.done:
		return
	default:
	}
	s.onInsert(entry)
}
