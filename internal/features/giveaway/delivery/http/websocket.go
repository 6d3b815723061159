package http

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"path-of-sharing/internal/common/logger"
	"path-of-sharing/internal/features/giveaway/models"
	"path-of-sharing/internal/features/giveaway/realtime"
)

const (
	feedWriteWait    = 10 * time.Second
	feedPongWait     = 60 * time.Second
	feedPingInterval = 30 * time.Second
	feedBuffer       = 64
	feedLaggedReason = "feed lagged, reconnect"
)

// feedMessage is one frame of the entries feed: a snapshot first, then
// one entry_created frame per new entry.
type feedMessage struct {
	Type    string         `json:"type"`
	Entries []models.Entry `json:"entries,omitempty"`
	Entry   *models.Entry  `json:"entry,omitempty"`
}

func newUpgrader(allowedOrigin string) websocket.Upgrader {
	return websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			origin := r.Header.Get("Origin")
			return allowedOrigin == "" || origin == "" || origin == allowedOrigin
		},
	}
}

// @Summary Live entries feed
// @Description Websocket: a "snapshot" frame with the current entries, then an "entry_created" frame per new entry
// @Tags entries
// @Param slug path string true "Giveaway slug"
// @Success 101
// @Failure 404 {object} middleware.ErrorResponse
// @Router /giveaways/{slug}/entries/ws [get]
func (h *GiveawayHandler) entriesFeed(c *gin.Context) {
	ctx := c.Request.Context()

	giveaway, err := h.giveaways.GetBySlug(ctx, c.Param("slug"))
	if err != nil {
		_ = c.Error(err)
		return
	}

	feedLog := logger.With(map[string]string{"giveaway_id": giveaway.ID, "slug": giveaway.Slug})

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		feedLog.Warn().Err(err).Msg("Websocket upgrade failed")
		return
	}
	defer conn.Close()

	feedLog.Debug().Msg("Entries feed opened")
	defer func() { feedLog.Debug().Msg("Entries feed closed") }()

	// Subscribe before reading the snapshot so no entry falls in between;
	// overlap with the snapshot is removed by the view. A client that cannot
	// keep up is disconnected instead of being left with a gap in its list.
	updates := make(chan models.Entry, feedBuffer)
	lagged := make(chan struct{})
	var lagOnce sync.Once
	sub := h.hub.Subscribe(giveaway.ID, func(e models.Entry) {
		select {
		case updates <- e:
		default:
			lagOnce.Do(func() {
				feedLog.Warn().Str("entry_id", e.ID).Msg("Feed buffer full, closing feed")
				close(lagged)
			})
		}
	})
	defer sub.Close()

	snapshot, err := h.entries.ListByGiveaway(ctx, giveaway.ID)
	if err != nil {
		feedLog.Error().Err(err).Msg("Failed to load feed snapshot")
		_ = conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseInternalServerErr, "snapshot unavailable"),
			time.Now().Add(feedWriteWait))
		return
	}

	view := realtime.NewEntryView(snapshot)
	feedLog.Debug().
		Int("entries", view.Len()).
		Int("subscribers", h.hub.SubscriberCount(giveaway.ID)).
		Msg("Sending feed snapshot")
	if err := writeFrame(conn, feedMessage{Type: realtime.EventSnapshot, Entries: view.Entries()}); err != nil {
		return
	}

	closed := make(chan struct{})
	go readUntilClosed(conn, closed)

	ticker := time.NewTicker(feedPingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-closed:
			return
		case <-ctx.Done():
			return
		case <-lagged:
			closeLagged(conn)
			return
		case <-sub.Done():
			closeLagged(conn)
			return
		case entry := <-updates:
			if !view.Merge(entry) {
				continue
			}
			e := entry
			if err := writeFrame(conn, feedMessage{Type: realtime.EventEntryCreated, Entry: &e}); err != nil {
				return
			}
		case <-ticker.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(feedWriteWait)); err != nil {
				return
			}
		}
	}
}

// closeLagged tells the client to reconnect; it gets a fresh snapshot then.
func closeLagged(conn *websocket.Conn) {
	_ = conn.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseTryAgainLater, feedLaggedReason),
		time.Now().Add(feedWriteWait))
}

func writeFrame(conn *websocket.Conn, msg feedMessage) error {
	_ = conn.SetWriteDeadline(time.Now().Add(feedWriteWait))
	return conn.WriteJSON(msg)
}

// readUntilClosed drains client frames so pongs and close frames are
// processed, and closes done when the connection goes away.
func readUntilClosed(conn *websocket.Conn, done chan<- struct{}) {
	defer close(done)

	_ = conn.SetReadDeadline(time.Now().Add(feedPongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(feedPongWait))
	})

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
