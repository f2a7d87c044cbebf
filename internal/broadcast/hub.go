// Package broadcast distributes fleet snapshots to WebSocket subscribers.
// Delivery is best-effort, at most once per tick per subscriber: there is no
// replay or backlog, because every push carries the complete fleet state and
// the next tick naturally re-establishes anything a subscriber missed.
package broadcast

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"

	"github.com/ukydev/truck-fleet-tracker/internal/metrics"
	"github.com/ukydev/truck-fleet-tracker/internal/models"
)

// Event names on the push channel.
const (
	EventInitial = "initial-data"
	EventUpdates = "vehicle-updates"
)

// Message is the envelope sent to subscribers: a named event carrying the
// full fleet snapshot set.
type Message struct {
	Event string           `json:"event"`
	Data  []models.Vehicle `json:"data"`
}

// SnapshotSource provides the current full fleet state. New subscribers get a
// fresh read from it rather than a cached batch, so a client connecting
// between ticks never sees stale startup data.
type SnapshotSource interface {
	Snapshots() []models.Vehicle
}

// Hub coordinates subscribers. All subscriber-list mutations happen on the
// Run loop, so they need no further locking.
type Hub struct {
	source     SnapshotSource
	upgrader   websocket.Upgrader
	clients    map[*Client]bool
	register   chan *Client
	unregister chan *Client
	broadcast  chan []models.Vehicle
}

// NewHub creates a hub reading initial state from source. Only the given
// origin (the dashboard dev server, typically) may open connections.
func NewHub(source SnapshotSource, allowedOrigin string) *Hub {
	return &Hub{
		source: source,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				return origin == "" || origin == allowedOrigin
			},
		},
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan []models.Vehicle, 1),
	}
}

// Publish hands one tick's snapshot batch to the hub for fan-out. It
// implements sim.Publisher.
func (h *Hub) Publish(batch []models.Vehicle) {
	h.broadcast <- batch
}

// Run processes subscriber connects, disconnects and tick batches until the
// context is cancelled. Start it before serving any WebSocket requests.
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			for c := range h.clients {
				h.drop(c)
			}
			return

		case c := <-h.register:
			h.clients[c] = true
			metrics.SubscribersConnected.Inc()
			log.WithField("subscribers", len(h.clients)).Info("Subscriber connected")
			// Fresh snapshots, not the last tick's batch.
			c.enqueue(Message{Event: EventInitial, Data: h.source.Snapshots()})

		case c := <-h.unregister:
			if h.clients[c] {
				h.drop(c)
				log.WithField("subscribers", len(h.clients)).Info("Subscriber disconnected")
			}

		case batch := <-h.broadcast:
			start := time.Now()
			msg := Message{Event: EventUpdates, Data: batch}
			for c := range h.clients {
				if !c.enqueue(msg) {
					// Slow subscriber; it can reconnect and resync from the
					// next full snapshot.
					h.drop(c)
					log.WithField("subscribers", len(h.clients)).Warn("Dropped slow subscriber")
				}
			}
			metrics.BroadcastDuration.Observe(time.Since(start).Seconds())
		}
	}
}

func (h *Hub) drop(c *Client) {
	delete(h.clients, c)
	close(c.send)
	metrics.SubscribersConnected.Dec()
}

// ServeWS upgrades an HTTP request to a WebSocket subscription.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.WithError(err).Error("WebSocket upgrade failed")
		return
	}
	c := &Client{hub: h, conn: conn, send: make(chan Message, 8)}
	h.register <- c
	go c.writePump()
	go c.readPump()
}
