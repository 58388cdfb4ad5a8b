// Package ws is the realtime fan-out layer. The customer service uses
// per-order rooms for orderStatusUpdated events; the delivery service uses
// the broadcast room to announce new orders to every connected courier.
package ws

import (
	"context"
	"sync"

	"github.com/gorilla/websocket"

	"fooddelivery/pkg/logger"
)

// broadcastRoom addresses every connected client regardless of room.
const broadcastRoom = ""

const eventBuffer = 256

type subscription struct {
	conn *websocket.Conn
	room string
}

type envelope struct {
	room    string
	payload interface{}
}

type Hub struct {
	log logger.Logger

	mu    sync.Mutex
	rooms map[string]map[*websocket.Conn]bool

	register   chan subscription
	unregister chan subscription
	events     chan envelope
	done       chan struct{}
}

func NewHub(log hubLogger) *Hub {
	return &Hub{
		log:        log.With(logger.NewField("component", "ws_hub")),
		rooms:      make(map[string]map[*websocket.Conn]bool),
		register:   make(chan subscription),
		unregister: make(chan subscription),
		events:     make(chan envelope, eventBuffer),
		done:       make(chan struct{}),
	}
}

// Run owns the room registry until ctx is cancelled, then closes every
// connection.
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			h.closeAll()
			close(h.done)
			return

		case sub := <-h.register:
			h.mu.Lock()
			if h.rooms[sub.room] == nil {
				h.rooms[sub.room] = make(map[*websocket.Conn]bool)
			}
			h.rooms[sub.room][sub.conn] = true
			h.mu.Unlock()

		case sub := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.rooms[sub.room][sub.conn]; ok {
				delete(h.rooms[sub.room], sub.conn)
				if len(h.rooms[sub.room]) == 0 {
					delete(h.rooms, sub.room)
				}
				sub.conn.Close()
			}
			h.mu.Unlock()

		case event := <-h.events:
			h.deliver(event)
		}
	}
}

// add subscribes a connection to a room. After the hub has stopped the
// connection is closed instead, so late upgrades cannot block a handler
// goroutine forever.
func (h *Hub) add(sub subscription) {
	select {
	case h.register <- sub:
	case <-h.done:
		sub.conn.Close()
	}
}

func (h *Hub) remove(sub subscription) {
	select {
	case h.unregister <- sub:
	case <-h.done:
	}
}

// Publish queues an event for a room, broadcastRoom meaning all clients.
// Delivery is best-effort: when the hub is saturated the event is dropped
// with a warning rather than blocking the caller.
func (h *Hub) Publish(room string, payload interface{}) {
	select {
	case h.events <- envelope{room: room, payload: payload}:
	default:
		h.log.Warn("event buffer full, dropping realtime event",
			logger.NewField("room", room),
		)
	}
}

func (h *Hub) deliver(event envelope) {
	h.mu.Lock()
	defer h.mu.Unlock()

	targets := make([]*websocket.Conn, 0)
	if event.room == broadcastRoom {
		for _, conns := range h.rooms {
			for conn := range conns {
				targets = append(targets, conn)
			}
		}
	} else {
		for conn := range h.rooms[event.room] {
			targets = append(targets, conn)
		}
	}

	for _, conn := range targets {
		if err := conn.WriteJSON(event.payload); err != nil {
			h.log.Warn("write to websocket client",
				logger.NewField("error", err),
			)
			conn.Close()
			h.drop(conn)
		}
	}
}

// drop removes a dead connection from every room. Caller holds h.mu.
func (h *Hub) drop(conn *websocket.Conn) {
	for room, conns := range h.rooms {
		delete(conns, conn)
		if len(conns) == 0 {
			delete(h.rooms, room)
		}
	}
}

func (h *Hub) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for room, conns := range h.rooms {
		for conn := range conns {
			conn.Close()
		}
		delete(h.rooms, room)
	}
}
