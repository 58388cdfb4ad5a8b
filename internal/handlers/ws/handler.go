package ws

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"

	"fooddelivery/pkg/logger"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Both frontends are served from other origins.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// OrderFeed upgrades a customer client and subscribes it to its order room.
// Route: /ws/orders/{orderId}.
type OrderFeed struct {
	log logger.Logger
	hub *Hub
}

func NewOrderFeed(log hubLogger, hub *Hub) *OrderFeed {
	return &OrderFeed{
		log: log.With(),
		hub: hub,
	}
}

func (f *OrderFeed) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	orderID := mux.Vars(r)["orderId"]
	if orderID == "" {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		f.log.Warn("websocket upgrade",
			logger.NewField("error", err),
		)
		return
	}

	sub := subscription{conn: conn, room: orderRoom(orderID)}
	f.hub.add(sub)
	go readUntilClosed(f.hub, conn, sub)
}

// CourierFeed upgrades a courier client. Every courier receives the global
// new:order broadcasts; passing ?courierId= additionally joins the courier's
// own room for targeted events.
type CourierFeed struct {
	log logger.Logger
	hub *Hub
}

func NewCourierFeed(log hubLogger, hub *Hub) *CourierFeed {
	return &CourierFeed{
		log: log.With(),
		hub: hub,
	}
}

func (f *CourierFeed) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	room := "couriers"
	if idStr := r.URL.Query().Get("courierId"); idStr != "" {
		id, err := strconv.ParseInt(idStr, 10, 64)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		room = courierRoom(id)
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		f.log.Warn("websocket upgrade",
			logger.NewField("error", err),
		)
		return
	}

	sub := subscription{conn: conn, room: room}
	f.hub.add(sub)
	go readUntilClosed(f.hub, conn, sub)
}

// readUntilClosed drains client frames until the peer goes away, then
// unregisters. Inbound payloads are ignored; the feed is one-way.
func readUntilClosed(hub *Hub, conn *websocket.Conn, sub subscription) {
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			hub.remove(sub)
			return
		}
	}
}
