package notify

import (
	"errors"
	"sync"

	"github.com/gorilla/websocket"
)

var errNotConnected = errors.New("connection not registered")

// client wraps one admin connection. gorilla/websocket allows a single
// concurrent writer per connection, so every write (broadcast payloads and
// control pings alike) goes through the client's mutex.
type client struct {
	conn    *websocket.Conn
	writeMu sync.Mutex
}

func (c *client) writeJSON(v interface{}) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	return c.conn.WriteJSON(v)
}

func (c *client) ping() error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	return c.conn.WriteMessage(websocket.PingMessage, nil)
}

// Hub tracks the websocket connections of signed-in admins watching the
// dashboard feed. One connection per user; a reconnect replaces the old one.
type Hub struct {
	connections map[int64]*client
	mutex       sync.RWMutex
}

func NewHub() *Hub {
	return &Hub{
		connections: make(map[int64]*client),
	}
}

func (h *Hub) Register(userID int64, conn *websocket.Conn) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if old, exists := h.connections[userID]; exists && old != nil {
		_ = old.conn.Close()
	}

	h.connections[userID] = &client{conn: conn}
}

func (h *Hub) Unregister(userID int64) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if cl, exists := h.connections[userID]; exists && cl != nil {
		_ = cl.conn.Close()
		delete(h.connections, userID)
	}
}

// Broadcast sends the message to every connected admin and returns how
// many deliveries succeeded. Dead connections are dropped along the way.
func (h *Hub) Broadcast(message interface{}) int {
	h.mutex.RLock()
	targets := make(map[int64]*client, len(h.connections))
	for id, cl := range h.connections {
		targets[id] = cl
	}
	h.mutex.RUnlock()

	sent := 0
	for userID, cl := range targets {
		if cl == nil {
			continue
		}
		if err := cl.writeJSON(message); err != nil {
			h.Unregister(userID)
			continue
		}
		sent++
	}
	return sent
}

// Ping sends a control ping to one connection. Returns an error when the
// connection is gone so keepalive loops know to stop.
func (h *Hub) Ping(userID int64) error {
	h.mutex.RLock()
	cl, exists := h.connections[userID]
	h.mutex.RUnlock()

	if !exists || cl == nil {
		return errNotConnected
	}
	return cl.ping()
}

func (h *Hub) OnlineCount() int {
	h.mutex.RLock()
	defer h.mutex.RUnlock()

	return len(h.connections)
}

func (h *Hub) Close() {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	for userID, cl := range h.connections {
		if cl != nil {
			_ = cl.conn.Close()
		}
		delete(h.connections, userID)
	}
}
