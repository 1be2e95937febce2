package services

import (
	"sync"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

// CheckinNotifier publishes check-in events to whoever is watching. The hub
// implements it for WebSocket viewers; tests substitute a recorder.
type CheckinNotifier interface {
	Publish(event CheckinEvent)
}

// CheckinHub fans check-in events out to all connected WebSocket clients.
// Events are not filtered by group server-side; clients cross-reference
// traveler ids against their own roster.
type CheckinHub struct {
	mu        sync.Mutex
	clients   map[*websocket.Conn]bool
	broadcast chan CheckinEvent
	closed    bool
}

func NewCheckinHub() *CheckinHub {
	hub := &CheckinHub{
		clients:   make(map[*websocket.Conn]bool),
		broadcast: make(chan CheckinEvent, 100),
	}
	go hub.run()
	return hub
}

func (h *CheckinHub) run() {
	for event := range h.broadcast {
		h.mu.Lock()
		for conn := range h.clients {
			if err := conn.WriteJSON(event); err != nil {
				logrus.WithError(err).Info("dropping realtime client after failed write")
				conn.Close()
				delete(h.clients, conn)
			}
		}
		h.mu.Unlock()
	}
}

func (h *CheckinHub) Register(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		conn.Close()
		return
	}
	h.clients[conn] = true
}

func (h *CheckinHub) Unregister(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[conn]; ok {
		delete(h.clients, conn)
		conn.Close()
	}
}

// Publish never blocks a toggle on slow consumers: when the buffer is full
// the event is dropped and viewers resynchronize on their next fetch.
func (h *CheckinHub) Publish(event CheckinEvent) {
	h.mu.Lock()
	closed := h.closed
	h.mu.Unlock()
	if closed {
		return
	}

	select {
	case h.broadcast <- event:
	default:
		logrus.WithField("event", event.Event).Warn("realtime buffer full, event dropped")
	}
}

func (h *CheckinHub) ClientCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

func (h *CheckinHub) Close() {
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		return
	}
	h.closed = true
	for conn := range h.clients {
		conn.Close()
		delete(h.clients, conn)
	}
	h.mu.Unlock()
	close(h.broadcast)
}
