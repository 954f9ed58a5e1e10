package notify

import (
	"context"
	"net/url"
	"sync"
	"time"

	"github.com/coder/websocket"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Notification is the wire format fanned out to subscribers.
type Notification struct {
	Topic     string    `json:"topic"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// subscriber is one websocket connection pinned to a tenant room.
type subscriber struct {
	conn *websocket.Conn
}

// Hub fans notifications out to per-tenant rooms. Delivery is best-effort:
// a slow or dead subscriber is dropped, never retried, and nothing is
// persisted.
type Hub struct {
	mu    sync.RWMutex
	rooms map[string]map[*subscriber]struct{}

	originPatterns []string
	anyOrigin      bool
}

// NewHub creates a new notification hub. Allowed origins take the same values
// as the CORS allowlist; "*" admits any origin.
func NewHub(allowedOrigins ...string) *Hub {
	h := &Hub{rooms: make(map[string]map[*subscriber]struct{})}
	for _, origin := range allowedOrigins {
		if origin == "*" {
			h.anyOrigin = true
			continue
		}
		// The upgrade handshake matches against the origin host, not the URL.
		if u, err := url.Parse(origin); err == nil && u.Host != "" {
			h.originPatterns = append(h.originPatterns, u.Host)
		} else {
			h.originPatterns = append(h.originPatterns, origin)
		}
	}
	return h
}

func roomKey(companyID *uuid.UUID) string {
	if companyID == nil {
		return "global"
	}
	return companyID.String()
}

func (h *Hub) register(companyID *uuid.UUID, sub *subscriber) {
	key := roomKey(companyID)
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.rooms[key] == nil {
		h.rooms[key] = make(map[*subscriber]struct{})
	}
	h.rooms[key][sub] = struct{}{}
}

func (h *Hub) unregister(companyID *uuid.UUID, sub *subscriber) {
	key := roomKey(companyID)
	h.mu.Lock()
	defer h.mu.Unlock()
	if room, ok := h.rooms[key]; ok {
		delete(room, sub)
		if len(room) == 0 {
			delete(h.rooms, key)
		}
	}
}

// SubscriberCount reports the live subscribers of one tenant room.
func (h *Hub) SubscriberCount(companyID *uuid.UUID) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.rooms[roomKey(companyID)])
}

// Publish implements service.EventPublisher. A nil company broadcasts to
// every room.
func (h *Hub) Publish(companyID *uuid.UUID, topic, title, message string) {
	n := &Notification{
		Topic:     topic,
		Title:     title,
		Message:   message,
		Timestamp: time.Now(),
	}
	if companyID == nil {
		h.broadcastAll(n)
		return
	}
	h.broadcast(roomKey(companyID), n)
}

func (h *Hub) broadcastAll(n *Notification) {
	h.mu.RLock()
	keys := make([]string, 0, len(h.rooms))
	for key := range h.rooms {
		keys = append(keys, key)
	}
	h.mu.RUnlock()
	for _, key := range keys {
		h.broadcast(key, n)
	}
}

func (h *Hub) broadcast(key string, n *Notification) {
	h.mu.RLock()
	subs := make([]*subscriber, 0, len(h.rooms[key]))
	for sub := range h.rooms[key] {
		subs = append(subs, sub)
	}
	h.mu.RUnlock()

	for _, sub := range subs {
		if err := sub.send(n); err != nil {
			logrus.WithError(err).WithField("room", key).Debug("dropping dead subscriber")
			h.mu.Lock()
			if room, ok := h.rooms[key]; ok {
				delete(room, sub)
			}
			h.mu.Unlock()
			_ = sub.conn.Close(websocket.StatusGoingAway, "write failed")
		}
	}
}

func (s *subscriber) send(n *Notification) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return writeJSON(ctx, s.conn, n)
}
