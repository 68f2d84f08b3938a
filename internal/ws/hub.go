package ws

import (
	"encoding/json"
	"sync"
)

// Client is one live notification connection with user context.
type Client struct {
	UserID uint64
	Send   chan []byte

	hub    *Hub
	mu     sync.Mutex
	closed bool
}

func (c *Client) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.closed = true
	close(c.Send)
	if c.hub != nil {
		c.hub.unregister(c)
	}
}

// trySend delivers without blocking. The closed check and the send share
// c.mu so a concurrent Close can never turn this into a send on a closed
// channel.
func (c *Client) trySend(data []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	select {
	case c.Send <- data:
	default:
	}
}

// Hub tracks live connections per user so notification writes can be
// pushed without polling. One user may hold several connections.
type Hub struct {
	mu     sync.RWMutex
	byUser map[uint64]map[*Client]struct{}
}

func NewHub() *Hub {
	return &Hub{byUser: make(map[uint64]map[*Client]struct{})}
}

func (h *Hub) Register(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	c.hub = h
	if h.byUser[c.UserID] == nil {
		h.byUser[c.UserID] = make(map[*Client]struct{})
	}
	h.byUser[c.UserID][c] = struct{}{}
}

func (h *Hub) unregister(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if m := h.byUser[c.UserID]; m != nil {
		delete(m, c)
		if len(m) == 0 {
			delete(h.byUser, c.UserID)
		}
	}
}

// BroadcastToUser delivers the payload to every connection the user has
// open. A connection with a full send buffer is skipped, not blocked on.
func (h *Hub) BroadcastToUser(userID uint64, payload interface{}) {
	data, _ := json.Marshal(payload)
	h.mu.RLock()
	m := h.byUser[userID]
	clients := make([]*Client, 0, len(m))
	for c := range m {
		clients = append(clients, c)
	}
	h.mu.RUnlock()
	for _, c := range clients {
		c.trySend(data)
	}
}

func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	n := 0
	for _, m := range h.byUser {
		n += len(m)
	}
	return n
}
