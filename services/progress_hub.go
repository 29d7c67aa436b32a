package services

import (
	"encoding/json"
	"sync"

	"github.com/gorilla/websocket"
)

// ProgressClient is one websocket subscriber watching a pantry's weekly
// progress.
type ProgressClient struct {
	Pantry string
	Conn   *websocket.Conn
}

// ProgressHub fans donation-progress snapshots out to subscribers per
// pantry so the public thermometers update without polling.
type ProgressHub struct {
	mu      sync.RWMutex
	clients map[string]map[*ProgressClient]struct{}
}

// Progress is the process-wide hub.
var Progress = NewProgressHub()

func NewProgressHub() *ProgressHub {
	return &ProgressHub{clients: make(map[string]map[*ProgressClient]struct{})}
}

func (h *ProgressHub) Register(c *ProgressClient) {
	h.mu.Lock()
	if h.clients[c.Pantry] == nil {
		h.clients[c.Pantry] = make(map[*ProgressClient]struct{})
	}
	h.clients[c.Pantry][c] = struct{}{}
	h.mu.Unlock()
}

func (h *ProgressHub) Unregister(c *ProgressClient) {
	h.mu.Lock()
	if set := h.clients[c.Pantry]; set != nil {
		delete(set, c)
		if len(set) == 0 {
			delete(h.clients, c.Pantry)
		}
	}
	h.mu.Unlock()
	_ = c.Conn.Close()
}

// BroadcastProgress pushes a progress snapshot to every subscriber of the
// pantry. Write failures are ignored; dead connections unregister on their
// read loop.
func (h *ProgressHub) BroadcastProgress(pantry string, payload any) {
	msg, _ := json.Marshal(payload)
	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.clients[pantry] {
		_ = c.Conn.WriteMessage(websocket.TextMessage, msg)
	}
}
