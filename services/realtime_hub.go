package services

import (
	"encoding/json"
	"sync"

	"github.com/gorilla/websocket"
)

// WSClient is one websocket connection owned by a user. A user may hold
// several at once (phone + tablet).
type WSClient struct {
	UserID uint
	Conn   *websocket.Conn

	writeMu sync.Mutex
}

// Write serializes frames onto the connection. gorilla/websocket allows a
// single concurrent writer, and both broadcasts and the keepalive ping
// goroutine write to the same conn, so every write must go through here.
func (c *WSClient) Write(messageType int, data []byte) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	return c.Conn.WriteMessage(messageType, data)
}

// RealtimeHub fans intake updates out to every connection a user holds.
// It replaces the document-store live subscription the mobile client used:
// subscribe on connect, unsubscribe on close, no callbacks left behind.
type RealtimeHub struct {
	mu      sync.RWMutex
	clients map[uint]map[*WSClient]struct{}
}

func NewRealtimeHub() *RealtimeHub {
	return &RealtimeHub{clients: make(map[uint]map[*WSClient]struct{})}
}

func (h *RealtimeHub) Register(c *WSClient) {
	h.mu.Lock()
	if h.clients[c.UserID] == nil {
		h.clients[c.UserID] = make(map[*WSClient]struct{})
	}
	h.clients[c.UserID][c] = struct{}{}
	h.mu.Unlock()
}

func (h *RealtimeHub) Unregister(c *WSClient) {
	h.mu.Lock()
	if set := h.clients[c.UserID]; set != nil {
		delete(set, c)
		if len(set) == 0 {
			delete(h.clients, c.UserID)
		}
	}
	h.mu.Unlock()
	_ = c.Conn.Close()
}

// IntakeUpdate is the payload broadcast after every ledger mutation.
type IntakeUpdate struct {
	Kind          string  `json:"kind"` // "intake.updated"
	Date          string  `json:"date"` // YYYY-MM-DD local
	TotalIntakeMl float64 `json:"total_intake_ml"`
	GoalMl        int     `json:"goal_ml"`
}

func (h *RealtimeHub) BroadcastIntakeUpdate(userID uint, update IntakeUpdate) {
	msg, _ := json.Marshal(update)
	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.clients[userID] {
		_ = c.Write(websocket.TextMessage, msg)
	}
}
