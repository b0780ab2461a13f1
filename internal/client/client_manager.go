package client

import (
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"golang.org/x/time/rate"
)

// Manager tracks connected clients
type Manager struct {
	clients map[string]*Client
	mu      sync.RWMutex
}

// NewManager creates a new client manager
func NewManager() *Manager {
	return &Manager{
		clients: make(map[string]*Client),
	}
}

// Add: registers a new connection and returns its client
func (m *Manager) Add(conn *websocket.Conn, messagesPerSecond float64, burstSize int) *Client {
	m.mu.Lock()
	defer m.mu.Unlock()

	c := &Client{
		ID:          GenerateID(),
		Connection:  conn,
		RateLimiter: rate.NewLimiter(rate.Limit(messagesPerSecond), burstSize),
		LastSeen:    time.Now(),
	}
	m.clients[c.ID] = c
	return c
}

// Remove: removes a client (called on disconnect)
func (m *Manager) Remove(clientID string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.clients, clientID)
}

// Touch: updates the last seen time for a client
func (m *Manager) Touch(clientID string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if c, exists := m.clients[clientID]; exists {
		c.LastSeen = time.Now()
	}
}

// Count: returns the number of connected clients
func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.clients)
}

// Cleanup: removes clients that have been silent longer than the threshold
func (m *Manager) Cleanup(threshold time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now()
	for id, c := range m.clients {
		if now.Sub(c.LastSeen) > threshold {
			if c.Connection != nil {
				c.Connection.Close()
			}
			delete(m.clients, id)
		}
	}
}
