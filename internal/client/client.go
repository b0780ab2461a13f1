package client

import (
	"crypto/rand"
	"encoding/hex"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"golang.org/x/time/rate"
)

// Client represents a connected icon consumer
type Client struct {
	ID          string
	Connection  *websocket.Conn
	RateLimiter *rate.Limiter
	LastSeen    time.Time

	writeMu sync.Mutex
}

// WriteMessage: serialized write to the client's connection.
// gorilla/websocket allows only one concurrent writer per connection.
func (c *Client) WriteMessage(messageType int, data []byte) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()

	return c.Connection.WriteMessage(messageType, data)
}

// GenerateID generates a random ID for client identification
func GenerateID() string {
	bytes := make([]byte, 16)
	rand.Read(bytes)
	return hex.EncodeToString(bytes)
}
