package handlers

import (
	"encoding/json"
	"fmt"

	"main/internal/client"

	"github.com/gorilla/websocket"
)

// Synchronizer: sends the catalog snapshot to new clients
type Synchronizer struct {
	source IconSource
}

// NewSynchronizer: creates new synchronizer
func NewSynchronizer(source IconSource) *Synchronizer {
	return &Synchronizer{
		source: source,
	}
}

// SyncNewClient sends the current catalog contents (all identifiers)
// to a newly connected client
func (s *Synchronizer) SyncNewClient(c *client.Client) error {
	syncMsg := map[string]interface{}{
		"type":  "sync",
		"ids":   s.source.IDs(),
		"count": s.source.Count(),
	}

	msgBytes, err := json.Marshal(syncMsg)
	if err != nil {
		return fmt.Errorf("failed to marshal sync message: %w", err)
	}

	if err := c.WriteMessage(websocket.TextMessage, msgBytes); err != nil {
		return fmt.Errorf("failed to send sync message: %w", err)
	}

	return nil
}
