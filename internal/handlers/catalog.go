package handlers

import (
	"encoding/json"
	"fmt"

	"main/internal/catalog"
	"main/internal/client"
	"main/internal/icon"

	"github.com/gorilla/websocket"
)

// CatalogHandler: handles catalog-level messages (listing, resolution)
type CatalogHandler struct {
	source IconSource
}

func NewCatalogHandler(source IconSource) *CatalogHandler {
	return &CatalogHandler{
		source: source,
	}
}

// HandleList: listIcons messages returning every registered identifier
func (h *CatalogHandler) HandleList(c *client.Client) error {
	response := map[string]interface{}{
		"type":  "icons",
		"ids":   h.source.IDs(),
		"count": h.source.Count(),
	}

	responseMsg, err := json.Marshal(response)
	if err != nil {
		return fmt.Errorf("marshal icon list response: %w", err)
	}

	return c.WriteMessage(websocket.TextMessage, responseMsg)
}

// HandleResolve: resolveResource messages mapping a resource display
// name to its icon identifier
func (h *CatalogHandler) HandleResolve(c *client.Client, data map[string]interface{}) error {
	resource, ok := data["resource"].(string)
	if !ok {
		return fmt.Errorf("missing resource name")
	}

	response := map[string]interface{}{
		"type":     "resourceIcon",
		"resource": icon.SanitizeString(resource),
		"id":       catalog.ResolveResourceID(resource),
	}

	responseMsg, err := json.Marshal(response)
	if err != nil {
		return fmt.Errorf("marshal resolve response: %w", err)
	}

	return c.WriteMessage(websocket.TextMessage, responseMsg)
}
