package handlers

import (
	"encoding/json"
	"fmt"

	"main/internal/client"
	"main/internal/icon"
	"main/internal/middleware"
	"main/internal/svg"

	"github.com/gorilla/websocket"
)

// Largest display size a client may request
const maxRequestedDimension = 4096

// IconHandler: handles icon retrieval messages (single, batch, SVG)
type IconHandler struct {
	source IconSource
	scaler Scaler
	limits *middleware.Limits
}

func NewIconHandler(source IconSource, scaler Scaler, limits *middleware.Limits) *IconHandler {
	return &IconHandler{
		source: source,
		scaler: scaler,
		limits: limits,
	}
}

// HandleGet: getIcon messages. Unknown identifiers resolve to a
// placeholder definition rather than an error.
func (h *IconHandler) HandleGet(c *client.Client, data map[string]interface{}) error {
	id, ok := data["id"].(string)
	if !ok {
		return fmt.Errorf("missing icon id")
	}

	width, height, err := requestedSize(data)
	if err != nil {
		return err
	}

	ic := h.source.Lookup(id)
	scaled := h.scaler.Scaled(ic, sizeOrDefault(width, ic.DisplaySize.Width), sizeOrDefault(height, ic.DisplaySize.Height))

	response := map[string]interface{}{
		"type": "icon",
		"icon": scaled,
	}

	responseMsg, err := json.Marshal(response)
	if err != nil {
		return fmt.Errorf("marshal icon response: %w", err)
	}

	return c.WriteMessage(websocket.TextMessage, responseMsg)
}

// HandleGetBatch: getIcons messages requesting several icons at once
func (h *IconHandler) HandleGetBatch(c *client.Client, data map[string]interface{}) error {
	rawIDs, ok := data["ids"].([]interface{})
	if !ok {
		return fmt.Errorf("missing icon ids")
	}

	if !h.limits.ValidateBatchSize(len(rawIDs)) {
		return fmt.Errorf("batch too large: %d icons (max %d)", len(rawIDs), h.limits.MaxBatchSize)
	}

	width, height, err := requestedSize(data)
	if err != nil {
		return err
	}

	icons := make([]*icon.Icon, 0, len(rawIDs))
	for _, rawID := range rawIDs {
		id, ok := rawID.(string)
		if !ok {
			return fmt.Errorf("invalid icon id in batch")
		}
		ic := h.source.Lookup(id)
		icons = append(icons, h.scaler.Scaled(ic, sizeOrDefault(width, ic.DisplaySize.Width), sizeOrDefault(height, ic.DisplaySize.Height)))
	}

	response := map[string]interface{}{
		"type":  "iconBatch",
		"icons": icons,
	}

	responseMsg, err := json.Marshal(response)
	if err != nil {
		return fmt.Errorf("marshal icon batch response: %w", err)
	}

	return c.WriteMessage(websocket.TextMessage, responseMsg)
}

// HandleGetSVG: getIconSvg messages returning the SVG document form
func (h *IconHandler) HandleGetSVG(c *client.Client, data map[string]interface{}) error {
	id, ok := data["id"].(string)
	if !ok {
		return fmt.Errorf("missing icon id")
	}

	width, height, err := requestedSize(data)
	if err != nil {
		return err
	}

	ic := h.source.Lookup(id)
	scaled := h.scaler.Scaled(ic, sizeOrDefault(width, ic.DisplaySize.Width), sizeOrDefault(height, ic.DisplaySize.Height))

	document, err := svg.Write(scaled)
	if err != nil {
		return fmt.Errorf("write svg for %s: %w", id, err)
	}

	response := map[string]interface{}{
		"type": "iconSvg",
		"id":   icon.SanitizeString(id),
		"svg":  document,
	}

	responseMsg, err := json.Marshal(response)
	if err != nil {
		return fmt.Errorf("marshal svg response: %w", err)
	}

	return c.WriteMessage(websocket.TextMessage, responseMsg)
}

// requestedSize: optional width/height fields of a request
func requestedSize(data map[string]interface{}) (float64, float64, error) {
	width, err := dimension(data, "width")
	if err != nil {
		return 0, 0, err
	}
	height, err := dimension(data, "height")
	if err != nil {
		return 0, 0, err
	}
	return width, height, nil
}

func dimension(data map[string]interface{}, field string) (float64, error) {
	raw, exists := data[field]
	if !exists {
		return 0, nil
	}

	value, ok := raw.(float64)
	if !ok {
		return 0, fmt.Errorf("invalid %s", field)
	}
	if value <= 0 || value > maxRequestedDimension {
		return 0, fmt.Errorf("%s out of range: %g", field, value)
	}
	return value, nil
}

func sizeOrDefault(requested, fallback float64) float64 {
	if requested > 0 {
		return requested
	}
	return fallback
}
