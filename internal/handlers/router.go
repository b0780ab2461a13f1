package handlers

import (
	"encoding/json"
	"fmt"

	"main/internal/client"
	"main/internal/middleware"
)

// MessageRouter routes incoming messages to appropriate handlers
type MessageRouter struct {
	iconHandler    *IconHandler
	catalogHandler *CatalogHandler
}

func NewMessageRouter(
	source IconSource,
	scaler Scaler,
	limits *middleware.Limits,
) *MessageRouter {
	return &MessageRouter{
		iconHandler:    NewIconHandler(source, scaler, limits),
		catalogHandler: NewCatalogHandler(source),
	}
}

// Route: process a message via appropriate handler
func (mr *MessageRouter) Route(c *client.Client, msg []byte) error {
	var data map[string]interface{}
	if err := json.Unmarshal(msg, &data); err != nil {
		return fmt.Errorf("unmarshal base message: %w", err)
	}

	messageType, ok := data["type"].(string)
	if !ok {
		return fmt.Errorf("missing message type")
	}

	switch messageType {
	case "getIcon":
		return mr.iconHandler.HandleGet(c, data)
	case "getIcons":
		return mr.iconHandler.HandleGetBatch(c, data)
	case "getIconSvg":
		return mr.iconHandler.HandleGetSVG(c, data)
	case "listIcons":
		return mr.catalogHandler.HandleList(c)
	case "resolveResource":
		return mr.catalogHandler.HandleResolve(c, data)
	default:
		return fmt.Errorf("unknown message type: %s", messageType)
	}
}
