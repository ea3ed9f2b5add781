package advisor

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/yegors/seat-side/internal/airports"
	"github.com/yegors/seat-side/internal/websocket"
	"github.com/yegors/seat-side/pkg/logger"
)

// requestTimeout bounds a single websocket query, history write included
const requestTimeout = 10 * time.Second

// WebSocketHandler answers recommendation requests arriving over the websocket hub
type WebSocketHandler struct {
	service *Service
	logger  *logger.Logger
}

// NewWebSocketHandler creates a new WebSocket message handler
func NewWebSocketHandler(service *Service, log *logger.Logger) *WebSocketHandler {
	return &WebSocketHandler{
		service: service,
		logger:  log.Named("advisor-ws-handler"),
	}
}

// HandleMessage handles incoming WebSocket messages
func (h *WebSocketHandler) HandleMessage(client *websocket.Client, messageType string, data map[string]any) error {
	switch messageType {
	case websocket.MessageTypeRecommendationRequest:
		return h.handleRecommendationRequest(client, data)
	default:
		h.logger.Debug("Unhandled message type", logger.String("type", messageType))
		client.SendMessage(websocket.ErrorMessage(messageType, "unsupported message type"))
		return nil
	}
}

func (h *WebSocketHandler) handleRecommendationRequest(client *websocket.Client, data map[string]any) error {
	// Round trip through JSON so the payload decodes exactly like the HTTP body
	var req Request
	raw, err := json.Marshal(data)
	if err == nil {
		err = json.Unmarshal(raw, &req)
	}
	if err != nil {
		client.SendMessage(websocket.ErrorMessage(websocket.MessageTypeRecommendationRequest, "malformed request"))
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	result, err := h.service.Advise(ctx, req)
	if err != nil {
		msg := websocket.ErrorMessage(websocket.MessageTypeRecommendationRequest, err.Error())
		msg.Data["code"] = errorCode(err)
		if id, ok := data["id"]; ok {
			msg.Data["id"] = id
		}
		client.SendMessage(msg)
		if IsClientError(err) {
			return nil
		}
		return err
	}

	response := &websocket.Message{
		Type: websocket.MessageTypeRecommendationResponse,
		Data: map[string]any{
			"request_id":      result.RequestID,
			"source":          result.Source,
			"destination":     result.Destination,
			"analysis":        result.Analysis,
			"recommendations": result.Recommendations,
			"path":            result.Path,
		},
	}
	if id, ok := data["id"]; ok {
		response.Data["id"] = id
	}

	if !client.SendMessage(response) {
		h.logger.Warn("Dropped recommendation response", logger.String("client_id", client.ID()))
	}
	return nil
}

// errorCode names the error class for clients that cannot read HTTP status codes
func errorCode(err error) string {
	switch {
	case errors.Is(err, airports.ErrCatalogNotLoaded):
		return "catalog_not_loaded"
	case errors.Is(err, airports.ErrAirportNotFound):
		return "not_found"
	case IsClientError(err):
		return "invalid_input"
	default:
		return "internal"
	}
}
