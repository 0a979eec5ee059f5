package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/ternarybob/arbor"
	"github.com/ternarybob/atelier/internal/common"
	"github.com/ternarybob/atelier/internal/interfaces"
	"golang.org/x/time/rate"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins for local development
	},
}

// WSMessage is the wire envelope pushed to connected builder UIs
type WSMessage struct {
	Type      string      `json:"type"`
	Payload   interface{} `json:"payload,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
}

// wsClient is one connected builder UI. Writes are serialized per
// connection and rate limited so a burst of canvas mutations cannot
// flood a slow client.
type wsClient struct {
	mu      sync.Mutex
	limiter *rate.Limiter
}

// WebSocketHandler broadcasts canvas mutations and analysis lifecycle
// events to connected builder UIs.
type WebSocketHandler struct {
	logger  arbor.ILogger
	clients map[*websocket.Conn]*wsClient
	mu      sync.RWMutex
	config  common.WebSocketConfig
}

// NewWebSocketHandler creates the handler and subscribes it to all
// broadcastable event types.
func NewWebSocketHandler(eventService interfaces.EventService, cfg common.WebSocketConfig, logger arbor.ILogger) *WebSocketHandler {
	h := &WebSocketHandler{
		logger:  logger,
		clients: make(map[*websocket.Conn]*wsClient),
		config:  cfg,
	}

	broadcastable := []interfaces.EventType{
		interfaces.EventComponentCreated,
		interfaces.EventComponentUpdated,
		interfaces.EventComponentDeleted,
		interfaces.EventScreenCreated,
		interfaces.EventScreenUpdated,
		interfaces.EventScreenDeleted,
		interfaces.EventAnalysisStarted,
		interfaces.EventAnalysisComplete,
		interfaces.EventAnalysisFailed,
	}
	for _, eventType := range broadcastable {
		if err := eventService.Subscribe(eventType, h.onEvent); err != nil {
			logger.Warn().Err(err).Str("event_type", string(eventType)).Msg("Failed to subscribe websocket broadcaster")
		}
	}

	return h
}

// HandleWebSocket handles GET /ws
func (h *WebSocketHandler) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Error().Err(err).Msg("Failed to upgrade WebSocket connection")
		return
	}

	client := &wsClient{
		limiter: rate.NewLimiter(rate.Limit(h.config.EventsPerSecond), h.config.Burst),
	}

	h.mu.Lock()
	h.clients[conn] = client
	total := len(h.clients)
	h.mu.Unlock()

	h.logger.Debug().Msgf("WebSocket client connected (total: %d)", total)

	defer func() {
		h.mu.Lock()
		delete(h.clients, conn)
		remaining := len(h.clients)
		h.mu.Unlock()

		conn.Close()
		h.logger.Debug().Msgf("WebSocket client disconnected (remaining: %d)", remaining)
	}()

	// Read loop keeps the connection alive; clients only listen
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				h.logger.Warn().Err(err).Msg("WebSocket error")
			}
			break
		}
	}
}

// onEvent forwards a published application event to every client
func (h *WebSocketHandler) onEvent(_ context.Context, event interfaces.Event) error {
	msg := WSMessage{
		Type:      string(event.Type),
		Payload:   event.Payload,
		Timestamp: time.Now(),
	}

	data, err := json.Marshal(msg)
	if err != nil {
		h.logger.Error().Err(err).Str("event_type", string(event.Type)).Msg("Failed to marshal websocket message")
		return err
	}

	h.broadcast(data)
	return nil
}

// broadcast writes the frame to every connected client, dropping it for
// clients over their rate limit.
func (h *WebSocketHandler) broadcast(data []byte) {
	h.mu.RLock()
	conns := make([]*websocket.Conn, 0, len(h.clients))
	clients := make([]*wsClient, 0, len(h.clients))
	for conn, client := range h.clients {
		conns = append(conns, conn)
		clients = append(clients, client)
	}
	h.mu.RUnlock()

	for i, conn := range conns {
		client := clients[i]
		if !client.limiter.Allow() {
			continue
		}

		client.mu.Lock()
		err := conn.WriteMessage(websocket.TextMessage, data)
		client.mu.Unlock()

		if err != nil {
			h.logger.Warn().Err(err).Msg("Failed to send message to websocket client")
		}
	}
}
