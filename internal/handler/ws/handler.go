// Package ws carries the conversation over a WebSocket: the client sends ask
// envelopes, the server answers with typing/message envelopes.
package ws

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"

	"github.com/tatvaai/careerbot/backend/internal/service/bot"
	chatservice "github.com/tatvaai/careerbot/backend/internal/service/chat"
)

// Handler upgrades chat connections and drives the ask loop.
type Handler struct {
	botSvc   *bot.Service
	chatSvc  *chatservice.Service
	upgrader websocket.Upgrader
}

// New creates the WebSocket chat handler.
func New(botSvc *bot.Service, chatSvc *chatservice.Service) *Handler {
	return &Handler{
		botSvc:  botSvc,
		chatSvc: chatSvc,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
}

// RegisterRoutes registers the WebSocket route.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/ws/{sessionID}", h.handleWebSocket)
}

type inboundMessage struct {
	Type    string `json:"type"`
	Message string `json:"message"`
	Domain  string `json:"domain"`
}

type outgoingMessage struct {
	Type      string      `json:"type"`
	SessionID string      `json:"sessionId,omitempty"`
	Data      interface{} `json:"data,omitempty"`
	Timestamp int64       `json:"timestamp"`
}

func (h *Handler) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")
	if _, err := h.chatSvc.GetSession(r.Context(), sessionID); err != nil {
		http.Error(w, "session not found", http.StatusNotFound)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[ws] upgrade failed for session=%s: %v", sessionID, err)
		return
	}
	defer conn.Close()

	log.Printf("[ws] connection opened for session=%s", sessionID)
	for {
		var inbound inboundMessage
		if err := conn.ReadJSON(&inbound); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("[ws] read error for session=%s: %v", sessionID, err)
			}
			return
		}

		if inbound.Type != "ask" {
			h.send(conn, sessionID, "error", map[string]string{"error": "unsupported message type"})
			continue
		}

		h.handleAsk(conn, sessionID, inbound)
	}
}

func (h *Handler) handleAsk(conn *websocket.Conn, sessionID string, inbound inboundMessage) {
	// The upgrade hijacks the request, so its context is no longer usable.
	exchange, err := h.botSvc.Ask(context.Background(), bot.AskRequest{
		SessionID: sessionID,
		Question:  inbound.Message,
		Domain:    inbound.Domain,
		OnTyping: func() {
			h.send(conn, sessionID, "typing", nil)
		},
	})
	if err != nil {
		if errors.Is(err, bot.ErrEmptyQuestion) {
			h.send(conn, sessionID, "error", map[string]string{"error": err.Error()})
			return
		}
		log.Printf("[ws] ask failed for session=%s: %v", sessionID, err)
		h.send(conn, sessionID, "error", map[string]string{"error": "failed to answer"})
		return
	}

	h.send(conn, sessionID, "message", exchange)
}

func (h *Handler) send(conn *websocket.Conn, sessionID, msgType string, data interface{}) {
	out := outgoingMessage{
		Type:      msgType,
		SessionID: sessionID,
		Data:      data,
		Timestamp: time.Now().UnixMilli(),
	}

	payload, err := json.Marshal(out)
	if err != nil {
		log.Printf("[ws] marshal failed: %v", err)
		return
	}
	if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
		log.Printf("[ws] write failed for session=%s: %v", sessionID, err)
	}
}
