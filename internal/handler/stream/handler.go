// Package stream serves bot replies over Server-Sent Events so the frontend
// can show the typing indicator while the matcher pauses.
package stream

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/tatvaai/careerbot/backend/internal/service/bot"
	"github.com/tatvaai/careerbot/backend/pkg/utils"
)

// Handler streams the lifecycle of one question as SSE events.
type Handler struct {
	botSvc *bot.Service
}

// New creates a stream handler.
func New(botSvc *bot.Service) *Handler {
	return &Handler{botSvc: botSvc}
}

// Event is one streaming payload.
type Event struct {
	SessionID string `json:"sessionId,omitempty"`
	Message   string `json:"message,omitempty"`
	Source    string `json:"source,omitempty"`
	TurnIndex int    `json:"turnIndex,omitempty"`
	Finished  bool   `json:"finished,omitempty"`
	Error     string `json:"error,omitempty"`
}

// HandleStreamRequest answers one question over SSE: a "typing" event when
// the matcher starts its pause, then "message" with the bot reply, then "end".
func (h *Handler) HandleStreamRequest(ctx context.Context, w http.ResponseWriter, sessionID, message, domain string) error {
	flusher, ok := w.(http.Flusher)
	if !ok {
		return fmt.Errorf("streaming unsupported")
	}

	utils.SetupSSEHeaders(w)

	exchange, err := h.botSvc.Ask(ctx, bot.AskRequest{
		SessionID: sessionID,
		Question:  message,
		Domain:    domain,
		OnTyping: func() {
			utils.SendSSEEvent(w, flusher, "typing", Event{SessionID: sessionID})
		},
	})
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return nil
		}
		utils.SendSSEEvent(w, flusher, "error", Event{SessionID: sessionID, Error: err.Error()})
		return err
	}

	utils.SendSSEEvent(w, flusher, "message", Event{
		SessionID: sessionID,
		Message:   exchange.Answer.Content,
		Source:    string(exchange.Source),
	})
	utils.SendSSEEvent(w, flusher, "end", Event{SessionID: sessionID, Finished: true})
	return nil
}
