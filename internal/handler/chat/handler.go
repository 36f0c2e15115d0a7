package chat

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/go-chi/chi/v5"

	chatmodel "github.com/tatvaai/careerbot/backend/internal/model/chat"
	"github.com/tatvaai/careerbot/backend/internal/service/bot"
	chatservice "github.com/tatvaai/careerbot/backend/internal/service/chat"
	"github.com/tatvaai/careerbot/backend/pkg/utils"
)

// Handler exposes the conversation lifecycle over HTTP: session creation,
// question submission, history, feedback, analytics and export.
type Handler struct {
	botSvc     *bot.Service
	chatSvc    *chatservice.Service
	exportPath string
}

// New creates the chat handler. exportPath names the server-side export
// artifact; empty disables the file side effect.
func New(botSvc *bot.Service, chatSvc *chatservice.Service, exportPath string) *Handler {
	return &Handler{
		botSvc:     botSvc,
		chatSvc:    chatSvc,
		exportPath: exportPath,
	}
}

// RegisterRoutes registers the conversation routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/session", h.handleCreateSession)
	r.Route("/sessions/{sessionID}", func(r chi.Router) {
		r.Get("/history", h.handleHistory)
		r.Post("/messages", h.handleAsk)
		r.Post("/feedback", h.handleFeedback)
		r.Get("/analytics", h.handleAnalytics)
		r.Get("/export", h.handleExport)
	})
}

func (h *Handler) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	session, err := h.chatSvc.CreateSession(r.Context())
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	utils.RespondJSON(w, http.StatusCreated, session)
}

func (h *Handler) handleHistory(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")
	history, err := h.chatSvc.History(r.Context(), sessionID)
	if err != nil {
		utils.RespondError(w, statusFor(err), err.Error())
		return
	}
	utils.RespondJSON(w, http.StatusOK, history)
}

func (h *Handler) handleAsk(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")

	var payload struct {
		Message string `json:"message"`
		Domain  string `json:"domain"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	exchange, err := h.botSvc.Ask(r.Context(), bot.AskRequest{
		SessionID: sessionID,
		Question:  payload.Message,
		Domain:    payload.Domain,
	})
	if err != nil {
		utils.RespondError(w, statusFor(err), err.Error())
		return
	}

	utils.RespondJSON(w, http.StatusOK, exchange)
}

func (h *Handler) handleFeedback(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")

	var payload struct {
		TurnIndex *int   `json:"turnIndex"`
		Vote      string `json:"vote"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if payload.TurnIndex == nil {
		utils.RespondError(w, http.StatusBadRequest, "turnIndex is required")
		return
	}

	err := h.chatSvc.RecordFeedback(r.Context(), sessionID, *payload.TurnIndex, chatmodel.Vote(payload.Vote))
	if err != nil {
		utils.RespondError(w, statusFor(err), err.Error())
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]string{"status": "recorded"})
}

func (h *Handler) handleAnalytics(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")
	analytics, err := h.chatSvc.Analytics(r.Context(), sessionID)
	if err != nil {
		utils.RespondError(w, statusFor(err), err.Error())
		return
	}
	utils.RespondJSON(w, http.StatusOK, analytics)
}

// handleExport serves the transcript as a text attachment and, when an export
// path is configured, overwrites the server-side artifact as well.
func (h *Handler) handleExport(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")
	lines, err := h.chatSvc.Transcript(r.Context(), sessionID)
	if err != nil {
		utils.RespondError(w, statusFor(err), err.Error())
		return
	}

	var body strings.Builder
	for _, line := range lines {
		body.WriteString(line)
		body.WriteByte('\n')
	}

	if h.exportPath != "" {
		if err := os.WriteFile(h.exportPath, []byte(body.String()), 0o644); err != nil {
			log.Printf("[chat] failed to write export file %s: %v", h.exportPath, err)
		}
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "chat_history.txt"))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(body.String())); err != nil {
		log.Printf("[chat] failed to write export response: %v", err)
	}
}

// statusFor maps service errors onto HTTP statuses.
func statusFor(err error) int {
	switch {
	case errors.Is(err, chatservice.ErrSessionNotFound):
		return http.StatusNotFound
	case errors.Is(err, chatservice.ErrInvalidIndex),
		errors.Is(err, chatservice.ErrInvalidVote),
		errors.Is(err, bot.ErrEmptyQuestion):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
