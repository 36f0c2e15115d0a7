package document

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	chatservice "github.com/tatvaai/careerbot/backend/internal/service/chat"
	documentservice "github.com/tatvaai/careerbot/backend/internal/service/document"
	"github.com/tatvaai/careerbot/backend/pkg/utils"
)

// Handler accepts reference document uploads for a session.
type Handler struct {
	docSvc   *documentservice.Service
	maxBytes int64
}

// New creates the document upload handler.
func New(docSvc *documentservice.Service, maxBytes int64) *Handler {
	return &Handler{docSvc: docSvc, maxBytes: maxBytes}
}

// RegisterRoutes registers the upload route.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/sessions/{sessionID}/document", h.handleUpload)
}

// handleUpload ingests a multipart PDF upload under the "document" field.
func (h *Handler) handleUpload(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")

	if h.maxBytes > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxBytes)
	}

	file, _, err := r.FormFile("document")
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "document file is required")
		return
	}
	defer file.Close()

	result, err := h.docSvc.Ingest(r.Context(), sessionID, file)
	if err != nil {
		status := http.StatusInternalServerError
		switch {
		case errors.Is(err, chatservice.ErrSessionNotFound):
			status = http.StatusNotFound
		case errors.Is(err, documentservice.ErrEmptyUpload):
			status = http.StatusBadRequest
		}
		utils.RespondError(w, status, err.Error())
		return
	}

	utils.RespondJSON(w, http.StatusOK, result)
}
