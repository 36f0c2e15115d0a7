package faq

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tatvaai/careerbot/backend/internal/model/faq"
	"github.com/tatvaai/careerbot/backend/pkg/utils"
)

// Handler serves the FAQ metadata the frontend needs to render its controls.
type Handler struct {
	store faq.Store
}

// New creates the FAQ handler.
func New(store faq.Store) *Handler {
	return &Handler{store: store}
}

// RegisterRoutes registers FAQ metadata routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/domains", h.handleListDomains)
	r.Get("/examples", h.handleListExamples)
}

// handleListDomains lists the selectable domains, wildcard first.
func (h *Handler) handleListDomains(w http.ResponseWriter, r *http.Request) {
	domains := append([]string{faq.WildcardDomain}, h.store.Domains()...)
	utils.RespondJSON(w, http.StatusOK, domains)
}

// handleListExamples lists the example question shortcuts.
func (h *Handler) handleListExamples(w http.ResponseWriter, r *http.Request) {
	utils.RespondJSON(w, http.StatusOK, faq.ExampleQuestions())
}
