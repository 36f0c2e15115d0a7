package handler

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	chatHandler "github.com/tatvaai/careerbot/backend/internal/handler/chat"
	documentHandler "github.com/tatvaai/careerbot/backend/internal/handler/document"
	faqHandler "github.com/tatvaai/careerbot/backend/internal/handler/faq"
	"github.com/tatvaai/careerbot/backend/internal/handler/stream"
	"github.com/tatvaai/careerbot/backend/internal/handler/ws"
	middlewarePkg "github.com/tatvaai/careerbot/backend/internal/middleware"
	faqModel "github.com/tatvaai/careerbot/backend/internal/model/faq"
	"github.com/tatvaai/careerbot/backend/internal/service/bot"
	chatService "github.com/tatvaai/careerbot/backend/internal/service/chat"
	documentService "github.com/tatvaai/careerbot/backend/internal/service/document"
	"github.com/tatvaai/careerbot/backend/pkg/utils"
)

// Options carries the wiring the router needs beyond its services.
type Options struct {
	ExportPath     string
	MaxUploadBytes int64
}

// NewRouter wires HTTP routes to core services.
func NewRouter(store faqModel.Store, chatSvc *chatService.Service, botSvc *bot.Service, docSvc *documentService.Service, opts Options) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewarePkg.CORS)

	streamHandler := stream.New(botSvc)

	r.Route("/api", func(api chi.Router) {
		faqHandler.New(store).RegisterRoutes(api)
		chatHandler.New(botSvc, chatSvc, opts.ExportPath).RegisterRoutes(api)
		documentHandler.New(docSvc, opts.MaxUploadBytes).RegisterRoutes(api)
		ws.New(botSvc, chatSvc).RegisterRoutes(api)

		api.Get("/stream/{sessionID}", func(w http.ResponseWriter, r *http.Request) {
			sessionID := chi.URLParam(r, "sessionID")
			message := r.URL.Query().Get("message")
			domain := r.URL.Query().Get("domain")

			if message == "" {
				utils.RespondError(w, http.StatusBadRequest, "message query parameter is required")
				return
			}

			if err := streamHandler.HandleStreamRequest(r.Context(), w, sessionID, message, domain); err != nil {
				log.Printf("[stream] error handling request: %v", err)
			}
		})
	})

	return r
}
