package ws

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/tatvaai/careerbot/backend/internal/analysis/match"
	"github.com/tatvaai/careerbot/backend/internal/model/faq"
	"github.com/tatvaai/careerbot/backend/internal/service/bot"
	chatservice "github.com/tatvaai/careerbot/backend/internal/service/chat"
)

func TestWebSocketUnknownSession(t *testing.T) {
	store := faq.NewMemoryStore(nil)
	chatSvc := chatservice.NewService()
	matcher := match.New(store, match.DefaultThreshold, 0)
	handler := New(bot.NewService(matcher, chatSvc), chatSvc)

	r := chi.NewRouter()
	handler.RegisterRoutes(r)

	req := httptest.NewRequest(http.MethodGet, "/ws/missing", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.Code)
	}
}
