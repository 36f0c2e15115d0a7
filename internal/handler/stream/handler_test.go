package stream

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/tatvaai/careerbot/backend/internal/analysis/match"
	"github.com/tatvaai/careerbot/backend/internal/model/faq"
	"github.com/tatvaai/careerbot/backend/internal/service/bot"
	chatservice "github.com/tatvaai/careerbot/backend/internal/service/chat"
)

func TestHandleStreamRequestEmitsTypingThenMessage(t *testing.T) {
	store := faq.NewMemoryStore([]faq.Entry{
		{Keyword: "machine learning basics", Answer: "ML is...", Domain: "AI"},
	})
	chatSvc := chatservice.NewService()
	matcher := match.New(store, match.DefaultThreshold, 5*time.Millisecond)
	handler := New(bot.NewService(matcher, chatSvc))

	session, _ := chatSvc.CreateSession(context.Background())

	resp := httptest.NewRecorder()
	err := handler.HandleStreamRequest(context.Background(), resp, session.ID, "machine learning basics", "All")
	if err != nil {
		t.Fatalf("HandleStreamRequest err: %v", err)
	}

	body := resp.Body.String()
	typingAt := strings.Index(body, "event: typing")
	messageAt := strings.Index(body, "event: message")
	endAt := strings.Index(body, "event: end")

	if typingAt < 0 || messageAt < 0 || endAt < 0 {
		t.Fatalf("missing events in stream: %q", body)
	}
	if !(typingAt < messageAt && messageAt < endAt) {
		t.Fatalf("events out of order: %q", body)
	}
	if !strings.Contains(body, "ML is...") {
		t.Fatalf("expected answer in stream: %q", body)
	}
}

func TestHandleStreamRequestUnknownSession(t *testing.T) {
	store := faq.NewMemoryStore(nil)
	chatSvc := chatservice.NewService()
	matcher := match.New(store, match.DefaultThreshold, 0)
	handler := New(bot.NewService(matcher, chatSvc))

	resp := httptest.NewRecorder()
	err := handler.HandleStreamRequest(context.Background(), resp, "missing", "hello", "All")
	if err == nil {
		t.Fatal("expected error for unknown session")
	}
	if !strings.Contains(resp.Body.String(), "event: error") {
		t.Fatalf("expected error event in stream: %q", resp.Body.String())
	}
}
