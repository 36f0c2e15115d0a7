package bot_test

import (
	"context"
	"errors"
	"testing"

	"github.com/tatvaai/careerbot/backend/internal/analysis/match"
	"github.com/tatvaai/careerbot/backend/internal/model/faq"
	"github.com/tatvaai/careerbot/backend/internal/service/bot"
	chatservice "github.com/tatvaai/careerbot/backend/internal/service/chat"
)

func newBotService() (*bot.Service, *chatservice.Service) {
	store := faq.NewMemoryStore([]faq.Entry{
		{Keyword: "machine learning basics", Answer: "ML is...", Domain: "AI"},
	})
	chatSvc := chatservice.NewService()
	matcher := match.New(store, match.DefaultThreshold, 0)
	return bot.NewService(matcher, chatSvc), chatSvc
}

func TestAskRecordsExchange(t *testing.T) {
	botSvc, chatSvc := newBotService()
	ctx := context.Background()
	session, _ := chatSvc.CreateSession(ctx)

	exchange, err := botSvc.Ask(ctx, bot.AskRequest{
		SessionID: session.ID,
		Question:  "what are machine learning basics",
	})
	if err != nil {
		t.Fatalf("Ask err: %v", err)
	}
	if exchange.Source != match.SourceFAQ || exchange.Answer.Content != "ML is..." {
		t.Fatalf("unexpected exchange: %+v", exchange)
	}

	history, _ := chatSvc.History(ctx, session.ID)
	if len(history) != 2 {
		t.Fatalf("expected user and bot turns, got %d", len(history))
	}

	analytics, _ := chatSvc.Analytics(ctx, session.ID)
	if analytics.QuestionsAsked != 1 {
		t.Fatalf("expected questions asked = 1, got %d", analytics.QuestionsAsked)
	}
}

func TestAskEmptyQuestion(t *testing.T) {
	botSvc, chatSvc := newBotService()
	ctx := context.Background()
	session, _ := chatSvc.CreateSession(ctx)

	_, err := botSvc.Ask(ctx, bot.AskRequest{SessionID: session.ID, Question: "   "})
	if !errors.Is(err, bot.ErrEmptyQuestion) {
		t.Fatalf("expected ErrEmptyQuestion, got %v", err)
	}

	history, _ := chatSvc.History(ctx, session.ID)
	if len(history) != 0 {
		t.Fatalf("rejected question must not touch history, got %d turns", len(history))
	}
}

func TestAskUnknownSession(t *testing.T) {
	botSvc, _ := newBotService()

	_, err := botSvc.Ask(context.Background(), bot.AskRequest{SessionID: "missing", Question: "hello"})
	if !errors.Is(err, chatservice.ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestAskDomainDefaultsToWildcard(t *testing.T) {
	botSvc, chatSvc := newBotService()
	ctx := context.Background()
	session, _ := chatSvc.CreateSession(ctx)

	exchange, err := botSvc.Ask(ctx, bot.AskRequest{
		SessionID: session.ID,
		Question:  "machine learning basics",
	})
	if err != nil {
		t.Fatalf("Ask err: %v", err)
	}
	if exchange.Source != match.SourceFAQ {
		t.Fatalf("expected wildcard domain to match, got %+v", exchange)
	}
}
