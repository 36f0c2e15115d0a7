// Package bot is the conversation controller: the single entry point that
// ties matcher output to session-state mutation.
package bot

import (
	"context"
	"errors"
	"strings"

	"github.com/tatvaai/careerbot/backend/internal/analysis/match"
	chatmodel "github.com/tatvaai/careerbot/backend/internal/model/chat"
	"github.com/tatvaai/careerbot/backend/internal/model/faq"
	chatservice "github.com/tatvaai/careerbot/backend/internal/service/chat"
)

var ErrEmptyQuestion = errors.New("question is empty")

// Service orchestrates a single turn: match the question, append both sides
// of the exchange, update analytics.
type Service struct {
	matcher *match.Matcher
	chatSvc *chatservice.Service
}

// NewService wires the controller to its matcher and session state.
func NewService(matcher *match.Matcher, chatSvc *chatservice.Service) *Service {
	return &Service{matcher: matcher, chatSvc: chatSvc}
}

// AskRequest carries one user-submitted question.
type AskRequest struct {
	SessionID string
	Question  string
	Domain    string // empty means faq.WildcardDomain
	OnTyping  func() // forwarded to the matcher, may be nil
}

// Exchange is the recorded outcome of one question.
type Exchange struct {
	Question chatmodel.Message `json:"question"`
	Answer   chatmodel.Message `json:"answer"`
	Source   match.Source      `json:"source"`
	Keyword  string            `json:"matchedKeyword,omitempty"`
	Score    int               `json:"score,omitempty"`
}

// Ask handles one question end to end. Session state is only touched after
// the matcher returns, so a request cancelled during the typing pause leaves
// no trace.
func (s *Service) Ask(ctx context.Context, req AskRequest) (Exchange, error) {
	question := strings.TrimSpace(req.Question)
	if question == "" {
		return Exchange{}, ErrEmptyQuestion
	}

	domain := req.Domain
	if domain == "" {
		domain = faq.WildcardDomain
	}

	documentText, err := s.chatSvc.DocumentText(ctx, req.SessionID)
	if err != nil {
		return Exchange{}, err
	}

	reply, err := s.matcher.Match(ctx, match.Request{
		Question:     question,
		Domain:       domain,
		DocumentText: documentText,
		OnTyping:     req.OnTyping,
	})
	if err != nil {
		return Exchange{}, err
	}

	userMsg, botMsg, err := s.chatSvc.RecordExchange(ctx, req.SessionID, question, reply.Answer)
	if err != nil {
		return Exchange{}, err
	}

	return Exchange{
		Question: userMsg,
		Answer:   botMsg,
		Source:   reply.Source,
		Keyword:  reply.Keyword,
		Score:    reply.Score,
	}, nil
}
