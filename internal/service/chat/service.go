package chat

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/tatvaai/careerbot/backend/internal/model/chat"
)

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrInvalidIndex    = errors.New("turn index does not reference a bot turn")
	ErrInvalidVote     = errors.New("vote must be like or dislike")
)

// Service encapsulates all mutable per-session conversation state: the
// append-only history, per-turn feedback, analytics counters and the text of
// an uploaded reference document. Sessions are isolated from each other;
// nothing is persisted past the process lifetime.
type Service struct {
	mu        sync.RWMutex
	sessions  map[string]chat.Session
	messages  map[string][]chat.Message
	feedback  map[string]map[int]chat.Vote
	analytics map[string]*chat.Analytics
	documents map[string]string
}

// NewService bootstraps the in-memory session service.
func NewService() *Service {
	return &Service{
		sessions:  make(map[string]chat.Session),
		messages:  make(map[string][]chat.Message),
		feedback:  make(map[string]map[int]chat.Vote),
		analytics: make(map[string]*chat.Analytics),
		documents: make(map[string]string),
	}
}

// CreateSession provisions an anonymous session with empty state.
func (s *Service) CreateSession(_ context.Context) (chat.Session, error) {
	session := chat.Session{
		ID:        uuid.NewString(),
		CreatedAt: time.Now().UTC(),
	}

	s.mu.Lock()
	s.sessions[session.ID] = session
	s.messages[session.ID] = make([]chat.Message, 0, 16)
	s.feedback[session.ID] = make(map[int]chat.Vote)
	s.analytics[session.ID] = &chat.Analytics{}
	s.mu.Unlock()

	return session, nil
}

// GetSession retrieves a session by identifier.
func (s *Service) GetSession(_ context.Context, sessionID string) (chat.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.sessions[sessionID]
	if !ok {
		return chat.Session{}, ErrSessionNotFound
	}
	return session, nil
}

// AppendTurn appends a single turn to the session history.
func (s *Service) AppendTurn(_ context.Context, sessionID string, sender chat.Sender, content string) (chat.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[sessionID]; !ok {
		return chat.Message{}, ErrSessionNotFound
	}
	return s.appendLocked(sessionID, sender, content), nil
}

// RecordExchange appends the user question and the bot answer as one unit and
// bumps the questions-asked counter, so callers never observe a half-recorded
// exchange.
func (s *Service) RecordExchange(_ context.Context, sessionID, question, answer string) (user, bot chat.Message, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[sessionID]; !ok {
		return chat.Message{}, chat.Message{}, ErrSessionNotFound
	}

	user = s.appendLocked(sessionID, chat.SenderUser, question)
	bot = s.appendLocked(sessionID, chat.SenderBot, answer)
	s.analytics[sessionID].QuestionsAsked++
	return user, bot, nil
}

func (s *Service) appendLocked(sessionID string, sender chat.Sender, content string) chat.Message {
	message := chat.Message{
		ID:        uuid.NewString(),
		SessionID: sessionID,
		Sender:    sender,
		Content:   content,
		CreatedAt: time.Now().UTC(),
	}
	s.messages[sessionID] = append(s.messages[sessionID], message)
	return message
}

// History returns the stored turns for the session, oldest first.
func (s *Service) History(_ context.Context, sessionID string) ([]chat.Message, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	messages, ok := s.messages[sessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}

	copied := make([]chat.Message, len(messages))
	copy(copied, messages)
	return copied, nil
}

// RecordFeedback stores a vote against the bot turn at turnIndex. Re-voting
// overwrites the stored vote, but each accepted vote still increments its
// counter: the analytics counters are append-only and are deliberately not
// reconciled, matching the product's original behavior.
func (s *Service) RecordFeedback(_ context.Context, sessionID string, turnIndex int, vote chat.Vote) error {
	if !vote.Valid() {
		return ErrInvalidVote
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	messages, ok := s.messages[sessionID]
	if !ok {
		return ErrSessionNotFound
	}
	if turnIndex < 0 || turnIndex >= len(messages) {
		return fmt.Errorf("%w: index %d out of range", ErrInvalidIndex, turnIndex)
	}
	if messages[turnIndex].Sender != chat.SenderBot {
		return fmt.Errorf("%w: index %d is a user turn", ErrInvalidIndex, turnIndex)
	}

	s.feedback[sessionID][turnIndex] = vote
	if vote == chat.VoteLike {
		s.analytics[sessionID].PositiveFeedback++
	} else {
		s.analytics[sessionID].NegativeFeedback++
	}
	return nil
}

// Feedback returns the vote recorded at turnIndex, if any.
func (s *Service) Feedback(_ context.Context, sessionID string, turnIndex int) (chat.Vote, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	votes, ok := s.feedback[sessionID]
	if !ok {
		return "", false, ErrSessionNotFound
	}
	vote, ok := votes[turnIndex]
	return vote, ok, nil
}

// Analytics returns a snapshot of the session counters.
func (s *Service) Analytics(_ context.Context, sessionID string) (chat.Analytics, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	counters, ok := s.analytics[sessionID]
	if !ok {
		return chat.Analytics{}, ErrSessionNotFound
	}
	return *counters, nil
}

// SetDocumentText replaces the session's uploaded document text. An empty
// value clears it.
func (s *Service) SetDocumentText(_ context.Context, sessionID, text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[sessionID]; !ok {
		return ErrSessionNotFound
	}
	s.documents[sessionID] = text
	return nil
}

// DocumentText returns the session's extracted document text, empty when no
// document has been uploaded.
func (s *Service) DocumentText(_ context.Context, sessionID string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, ok := s.sessions[sessionID]; !ok {
		return "", ErrSessionNotFound
	}
	return s.documents[sessionID], nil
}

// Transcript projects the history into export lines, one "Sender: message"
// line per turn in chronological order.
func (s *Service) Transcript(ctx context.Context, sessionID string) ([]string, error) {
	messages, err := s.History(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	lines := make([]string, 0, len(messages))
	for _, m := range messages {
		lines = append(lines, fmt.Sprintf("%s: %s", m.Sender.DisplayName(), m.Content))
	}
	return lines, nil
}
