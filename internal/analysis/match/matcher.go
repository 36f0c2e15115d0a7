// Package match implements the fuzzy question-matching core: every FAQ
// keyword is scored against the question with a token-set ratio and the best
// qualifying entry wins, with a document containment check as fallback.
package match

import (
	"context"
	"strings"
	"time"

	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"

	"github.com/tatvaai/careerbot/backend/internal/analysis/docsearch"
	"github.com/tatvaai/careerbot/backend/internal/model/faq"
)

// DefaultThreshold is the minimum token-set score an entry must exceed to
// qualify as a match.
const DefaultThreshold = 60

// DefaultMessage is returned when neither the FAQ nor a document can answer.
const DefaultMessage = "Sorry, I don't know the answer yet. Please try another question."

// Source reports where a reply came from.
type Source string

const (
	SourceFAQ      Source = "faq"
	SourceDocument Source = "document"
	SourceDefault  Source = "none"
)

// Request carries one question through the matcher.
type Request struct {
	Question     string
	Domain       string // faq.WildcardDomain matches every entry
	DocumentText string // extracted text of the session's uploaded document, if any
	OnTyping     func() // invoked once before the typing pause, may be nil
}

// Reply is the matcher's outcome for a single question.
type Reply struct {
	Answer  string `json:"answer"`
	Source  Source `json:"source"`
	Keyword string `json:"matchedKeyword,omitempty"`
	Score   int    `json:"score,omitempty"`
}

// Matcher scans a read-only FAQ store for the best fuzzy match.
type Matcher struct {
	store       faq.Store
	threshold   int
	typingDelay time.Duration
}

// New builds a Matcher over the supplied store. A non-positive threshold
// falls back to DefaultThreshold; a zero typingDelay disables the pause.
func New(store faq.Store, threshold int, typingDelay time.Duration) *Matcher {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	return &Matcher{
		store:       store,
		threshold:   threshold,
		typingDelay: typingDelay,
	}
}

// Match resolves a question to a reply. The typing pause happens before any
// scoring so an abandoned request costs nothing; cancellation during the
// pause returns ctx.Err with no side effects.
func (m *Matcher) Match(ctx context.Context, req Request) (Reply, error) {
	if err := m.pause(ctx, req.OnTyping); err != nil {
		return Reply{}, err
	}

	question := strings.ToLower(req.Question)

	var best *faq.Entry
	highest := 0
	for _, entry := range m.store.All() {
		if req.Domain != faq.WildcardDomain && entry.Domain != req.Domain {
			continue
		}
		score := fuzzy.TokenSetRatio(entry.Keyword, question)
		// Strictly greater: ties keep the first qualifying entry in load order.
		if score > highest && score > m.threshold {
			e := entry
			best = &e
			highest = score
		}
	}

	if best != nil {
		return Reply{
			Answer:  best.Answer,
			Source:  SourceFAQ,
			Keyword: best.Keyword,
			Score:   highest,
		}, nil
	}

	if answer := docsearch.Answer(req.Question, req.DocumentText); answer != "" {
		return Reply{Answer: answer, Source: SourceDocument}, nil
	}

	return Reply{Answer: DefaultMessage, Source: SourceDefault}, nil
}

// pause simulates the bot typing. It waits cooperatively so other sessions
// keep being served, and bails out as soon as the request is cancelled.
func (m *Matcher) pause(ctx context.Context, onTyping func()) error {
	if m.typingDelay <= 0 {
		return nil
	}
	if onTyping != nil {
		onTyping()
	}

	timer := time.NewTimer(m.typingDelay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
