// Package docsearch answers questions against previously extracted document
// text with a plain bag-of-words containment check. It is deliberately not a
// search or ranking algorithm.
package docsearch

import (
	"strings"

	"github.com/tatvaai/careerbot/backend/internal/analysis/text"
)

const (
	// FoundMessage is returned when every question token occurs in the document.
	FoundMessage = "Answer might be in the uploaded document. Please refer to it."
	// NotFoundMessage is returned when the document does not cover the question.
	NotFoundMessage = "No matching info found in the FAQ or uploaded document."
)

// Answer checks whether documentText covers the question. It returns the
// empty string when no document text is available, FoundMessage when every
// normalized question token occurs as a case-insensitive substring, and
// NotFoundMessage otherwise. A question that normalizes to zero tokens is
// treated as not found rather than a vacuous match.
func Answer(question, documentText string) string {
	if documentText == "" {
		return ""
	}

	tokens := text.Normalize(question)
	if len(tokens) == 0 {
		return NotFoundMessage
	}

	haystack := strings.ToLower(documentText)
	for _, token := range tokens {
		if !strings.Contains(haystack, token) {
			return NotFoundMessage
		}
	}
	return FoundMessage
}
