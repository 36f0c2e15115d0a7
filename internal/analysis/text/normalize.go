package text

import (
	"strings"
	"unicode"
)

// Normalize lowercases the input, splits it into alphanumeric tokens and
// drops English stopwords. Token order is preserved and duplicates are kept.
func Normalize(input string) []string {
	lowered := strings.ToLower(input)

	tokens := make([]string, 0, 8)
	var builder strings.Builder
	flush := func() {
		if builder.Len() == 0 {
			return
		}
		token := builder.String()
		builder.Reset()
		if _, stop := stopwords[token]; stop {
			return
		}
		tokens = append(tokens, token)
	}

	for _, r := range lowered {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			builder.WriteRune(r)
			continue
		}
		flush()
	}
	flush()

	return tokens
}
