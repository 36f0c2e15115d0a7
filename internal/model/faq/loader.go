package faq

import (
	"fmt"
	"os"
	"strings"

	"github.com/gocarina/gocsv"
)

// Load reads FAQ entries from the CSV file at path. The file must provide
// keyword and answer values for every row; domain is optional. A missing file
// or malformed data is fatal for the caller — the bot cannot run without its
// FAQ dictionary.
func Load(path string) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open faq csv %s: %w", path, err)
	}
	defer f.Close()

	var rows []Entry
	if err := gocsv.UnmarshalFile(f, &rows); err != nil {
		return nil, fmt.Errorf("parse faq csv %s: %w", path, err)
	}

	entries := make([]Entry, 0, len(rows))
	index := make(map[string]int, len(rows))
	for i, row := range rows {
		keyword := strings.ToLower(strings.TrimSpace(row.Keyword))
		answer := strings.TrimSpace(row.Answer)
		if keyword == "" || answer == "" {
			return nil, fmt.Errorf("faq csv %s: row %d is missing keyword or answer", path, i+1)
		}

		entry := Entry{
			Keyword: keyword,
			Answer:  answer,
			Domain:  strings.TrimSpace(row.Domain),
		}

		// Duplicate keywords: the last row wins but keeps the original
		// position, so load-order tie-breaking stays stable.
		if at, ok := index[keyword]; ok {
			entries[at] = entry
			continue
		}
		index[keyword] = len(entries)
		entries = append(entries, entry)
	}

	return entries, nil
}
