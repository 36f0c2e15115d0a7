package faq

import "sort"

// Store exposes read access to the loaded FAQ data.
type Store interface {
	All() []Entry
	Domains() []string
}

// MemoryStore implements Store with an in-memory slice, read-only after load.
type MemoryStore struct {
	entries []Entry
	domains []string
}

// NewMemoryStore returns a MemoryStore holding the supplied entries in load
// order. Iteration order matters: the matcher resolves score ties by first
// occurrence.
func NewMemoryStore(entries []Entry) *MemoryStore {
	seen := make(map[string]struct{})
	domains := make([]string, 0, 4)
	for _, e := range entries {
		if e.Domain == "" {
			continue
		}
		if _, ok := seen[e.Domain]; ok {
			continue
		}
		seen[e.Domain] = struct{}{}
		domains = append(domains, e.Domain)
	}
	sort.Strings(domains)

	return &MemoryStore{
		entries: append([]Entry(nil), entries...),
		domains: domains,
	}
}

// All returns the entries in load order.
func (s *MemoryStore) All() []Entry {
	return append([]Entry(nil), s.entries...)
}

// Domains returns the distinct non-empty domains, sorted.
func (s *MemoryStore) Domains() []string {
	return append([]string(nil), s.domains...)
}
