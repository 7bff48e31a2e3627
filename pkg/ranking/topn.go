// Package ranking derives ordered views from word counts.
package ranking

import (
	"fmt"
	"sort"
)

// Entry is a word and how often it occurred.
type Entry struct {
	Word  string `json:"word" yaml:"word"`
	Count int    `json:"count" yaml:"count"`
}

func (e Entry) String() string {
	return fmt.Sprintf("%s: %d", e.Word, e.Count)
}

// lessEntry orders two entries: higher count first; equal counts by word ascending.
func lessEntry(a, b Entry) bool {
	if a.Count != b.Count {
		return a.Count > b.Count
	}
	return a.Word < b.Word
}

// TopWords returns up to n entries sorted by descending count.
// Ties are broken alphabetically so the result does not depend on map order.
// The result is never nil.
func TopWords(counts map[string]int, n int) []Entry {
	if n <= 0 || len(counts) == 0 {
		return []Entry{}
	}

	entries := make([]Entry, 0, len(counts))
	for word, count := range counts {
		entries = append(entries, Entry{Word: word, Count: count})
	}

	sort.Slice(entries, func(i, j int) bool {
		return lessEntry(entries[i], entries[j])
	})

	limit := n
	if len(entries) < n {
		limit = len(entries)
	}
	return entries[:limit]
}
