package analytics

import (
	"sort"
	"strings"
)

// defaultStopWords are the prepositions, pronouns, conjunctions, articles and
// forms of "to be" excluded from counts unless the caller injects another set.
var defaultStopWords = []string{
	"in", "on", "at", "for", "with", "by", "to", "and", "but", "or", "the", "a", "an",
	"he", "she", "it", "we", "they", "you", "is", "was", "are", "were", "be", "been", "being",
}

// StopWords is an immutable set of lowercase words excluded from analysis.
// The zero value is an empty set.
type StopWords struct {
	set map[string]struct{}
}

// NewStopWords builds a set from words. Entries are trimmed and lowercased;
// blank entries are ignored.
func NewStopWords(words ...string) StopWords {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w == "" {
			continue
		}
		set[w] = struct{}{}
	}
	return StopWords{set: set}
}

// DefaultStopWords returns a fresh copy of the default exclusion set.
func DefaultStopWords() StopWords {
	return NewStopWords(defaultStopWords...)
}

// Contains reports whether word is in the set. word must already be
// lowercase; the set does not normalize lookups.
func (s StopWords) Contains(word string) bool {
	_, ok := s.set[word]
	return ok
}

// Len returns the number of entries.
func (s StopWords) Len() int {
	return len(s.set)
}

// Words returns the entries sorted ascending.
func (s StopWords) Words() []string {
	words := make([]string, 0, len(s.set))
	for w := range s.set {
		words = append(words, w)
	}
	sort.Strings(words)
	return words
}
