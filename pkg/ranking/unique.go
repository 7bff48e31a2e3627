package ranking

import "sort"

// UniqueWords returns every word in counts in ascending byte order.
// The result is never nil.
func UniqueWords(counts map[string]int) []string {
	words := make([]string, 0, len(counts))
	for word := range counts {
		words = append(words, word)
	}
	sort.Strings(words)
	return words
}

// Head returns at most the first n words. A negative n returns all of them.
func Head(words []string, n int) []string {
	if n < 0 || n >= len(words) {
		return words
	}
	return words[:n]
}
