// Package analytics turns lines of text into word frequency counts.
//
// The pipeline for every line is: tokenize on non-letter runs, normalize
// (lowercase, drop a trailing "'s"), drop stop words, optionally stem, count.
package analytics

import (
	"context"
	"iter"
	"strings"

	"github.com/kljensen/snowball/english"
)

// Counts maps a normalized word to the number of times it was accepted.
type Counts map[string]int

// Total returns the number of accepted tokens, i.e. the sum of all counts.
func (c Counts) Total() int {
	total := 0
	for _, n := range c {
		total += n
	}
	return total
}

// Distinct returns the number of different words.
func (c Counts) Distinct() int {
	return len(c)
}

// Analyzer holds the configuration of one analysis pipeline.
// It is safe to reuse an Analyzer across runs; it keeps no per-run state.
type Analyzer struct {
	stop StopWords
	stem bool
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithStopWords replaces the default stop-word set.
func WithStopWords(s StopWords) Option {
	return func(a *Analyzer) {
		a.stop = s
	}
}

// WithStemming enables English snowball stemming of words that survive the
// stop-word filter. Off by default.
func WithStemming(enabled bool) Option {
	return func(a *Analyzer) {
		a.stem = enabled
	}
}

// New creates an Analyzer using DefaultStopWords unless overridden.
func New(opts ...Option) *Analyzer {
	a := &Analyzer{stop: DefaultStopWords()}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// StopWords returns the set this analyzer filters with.
func (a *Analyzer) StopWords() StopWords {
	return a.stop
}

func isASCIILetter(r rune) bool {
	return ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z')
}

// Tokenize splits line on every maximal run of characters that are not ASCII
// letters. Digits, punctuation, whitespace and non-ASCII characters all act as
// delimiters, so "don't" yields "don" and "t". Empty tokens are never returned.
func Tokenize(line string) []string {
	return strings.FieldsFunc(line, func(r rune) bool {
		return !isASCIILetter(r)
	})
}

// Normalize lowercases token and removes one trailing "'s".
//
// Tokens produced by Tokenize never contain an apostrophe, so the suffix rule
// never fires for them. It is kept so Normalize matches the historical
// behavior when called on raw words.
func Normalize(token string) string {
	return strings.TrimSuffix(strings.ToLower(token), "'s")
}

// IsStopWord reports whether a normalized word is excluded from counts.
func (a *Analyzer) IsStopWord(word string) bool {
	return a.stop.Contains(word)
}

// AnalyzeLine adds the accepted words of a single line to counts.
func (a *Analyzer) AnalyzeLine(line string, counts Counts) {
	for _, token := range Tokenize(line) {
		word := Normalize(token)
		if word == "" || a.IsStopWord(word) {
			continue
		}
		if a.stem {
			word = english.Stem(word, true)
			if word == "" {
				continue
			}
		}
		counts[word]++
	}
}

// Analyze consumes lines and returns the resulting counts.
//
// A read error yielded by lines aborts the run: Analyze returns nil counts and
// the error unchanged. Cancellation is checked between lines; on cancellation
// the counts of all fully processed lines are returned with ctx.Err().
func (a *Analyzer) Analyze(ctx context.Context, lines iter.Seq2[string, error]) (Counts, error) {
	counts := make(Counts)
	for line, err := range lines {
		if err != nil {
			return nil, err
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return counts, ctxErr
		}
		a.AnalyzeLine(line, counts)
	}
	return counts, nil
}
