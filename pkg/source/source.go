// Package source opens the documents textstats analyzes and exposes them as
// a sequence of lines.
package source

import (
	"context"
	"errors"
	"iter"
	"path/filepath"
	"strings"

	"github.com/dtnitsch/textstats/pkg/fetcher"
)

// ErrInputUnavailable wraps every failure to open or read an input.
var ErrInputUnavailable = errors.New("input unavailable")

// Source is an opened document. Lines may be ranged over once; a read error
// is yielded as the final element. Callers must Close the source.
type Source interface {
	Name() string
	Lines() iter.Seq2[string, error]
	Close() error
}

// Open picks a source for location:
//   - http:// or https:// URLs are downloaded, then read as HTML or plain text
//     depending on the sniffed content type
//   - paths ending in .html or .htm are read as HTML
//   - anything else is read as a plain text file
func Open(ctx context.Context, location string) (Source, error) {
	switch {
	case isURL(location):
		return openURL(ctx, fetcher.NewFetcher(), location)
	case isHTMLPath(location):
		return openHTMLFile(location)
	default:
		return openFile(location)
	}
}

// FromStrings yields lines in order with no error.
func FromStrings(lines ...string) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		for _, line := range lines {
			if !yield(line, nil) {
				return
			}
		}
	}
}

func isURL(location string) bool {
	lower := strings.ToLower(location)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}

func isHTMLPath(location string) bool {
	switch strings.ToLower(filepath.Ext(location)) {
	case ".html", ".htm":
		return true
	}
	return false
}

// memorySource serves lines that were fully extracted at open time.
type memorySource struct {
	name  string
	lines []string
}

func (m *memorySource) Name() string { return m.name }

func (m *memorySource) Lines() iter.Seq2[string, error] {
	return FromStrings(m.lines...)
}

func (m *memorySource) Close() error { return nil }
