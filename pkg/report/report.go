// Package report assembles the results of one analysis and renders them.
package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/dtnitsch/textstats/pkg/analytics"
	"github.com/dtnitsch/textstats/pkg/ranking"
)

// Format selects how a Report is rendered.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat accepts text, json, yaml or yml in any case. Empty means text.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "text":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("unknown report format %q (want text, json or yaml)", s)
}

// Report is everything printed for one analyzed input.
type Report struct {
	Input         string          `json:"input" yaml:"input"`
	TotalCount    int             `json:"total_count" yaml:"total_count"`
	DistinctCount int             `json:"distinct_count" yaml:"distinct_count"`
	TopN          int             `json:"top_n" yaml:"top_n"`
	TopWords      []ranking.Entry `json:"top_words" yaml:"top_words"`
	UniqueLimit   int             `json:"unique_limit" yaml:"unique_limit"`
	UniqueWords   []string        `json:"unique_words" yaml:"unique_words"`
	ProcessingMS  int64           `json:"processing_ms" yaml:"processing_ms"`
}

// Build derives the ranked views from counts. uniqueLimit caps how many
// unique words are kept; a negative limit keeps all of them.
func Build(input string, counts analytics.Counts, topN, uniqueLimit int) *Report {
	return &Report{
		Input:         input,
		TotalCount:    counts.Total(),
		DistinctCount: counts.Distinct(),
		TopN:          topN,
		TopWords:      ranking.TopWords(counts, topN),
		UniqueLimit:   uniqueLimit,
		UniqueWords:   ranking.Head(ranking.UniqueWords(counts), uniqueLimit),
	}
}

// SetElapsed records how long the run took.
func (r *Report) SetElapsed(d time.Duration) {
	r.ProcessingMS = d.Milliseconds()
}

// Elapsed returns the recorded run time at millisecond precision.
func (r *Report) Elapsed() time.Duration {
	return time.Duration(r.ProcessingMS) * time.Millisecond
}

// WriteText writes the human readable report.
func (r *Report) WriteText(w io.Writer) error {
	var b strings.Builder

	fmt.Fprintf(&b, "Total Word Count (after exclusions): %d\n", r.TotalCount)

	fmt.Fprintf(&b, "\nTop %d Most Frequent Words:\n", r.TopN)
	for _, e := range r.TopWords {
		fmt.Fprintf(&b, "%s\n", e)
	}

	fmt.Fprintf(&b, "\nUnique Words (Alphabetical Order - Top %d):\n", r.UniqueLimit)
	for _, word := range r.UniqueWords {
		fmt.Fprintf(&b, "%s\n", word)
	}

	fmt.Fprintf(&b, "\nProcessing Time: %d seconds\n", int64(r.Elapsed()/time.Second))

	_, err := io.WriteString(w, b.String())
	return err
}

// Render encodes r in the given format.
func Render(r *Report, format Format) ([]byte, error) {
	switch format {
	case FormatText:
		var buf bytes.Buffer
		if err := r.WriteText(&buf); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	case FormatJSON:
		data, err := json.MarshalIndent(r, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to marshal report: %w", err)
		}
		return append(data, '\n'), nil
	case FormatYAML:
		data, err := yaml.Marshal(r)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal report: %w", err)
		}
		return data, nil
	}
	return nil, fmt.Errorf("unknown report format %q", format)
}
