package report

import (
	"encoding/json"
	"reflect"
	"testing"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/dtnitsch/textstats/pkg/analytics"
	"github.com/dtnitsch/textstats/pkg/ranking"
)

func whaleCounts() analytics.Counts {
	return analytics.Counts{"whale": 2, "swims": 1, "dives": 1}
}

func TestBuild(t *testing.T) {
	r := Build("moby.txt", whaleCounts(), 1, 50)
	r.SetElapsed(1500 * time.Millisecond)

	if r.TotalCount != 4 {
		t.Errorf("TotalCount = %d, want 4", r.TotalCount)
	}
	if r.DistinctCount != 3 {
		t.Errorf("DistinctCount = %d, want 3", r.DistinctCount)
	}
	if want := []ranking.Entry{{Word: "whale", Count: 2}}; !reflect.DeepEqual(r.TopWords, want) {
		t.Errorf("TopWords = %v, want %v", r.TopWords, want)
	}
	if want := []string{"dives", "swims", "whale"}; !reflect.DeepEqual(r.UniqueWords, want) {
		t.Errorf("UniqueWords = %q, want %q", r.UniqueWords, want)
	}
	if r.ProcessingMS != 1500 {
		t.Errorf("ProcessingMS = %d, want 1500", r.ProcessingMS)
	}
}

func TestBuildUniqueLimit(t *testing.T) {
	r := Build("x", whaleCounts(), 5, 2)
	if want := []string{"dives", "swims"}; !reflect.DeepEqual(r.UniqueWords, want) {
		t.Errorf("UniqueWords = %q, want %q", r.UniqueWords, want)
	}
}

func TestWriteTextReferenceFormat(t *testing.T) {
	r := Build("moby.txt", whaleCounts(), 5, 50)
	r.SetElapsed(2300 * time.Millisecond)

	got, err := Render(r, FormatText)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	want := `Total Word Count (after exclusions): 4

Top 5 Most Frequent Words:
whale: 2
dives: 1
swims: 1

Unique Words (Alphabetical Order - Top 50):
dives
swims
whale

Processing Time: 2 seconds
`
	if string(got) != want {
		t.Errorf("text report mismatch\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestWriteTextEmpty(t *testing.T) {
	r := Build("empty.txt", analytics.Counts{}, 5, 50)

	got, err := Render(r, FormatText)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	want := `Total Word Count (after exclusions): 0

Top 5 Most Frequent Words:

Unique Words (Alphabetical Order - Top 50):

Processing Time: 0 seconds
`
	if string(got) != want {
		t.Errorf("text report mismatch\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestRenderJSON(t *testing.T) {
	r := Build("moby.txt", whaleCounts(), 2, 50)

	data, err := Render(r, FormatJSON)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	var decoded Report
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, data)
	}
	if decoded.TotalCount != 4 || len(decoded.TopWords) != 2 || decoded.TopWords[0].Word != "whale" {
		t.Errorf("unexpected decoded report: %+v", decoded)
	}
}

func TestRenderJSONEmptyListsAreArrays(t *testing.T) {
	data, err := Render(Build("x", analytics.Counts{}, 5, 50), FormatJSON)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	for _, key := range []string{"top_words", "unique_words"} {
		if _, ok := raw[key].([]any); !ok {
			t.Errorf("%s = %#v, want empty array", key, raw[key])
		}
	}
}

func TestRenderYAML(t *testing.T) {
	r := Build("moby.txt", whaleCounts(), 5, 50)

	data, err := Render(r, FormatYAML)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	var decoded Report
	if err := yaml.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("invalid YAML: %v\n%s", err, data)
	}
	if decoded.Input != "moby.txt" || decoded.DistinctCount != 3 {
		t.Errorf("unexpected decoded report: %+v", decoded)
	}
	if !reflect.DeepEqual(decoded.UniqueWords, r.UniqueWords) {
		t.Errorf("UniqueWords = %q, want %q", decoded.UniqueWords, r.UniqueWords)
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"", FormatText, false},
		{"text", FormatText, false},
		{"JSON", FormatJSON, false},
		{" yaml ", FormatYAML, false},
		{"yml", FormatYAML, false},
		{"xml", "", true},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseFormat(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseFormat(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestRenderUnknownFormat(t *testing.T) {
	if _, err := Render(Build("x", analytics.Counts{}, 1, 1), Format("xml")); err == nil {
		t.Error("Render() with unknown format should fail")
	}
}

func TestElapsedSurvivesJSONRoundTrip(t *testing.T) {
	r := Build("moby.txt", whaleCounts(), 5, 50)
	r.SetElapsed(3250 * time.Millisecond)

	data, err := Render(r, FormatJSON)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	var decoded Report
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, data)
	}

	if decoded.Elapsed() != 3250*time.Millisecond {
		t.Errorf("Elapsed() = %v, want 3.25s", decoded.Elapsed())
	}

	want, err := Render(r, FormatText)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	got, err := Render(&decoded, FormatText)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if string(got) != string(want) {
		t.Errorf("decoded report renders differently\ngot:\n%s\nwant:\n%s", got, want)
	}
}
