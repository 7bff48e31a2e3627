package source

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-shiori/go-readability"

	"github.com/dtnitsch/textstats/pkg/fetcher"
	"github.com/dtnitsch/textstats/pkg/storage"
)

// skippedElements never contribute text.
const skippedElements = "head,script,style,noscript,template"

// blockElements each become one or more lines. Inline markup inside a block
// is joined by Selection.Text, so "Ish<b>mael</b>" stays one word.
const blockElements = "h1,h2,h3,h4,h5,h6,p,li,pre,blockquote,td,th,dt,dd,caption,figcaption,div"

func openHTMLFile(path string) (*memorySource, error) {
	s := &storage.Storage{}
	raw, err := s.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInputUnavailable, err)
	}

	pageURL := &url.URL{Scheme: "file", Path: filepath.ToSlash(path)}
	lines, err := extractLines(raw, pageURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInputUnavailable, path, err)
	}
	return &memorySource{name: path, lines: lines}, nil
}

func openURL(ctx context.Context, f *fetcher.Fetcher, rawURL string) (*memorySource, error) {
	pageURL, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid URL %q: %w", ErrInputUnavailable, rawURL, err)
	}

	body, err := f.GetBytes(ctx, rawURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInputUnavailable, err)
	}

	if !strings.HasPrefix(http.DetectContentType(body), "text/html") {
		return &memorySource{name: rawURL, lines: splitLines(string(body))}, nil
	}

	lines, err := extractLines(body, pageURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInputUnavailable, rawURL, err)
	}
	return &memorySource{name: rawURL, lines: lines}, nil
}

// extractLines reduces an HTML document to its visible text, one line per
// innermost block element. go-readability narrows the document to its main
// article first; if it finds nothing the whole document is used.
func extractLines(raw []byte, pageURL *url.URL) ([]string, error) {
	content := ""
	parser := readability.NewParser()
	article, err := parser.Parse(bytes.NewReader(raw), pageURL)
	if err == nil {
		content = article.Content
	}
	if strings.TrimSpace(content) == "" {
		content = string(raw)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}
	return textLines(doc), nil
}

// textLines collects the text of blocks that contain no other block, so
// nested blocks are not counted twice. Documents without any block fall
// back to the whole body text.
func textLines(doc *goquery.Document) []string {
	doc.Find(skippedElements).Remove()

	var lines []string
	doc.Find(blockElements).Each(func(i int, s *goquery.Selection) {
		if s.Find(blockElements).Length() > 0 {
			return
		}
		lines = append(lines, splitLines(s.Text())...)
	})
	if len(lines) > 0 {
		return lines
	}
	return splitLines(doc.Find("body").Text())
}

// splitLines breaks text on newlines and drops blank lines.
func splitLines(text string) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
